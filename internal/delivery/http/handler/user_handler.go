package handler

import (
	"encoding/json"
	"net/http"

	"clinic-api/internal/authz"
	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/delivery/http/middleware"
	"clinic-api/internal/usecase"
	"clinic-api/pkg/response"
	"clinic-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

// CreateUser handles admin account creation
// @Summary Create a user (admin)
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.Response
// @Router /users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	if err := authz.Authorize(caller, authz.ActionManageUsers, uuid.Nil); err != nil {
		response.FromError(w, err)
		return
	}

	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "User created successfully", user)
}

// ListUsers handles listing all accounts
// @Summary List users
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	if err := authz.Authorize(caller, authz.ActionListUsers, uuid.Nil); err != nil {
		response.FromError(w, err)
		return
	}

	if roleName := r.URL.Query().Get("role"); roleName != "" {
		users, err := h.userUsecase.ListByRole(r.Context(), roleName)
		if err != nil {
			response.FromError(w, err)
			return
		}
		response.Success(w, http.StatusOK, "Users retrieved successfully", users)
		return
	}

	users, err := h.userUsecase.List(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

// SearchUsers handles substring search over name, surname and email
// @Summary Search users
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /users/search [get]
func (h *UserHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	if err := authz.Authorize(caller, authz.ActionSearchUsers, uuid.Nil); err != nil {
		response.FromError(w, err)
		return
	}

	users, err := h.userUsecase.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

// GetUserStatistics handles the admin statistics endpoint
// @Summary User statistics
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /users/statistics [get]
func (h *UserHandler) GetUserStatistics(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	if err := authz.Authorize(caller, authz.ActionViewUserStats, uuid.Nil); err != nil {
		response.FromError(w, err)
		return
	}

	stats, err := h.userUsecase.Statistics(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Statistics retrieved successfully", stats)
}

// GetUser handles reading one account (admin or self)
// @Summary Get a user
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	targetID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user id", nil)
		return
	}

	if err := authz.Authorize(caller, authz.ActionViewUser, targetID); err != nil {
		response.FromError(w, err)
		return
	}

	user, err := h.userUsecase.Get(r.Context(), targetID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

// UpdateUser handles updating one account (admin or self)
// @Summary Update a user
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /users/{id} [patch]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	targetID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user id", nil)
		return
	}

	if err := authz.Authorize(caller, authz.ActionUpdateUser, targetID); err != nil {
		response.FromError(w, err)
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.Update(r.Context(), targetID, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", user)
}

// SetUserStatus handles activation and deactivation (admin)
// @Summary Set account status
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /users/{id}/status [patch]
func (h *UserHandler) SetUserStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	if err := authz.Authorize(caller, authz.ActionManageUsers, uuid.Nil); err != nil {
		response.FromError(w, err)
		return
	}

	targetID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user id", nil)
		return
	}

	var req dto.SetUserStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.SetActive(r.Context(), targetID, *req.IsActive)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "User status updated successfully", user)
}

// ListRoles handles listing the active roles
// @Summary List roles
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /roles [get]
func (h *UserHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.userUsecase.ListRoles(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Roles retrieved successfully", roles)
}
