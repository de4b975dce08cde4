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

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// ListPatients handles listing all patient profiles
// @Summary List patients
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patients [get]
func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	if err := authz.Authorize(caller, authz.ActionListPatients, uuid.Nil); err != nil {
		response.FromError(w, err)
		return
	}

	patients, err := h.patientUsecase.List(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

// ListMyPatients handles the doctor-only assigned-patient listing
// @Summary List my patients
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patients/my-patients [get]
func (h *PatientHandler) ListMyPatients(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	if err := authz.Authorize(caller, authz.ActionListOwnPatients, uuid.Nil); err != nil {
		response.FromError(w, err)
		return
	}

	patients, err := h.patientUsecase.ListByDoctor(r.Context(), caller.UserID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

// GetMyProfile handles a patient reading their own profile
// @Summary Get my patient profile
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patients/me [get]
func (h *PatientHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	if err := authz.Authorize(caller, authz.ActionViewOwnPatientProfile, uuid.Nil); err != nil {
		response.FromError(w, err)
		return
	}

	profile, err := h.patientUsecase.GetOwnProfile(r.Context(), caller.UserID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateMyProfile handles a patient updating (or lazily creating) their profile
// @Summary Update my patient profile
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /patients/me [patch]
func (h *PatientHandler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	if err := authz.Authorize(caller, authz.ActionUpdateOwnPatientProfile, uuid.Nil); err != nil {
		response.FromError(w, err)
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.patientUsecase.UpsertOwnProfile(r.Context(), caller.UserID, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", profile)
}

// SearchPatient handles lookup by identification number
// @Summary Search a patient by identification
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patients/search [get]
func (h *PatientHandler) SearchPatient(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	if err := authz.Authorize(caller, authz.ActionSearchPatients, uuid.Nil); err != nil {
		response.FromError(w, err)
		return
	}

	patient, err := h.patientUsecase.SearchByIdentification(r.Context(), r.URL.Query().Get("identification"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

// GetPatientStatistics handles the admin-only aggregate counts
// @Summary Patient statistics
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patients/statistics [get]
func (h *PatientHandler) GetPatientStatistics(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	if err := authz.Authorize(caller, authz.ActionViewPatientStats, uuid.Nil); err != nil {
		response.FromError(w, err)
		return
	}

	stats, err := h.patientUsecase.Statistics(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Statistics retrieved successfully", stats)
}

// GetPatientByUser handles reading a profile by its owner's user id
// @Summary Get a patient profile by owner
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patients/user/{id} [get]
func (h *PatientHandler) GetPatientByUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	ownerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user id", nil)
		return
	}

	if err := authz.Authorize(caller, authz.ActionViewPatientProfile, ownerID); err != nil {
		response.FromError(w, err)
		return
	}

	patient, err := h.patientUsecase.GetByUserID(r.Context(), ownerID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

// UpdatePatientByUser handles updating a profile by its owner's user id
// @Summary Update a patient profile by owner
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /patients/user/{id} [patch]
func (h *PatientHandler) UpdatePatientByUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	ownerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user id", nil)
		return
	}

	if err := authz.Authorize(caller, authz.ActionUpdatePatientProfile, ownerID); err != nil {
		response.FromError(w, err)
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), ownerID, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

// CreatePatient handles profile creation; only admins may target another user
// @Summary Create a patient profile
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.Response
// @Router /patients [post]
func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := authz.Authorize(caller, authz.ActionCreatePatientProfile, req.UserID); err != nil {
		response.FromError(w, err)
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patient)
}

// CompleteFirstVisit handles the doctor-only first-visit flag flip
// @Summary Mark a first visit as complete
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patients/user/{id}/first-visit [patch]
func (h *PatientHandler) CompleteFirstVisit(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	if err := authz.Authorize(caller, authz.ActionCompleteFirstVisit, uuid.Nil); err != nil {
		response.FromError(w, err)
		return
	}

	ownerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user id", nil)
		return
	}

	if err := h.patientUsecase.CompleteFirstVisit(r.Context(), ownerID); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "First visit marked as complete", nil)
}
