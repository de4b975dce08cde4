package converter

import (
	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/entity"
)

// UserToResponse converts a User entity to its response DTO. The password
// hash never crosses this boundary.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Phone:      user.Phone,
		Address:    user.Address,
		Role:       user.Role.Name,
		IsVerified: user.IsVerified,
		IsActive:   user.IsActive,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}

	if user.PatientProfile != nil {
		response.PatientProfile = PatientToResponse(user.PatientProfile)
	}

	return response
}

func UsersToResponse(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *UserToResponse(&users[i]))
	}
	return responses
}

func RoleToResponse(role *entity.Role) *dto.RoleResponse {
	if role == nil {
		return nil
	}
	return &dto.RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
	}
}

func RolesToResponse(roles []entity.Role) []dto.RoleResponse {
	responses := make([]dto.RoleResponse, 0, len(roles))
	for i := range roles {
		responses = append(responses, *RoleToResponse(&roles[i]))
	}
	return responses
}
