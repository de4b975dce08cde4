package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID             uuid.UUID        `json:"id"`
	Email          string           `json:"email"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	Phone          string           `json:"phone,omitempty"`
	Address        string           `json:"address,omitempty"`
	Role           string           `json:"role"`
	IsVerified     bool             `json:"is_verified"`
	IsActive       bool             `json:"is_active"`
	PatientProfile *PatientResponse `json:"patient_profile,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// CreateUserRequest is the admin-only account creation payload. Accounts
// created this way are verified immediately. A patient profile can be
// attached inline when the role is patient.
type CreateUserRequest struct {
	Email          string                 `json:"email" validate:"required,email"`
	Password       string                 `json:"password" validate:"required,min=6"`
	FirstName      string                 `json:"first_name" validate:"required"`
	LastName       string                 `json:"last_name" validate:"required"`
	Phone          string                 `json:"phone" validate:"omitempty,min=7,max=20"`
	Address        string                 `json:"address" validate:"omitempty"`
	RoleID         int                    `json:"role_id" validate:"required,gte=1"`
	PatientProfile *PatientProfilePayload `json:"patient_profile" validate:"omitempty"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
	Address   *string `json:"address" validate:"omitempty"`
	Password  *string `json:"password" validate:"omitempty,min=6"`
}

type SetUserStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type UserStatsResponse struct {
	Total        int64                `json:"total"`
	Verified     int64                `json:"verified"`
	Unverified   int64                `json:"unverified"`
	Distribution UserRoleDistribution `json:"distribution"`
}

type UserRoleDistribution struct {
	Admins   int64 `json:"admins"`
	Doctors  int64 `json:"doctors"`
	Patients int64 `json:"patients"`
}

type RoleResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
