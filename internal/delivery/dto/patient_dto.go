package dto

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfilePayload carries the intake fields shared by profile creation
// and full updates. BirthDate uses YYYY-MM-DD.
type PatientProfilePayload struct {
	IdentificationNumber     string  `json:"identification_number" validate:"required,max=20"`
	IdentificationType       string  `json:"identification_type" validate:"omitempty,max=10"`
	BirthDate                string  `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Gender                   string  `json:"gender" validate:"omitempty,max=20"`
	MaritalStatus            string  `json:"marital_status" validate:"omitempty,max=20"`
	Occupation               string  `json:"occupation" validate:"omitempty,max=100"`
	ResidenceCity            string  `json:"residence_city" validate:"omitempty,max=100"`
	Neighborhood             string  `json:"neighborhood" validate:"omitempty,max=100"`
	InsuranceProvider        string  `json:"insurance_provider" validate:"omitempty,max=100"`
	AffiliationNumber        string  `json:"affiliation_number" validate:"omitempty,max=50"`
	AffiliationType          string  `json:"affiliation_type" validate:"omitempty,max=50"`
	EmergencyContactName     string  `json:"emergency_contact_name" validate:"omitempty,max=255"`
	EmergencyContactPhone    string  `json:"emergency_contact_phone" validate:"omitempty,max=20"`
	EmergencyContactRelation string  `json:"emergency_contact_relation" validate:"omitempty,max=50"`
	MedicalHistory           string  `json:"medical_history" validate:"omitempty"`
	SurgicalHistory          string  `json:"surgical_history" validate:"omitempty"`
	FamilyHistory            string  `json:"family_history" validate:"omitempty"`
	Allergies                string  `json:"allergies" validate:"omitempty"`
	CurrentMedications       string  `json:"current_medications" validate:"omitempty"`
	Weight                   float64 `json:"weight" validate:"omitempty,gte=0"`
	Height                   float64 `json:"height" validate:"omitempty,gte=0"`
	BloodType                string  `json:"blood_type" validate:"omitempty,max=5"`
}

// CreatePatientRequest creates a profile on behalf of a user. Only admins may
// target another account.
type CreatePatientRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	PatientProfilePayload
	AssignedDoctorID *uuid.UUID `json:"assigned_doctor_id" validate:"omitempty"`
}

// UpdatePatientRequest applies a partial update; nil fields are left alone.
// AssignedDoctorID is honored on the administrative update path only.
type UpdatePatientRequest struct {
	IdentificationNumber     *string    `json:"identification_number" validate:"omitempty,max=20"`
	IdentificationType       *string    `json:"identification_type" validate:"omitempty,max=10"`
	BirthDate                *string    `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Gender                   *string    `json:"gender" validate:"omitempty,max=20"`
	MaritalStatus            *string    `json:"marital_status" validate:"omitempty,max=20"`
	Occupation               *string    `json:"occupation" validate:"omitempty,max=100"`
	ResidenceCity            *string    `json:"residence_city" validate:"omitempty,max=100"`
	Neighborhood             *string    `json:"neighborhood" validate:"omitempty,max=100"`
	InsuranceProvider        *string    `json:"insurance_provider" validate:"omitempty,max=100"`
	AffiliationNumber        *string    `json:"affiliation_number" validate:"omitempty,max=50"`
	AffiliationType          *string    `json:"affiliation_type" validate:"omitempty,max=50"`
	EmergencyContactName     *string    `json:"emergency_contact_name" validate:"omitempty,max=255"`
	EmergencyContactPhone    *string    `json:"emergency_contact_phone" validate:"omitempty,max=20"`
	EmergencyContactRelation *string    `json:"emergency_contact_relation" validate:"omitempty,max=50"`
	MedicalHistory           *string    `json:"medical_history" validate:"omitempty"`
	SurgicalHistory          *string    `json:"surgical_history" validate:"omitempty"`
	FamilyHistory            *string    `json:"family_history" validate:"omitempty"`
	Allergies                *string    `json:"allergies" validate:"omitempty"`
	CurrentMedications       *string    `json:"current_medications" validate:"omitempty"`
	Weight                   *float64   `json:"weight" validate:"omitempty,gte=0"`
	Height                   *float64   `json:"height" validate:"omitempty,gte=0"`
	BloodType                *string    `json:"blood_type" validate:"omitempty,max=5"`
	AcceptsCommunications    *bool      `json:"accepts_communications" validate:"omitempty"`
	PrefersWhatsapp          *bool      `json:"prefers_whatsapp" validate:"omitempty"`
	PrefersEmail             *bool      `json:"prefers_email" validate:"omitempty"`
	PrefersSMS               *bool      `json:"prefers_sms" validate:"omitempty"`
	AssignedDoctorID         *uuid.UUID `json:"assigned_doctor_id" validate:"omitempty"`
}

type PatientResponse struct {
	UserID                   uuid.UUID  `json:"user_id"`
	FirstName                string     `json:"first_name,omitempty"`
	LastName                 string     `json:"last_name,omitempty"`
	Email                    string     `json:"email,omitempty"`
	Phone                    string     `json:"phone,omitempty"`
	IdentificationNumber     string     `json:"identification_number,omitempty"`
	IdentificationType       string     `json:"identification_type,omitempty"`
	BirthDate                string     `json:"birth_date,omitempty"`
	Gender                   string     `json:"gender,omitempty"`
	MaritalStatus            string     `json:"marital_status,omitempty"`
	Occupation               string     `json:"occupation,omitempty"`
	ResidenceCity            string     `json:"residence_city,omitempty"`
	Neighborhood             string     `json:"neighborhood,omitempty"`
	InsuranceProvider        string     `json:"insurance_provider,omitempty"`
	AffiliationNumber        string     `json:"affiliation_number,omitempty"`
	AffiliationType          string     `json:"affiliation_type,omitempty"`
	EmergencyContactName     string     `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone    string     `json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelation string     `json:"emergency_contact_relation,omitempty"`
	MedicalHistory           string     `json:"medical_history,omitempty"`
	SurgicalHistory          string     `json:"surgical_history,omitempty"`
	FamilyHistory            string     `json:"family_history,omitempty"`
	Allergies                string     `json:"allergies,omitempty"`
	CurrentMedications       string     `json:"current_medications,omitempty"`
	Weight                   float64    `json:"weight,omitempty"`
	Height                   float64    `json:"height,omitempty"`
	BloodType                string     `json:"blood_type,omitempty"`
	AcceptsCommunications    bool       `json:"accepts_communications"`
	PrefersWhatsapp          bool       `json:"prefers_whatsapp"`
	PrefersEmail             bool       `json:"prefers_email"`
	PrefersSMS               bool       `json:"prefers_sms"`
	IsActive                 bool       `json:"is_active"`
	FirstVisit               bool       `json:"first_visit"`
	AssignedDoctorID         *uuid.UUID `json:"assigned_doctor_id,omitempty"`
	CreatedAt                time.Time  `json:"created_at,omitzero"`
	UpdatedAt                time.Time  `json:"updated_at,omitzero"`
}

type PatientStatsResponse struct {
	Total             int64 `json:"total"`
	Active            int64 `json:"active"`
	FirstVisitPending int64 `json:"first_visit_pending"`
	PrefersWhatsapp   int64 `json:"prefers_whatsapp"`
	PrefersEmail      int64 `json:"prefers_email"`
	PrefersSMS        int64 `json:"prefers_sms"`
}
