package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile holds the medical-intake record for an account with the
// patient role. Created lazily: a patient account may exist without one until
// the profile is first populated.
type PatientProfile struct {
	UserID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	IdentificationNumber string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"identification_number"`
	IdentificationType   string    `gorm:"type:varchar(10);not null;default:'CC'" json:"identification_type"`
	BirthDate            time.Time `gorm:"type:date" json:"birth_date"`
	Gender               string    `gorm:"type:varchar(20)" json:"gender,omitempty"`
	MaritalStatus        string    `gorm:"type:varchar(20)" json:"marital_status,omitempty"`
	Occupation           string    `gorm:"type:varchar(100)" json:"occupation,omitempty"`

	// Contact
	ResidenceCity string `gorm:"type:varchar(100)" json:"residence_city,omitempty"`
	Neighborhood  string `gorm:"type:varchar(100)" json:"neighborhood,omitempty"`

	// Insurance
	InsuranceProvider string `gorm:"type:varchar(100)" json:"insurance_provider,omitempty"`
	AffiliationNumber string `gorm:"type:varchar(50)" json:"affiliation_number,omitempty"`
	AffiliationType   string `gorm:"type:varchar(50)" json:"affiliation_type,omitempty"`

	// Emergency contact
	EmergencyContactName     string `gorm:"type:varchar(255)" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone    string `gorm:"type:varchar(20)" json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelation string `gorm:"type:varchar(50)" json:"emergency_contact_relation,omitempty"`

	// Medical history
	MedicalHistory     string `gorm:"type:text" json:"medical_history,omitempty"`
	SurgicalHistory    string `gorm:"type:text" json:"surgical_history,omitempty"`
	FamilyHistory      string `gorm:"type:text" json:"family_history,omitempty"`
	Allergies          string `gorm:"type:text" json:"allergies,omitempty"`
	CurrentMedications string `gorm:"type:text" json:"current_medications,omitempty"`

	// Anthropometrics
	Weight    float64 `gorm:"type:decimal(5,2)" json:"weight,omitempty"`
	Height    float64 `gorm:"type:decimal(5,2)" json:"height,omitempty"`
	BloodType string  `gorm:"type:varchar(5)" json:"blood_type,omitempty"`

	// Communication preferences
	AcceptsCommunications bool `gorm:"not null;default:true" json:"accepts_communications"`
	PrefersWhatsapp       bool `gorm:"not null;default:false" json:"prefers_whatsapp"`
	PrefersEmail          bool `gorm:"not null;default:true" json:"prefers_email"`
	PrefersSMS            bool `gorm:"not null;default:false" json:"prefers_sms"`

	// Status
	IsActive         bool       `gorm:"not null;default:true;index" json:"is_active"`
	FirstVisit       bool       `gorm:"not null;default:true" json:"first_visit"`
	AssignedDoctorID *uuid.UUID `gorm:"type:uuid;index" json:"assigned_doctor_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
