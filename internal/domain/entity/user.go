package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the central account table. Accounts are never hard-deleted;
// IsActive is flipped instead.
type User struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID           int       `gorm:"not null;index" json:"role_id"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password         string    `gorm:"type:text;not null" json:"-"`
	FirstName        string    `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName         string    `gorm:"type:varchar(255);not null" json:"last_name"`
	Phone            string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address          string    `gorm:"type:text" json:"address,omitempty"`
	IsVerified       bool      `gorm:"not null;default:false;index" json:"is_verified"`
	VerificationCode *string   `gorm:"type:char(6)" json:"-"`
	IsActive         bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role           Role            `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	PatientProfile *PatientProfile `gorm:"foreignKey:UserID" json:"patient_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}
