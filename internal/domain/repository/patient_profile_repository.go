package repository

import (
	"context"

	"clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

// PatientStats are the aggregate counts behind the admin statistics endpoint.
type PatientStats struct {
	Total             int64
	Active            int64
	FirstVisitPending int64
	PrefersWhatsapp   int64
	PrefersEmail      int64
	PrefersSMS        int64
}

type PatientProfileRepository interface {
	Create(ctx context.Context, profile *entity.PatientProfile) error
	Update(ctx context.Context, profile *entity.PatientProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error)
	FindByIdentification(ctx context.Context, identification string) (*entity.PatientProfile, error)
	FindAll(ctx context.Context) ([]entity.PatientProfile, error)
	FindByAssignedDoctor(ctx context.Context, doctorID uuid.UUID) ([]entity.PatientProfile, error)
	Stats(ctx context.Context) (*PatientStats, error)
}
