package repository

import (
	"context"
	"errors"

	"clinic-api/internal/domain/entity"
	domainRepo "clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientProfileRepository struct {
	db *gorm.DB
}

func NewPatientProfileRepository(db *gorm.DB) domainRepo.PatientProfileRepository {
	return &patientProfileRepository{db: db}
}

func (r *patientProfileRepository) Create(ctx context.Context, profile *entity.PatientProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *patientProfileRepository) Update(ctx context.Context, profile *entity.PatientProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *patientProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := r.db.WithContext(ctx).Preload("User").Preload("User.Role").Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *patientProfileRepository) FindByIdentification(ctx context.Context, identification string) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := r.db.WithContext(ctx).Preload("User").Where("identification_number = ?", identification).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *patientProfileRepository) FindAll(ctx context.Context) ([]entity.PatientProfile, error) {
	var profiles []entity.PatientProfile
	err := r.db.WithContext(ctx).Preload("User").Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

func (r *patientProfileRepository) FindByAssignedDoctor(ctx context.Context, doctorID uuid.UUID) ([]entity.PatientProfile, error) {
	var profiles []entity.PatientProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("assigned_doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&profiles).Error
	return profiles, err
}

func (r *patientProfileRepository) Stats(ctx context.Context) (*domainRepo.PatientStats, error) {
	stats := &domainRepo.PatientStats{}
	model := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&entity.PatientProfile{})
	}

	if err := model().Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := model().Where("is_active = ?", true).Count(&stats.Active).Error; err != nil {
		return nil, err
	}
	if err := model().Where("first_visit = ?", true).Count(&stats.FirstVisitPending).Error; err != nil {
		return nil, err
	}
	if err := model().Where("prefers_whatsapp = ?", true).Count(&stats.PrefersWhatsapp).Error; err != nil {
		return nil, err
	}
	if err := model().Where("prefers_email = ?", true).Count(&stats.PrefersEmail).Error; err != nil {
		return nil, err
	}
	if err := model().Where("prefers_sms = ?", true).Count(&stats.PrefersSMS).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
