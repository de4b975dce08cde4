package usecase

import (
	"context"
	"time"

	"clinic-api/internal/converter"
	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/entity"
	"clinic-api/internal/domain/repository"
	"clinic-api/pkg/apperr"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	List(ctx context.Context) ([]dto.PatientResponse, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]dto.PatientResponse, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*dto.PatientResponse, error)
	// GetOwnProfile returns a bare shell built from the account when no
	// profile exists yet, never a not-found error.
	GetOwnProfile(ctx context.Context, userID uuid.UUID) (*dto.PatientResponse, error)
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	Update(ctx context.Context, userID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	// UpsertOwnProfile creates the profile lazily on first update.
	UpsertOwnProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	SearchByIdentification(ctx context.Context, identification string) (*dto.PatientResponse, error)
	Statistics(ctx context.Context) (*dto.PatientStatsResponse, error)
	CompleteFirstVisit(ctx context.Context, userID uuid.UUID) error
}

type patientUsecase struct {
	log         *logrus.Logger
	userRepo    repository.UserRepository
	patientRepo repository.PatientProfileRepository
}

func NewPatientUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientProfileRepository,
) PatientUsecase {
	return &patientUsecase{
		log:         log,
		userRepo:    userRepo,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) List(ctx context.Context) ([]dto.PatientResponse, error) {
	profiles, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponse(profiles), nil
}

func (u *patientUsecase) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]dto.PatientResponse, error) {
	profiles, err := u.patientRepo.FindByAssignedDoctor(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list patients for doctor %s: %+v", doctorID, err)
		return nil, err
	}
	return converter.PatientsToResponse(profiles), nil
}

func (u *patientUsecase) GetByUserID(ctx context.Context, userID uuid.UUID) (*dto.PatientResponse, error) {
	profile, err := u.patientRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, apperr.New(apperr.KindNotFound, "patient profile not found")
	}
	return converter.PatientToResponse(profile), nil
}

func (u *patientUsecase) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*dto.PatientResponse, error) {
	profile, err := u.patientRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile != nil {
		return converter.PatientToResponse(profile), nil
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}
	return converter.PatientShellFromUser(user), nil
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	user, err := u.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}

	profile, err := profileFromPayload(req.UserID, &req.PatientProfilePayload)
	if err != nil {
		return nil, err
	}
	profile.AssignedDoctorID = req.AssignedDoctorID

	if err := u.patientRepo.Create(ctx, profile); err != nil {
		if isDuplicateKeyError(err, "identification") {
			return nil, apperr.New(apperr.KindConflict, "identification number is already registered")
		}
		if isDuplicateKeyError(err, "pkey") {
			return nil, apperr.New(apperr.KindConflict, "patient profile already exists for this user")
		}
		u.log.Warnf("Failed to create patient profile: %+v", err)
		return nil, err
	}

	profile.User = *user
	return converter.PatientToResponse(profile), nil
}

func (u *patientUsecase) Update(ctx context.Context, userID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	profile, err := u.patientRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, apperr.New(apperr.KindNotFound, "patient profile not found")
	}

	if err := applyPatientUpdate(profile, req); err != nil {
		return nil, err
	}

	if err := u.patientRepo.Update(ctx, profile); err != nil {
		if isDuplicateKeyError(err, "identification") {
			return nil, apperr.New(apperr.KindConflict, "identification number is already registered")
		}
		u.log.Warnf("Failed to update patient profile: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(profile), nil
}

func (u *patientUsecase) UpsertOwnProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	// Doctor assignment is an administrative action and never rides the
	// self-service path.
	req.AssignedDoctorID = nil

	profile, err := u.patientRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}

	if profile == nil {
		if req.IdentificationNumber == nil || *req.IdentificationNumber == "" {
			return nil, apperr.New(apperr.KindValidation, "identification number is required to create a profile")
		}
		payload := &dto.PatientProfilePayload{IdentificationNumber: *req.IdentificationNumber}
		profile, err = profileFromPayload(userID, payload)
		if err != nil {
			return nil, err
		}
		if err := applyPatientUpdate(profile, req); err != nil {
			return nil, err
		}
		if err := u.patientRepo.Create(ctx, profile); err != nil {
			if isDuplicateKeyError(err, "identification") {
				return nil, apperr.New(apperr.KindConflict, "identification number is already registered")
			}
			u.log.Warnf("Failed to create patient profile: %+v", err)
			return nil, err
		}
		return converter.PatientToResponse(profile), nil
	}

	if err := applyPatientUpdate(profile, req); err != nil {
		return nil, err
	}
	if err := u.patientRepo.Update(ctx, profile); err != nil {
		if isDuplicateKeyError(err, "identification") {
			return nil, apperr.New(apperr.KindConflict, "identification number is already registered")
		}
		u.log.Warnf("Failed to update patient profile: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(profile), nil
}

func (u *patientUsecase) SearchByIdentification(ctx context.Context, identification string) (*dto.PatientResponse, error) {
	if identification == "" {
		return nil, apperr.New(apperr.KindBadRequest, "identification number is required")
	}

	profile, err := u.patientRepo.FindByIdentification(ctx, identification)
	if err != nil {
		u.log.Warnf("Failed to search patient: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, apperr.New(apperr.KindNotFound, "patient not found")
	}
	return converter.PatientToResponse(profile), nil
}

func (u *patientUsecase) Statistics(ctx context.Context) (*dto.PatientStatsResponse, error) {
	stats, err := u.patientRepo.Stats(ctx)
	if err != nil {
		u.log.Warnf("Failed to compute patient statistics: %+v", err)
		return nil, err
	}
	return &dto.PatientStatsResponse{
		Total:             stats.Total,
		Active:            stats.Active,
		FirstVisitPending: stats.FirstVisitPending,
		PrefersWhatsapp:   stats.PrefersWhatsapp,
		PrefersEmail:      stats.PrefersEmail,
		PrefersSMS:        stats.PrefersSMS,
	}, nil
}

func (u *patientUsecase) CompleteFirstVisit(ctx context.Context, userID uuid.UUID) error {
	profile, err := u.patientRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return err
	}
	if profile == nil {
		return apperr.New(apperr.KindNotFound, "patient profile not found")
	}

	profile.FirstVisit = false
	if err := u.patientRepo.Update(ctx, profile); err != nil {
		u.log.Warnf("Failed to complete first visit: %+v", err)
		return err
	}
	return nil
}

// applyPatientUpdate copies non-nil fields from the request onto the profile.
func applyPatientUpdate(profile *entity.PatientProfile, req *dto.UpdatePatientRequest) error {
	if req.IdentificationNumber != nil {
		profile.IdentificationNumber = *req.IdentificationNumber
	}
	if req.IdentificationType != nil {
		profile.IdentificationType = *req.IdentificationType
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return apperr.New(apperr.KindValidation, "invalid birth date, use YYYY-MM-DD")
		}
		profile.BirthDate = birthDate
	}
	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.MaritalStatus != nil {
		profile.MaritalStatus = *req.MaritalStatus
	}
	if req.Occupation != nil {
		profile.Occupation = *req.Occupation
	}
	if req.ResidenceCity != nil {
		profile.ResidenceCity = *req.ResidenceCity
	}
	if req.Neighborhood != nil {
		profile.Neighborhood = *req.Neighborhood
	}
	if req.InsuranceProvider != nil {
		profile.InsuranceProvider = *req.InsuranceProvider
	}
	if req.AffiliationNumber != nil {
		profile.AffiliationNumber = *req.AffiliationNumber
	}
	if req.AffiliationType != nil {
		profile.AffiliationType = *req.AffiliationType
	}
	if req.EmergencyContactName != nil {
		profile.EmergencyContactName = *req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		profile.EmergencyContactPhone = *req.EmergencyContactPhone
	}
	if req.EmergencyContactRelation != nil {
		profile.EmergencyContactRelation = *req.EmergencyContactRelation
	}
	if req.MedicalHistory != nil {
		profile.MedicalHistory = *req.MedicalHistory
	}
	if req.SurgicalHistory != nil {
		profile.SurgicalHistory = *req.SurgicalHistory
	}
	if req.FamilyHistory != nil {
		profile.FamilyHistory = *req.FamilyHistory
	}
	if req.Allergies != nil {
		profile.Allergies = *req.Allergies
	}
	if req.CurrentMedications != nil {
		profile.CurrentMedications = *req.CurrentMedications
	}
	if req.Weight != nil {
		profile.Weight = *req.Weight
	}
	if req.Height != nil {
		profile.Height = *req.Height
	}
	if req.BloodType != nil {
		profile.BloodType = *req.BloodType
	}
	if req.AcceptsCommunications != nil {
		profile.AcceptsCommunications = *req.AcceptsCommunications
	}
	if req.PrefersWhatsapp != nil {
		profile.PrefersWhatsapp = *req.PrefersWhatsapp
	}
	if req.PrefersEmail != nil {
		profile.PrefersEmail = *req.PrefersEmail
	}
	if req.PrefersSMS != nil {
		profile.PrefersSMS = *req.PrefersSMS
	}
	if req.AssignedDoctorID != nil {
		profile.AssignedDoctorID = req.AssignedDoctorID
	}
	return nil
}
