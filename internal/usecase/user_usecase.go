package usecase

import (
	"context"
	"time"

	"clinic-api/internal/converter"
	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/entity"
	"clinic-api/internal/domain/repository"
	"clinic-api/internal/service"
	"clinic-api/pkg/apperr"
	"clinic-api/pkg/hash"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type UserUsecase interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	List(ctx context.Context) ([]dto.UserResponse, error)
	ListByRole(ctx context.Context, roleName string) ([]dto.UserResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*dto.UserResponse, error)
	Search(ctx context.Context, term string) ([]dto.UserResponse, error)
	Statistics(ctx context.Context) (*dto.UserStatsResponse, error)
	ListRoles(ctx context.Context) ([]dto.RoleResponse, error)
}

type userUsecase struct {
	log         *logrus.Logger
	userRepo    repository.UserRepository
	roleRepo    repository.RoleRepository
	patientRepo repository.PatientProfileRepository
	hasher      *hash.Hasher
	tokenStore  service.TokenStore
}

func NewUserUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	patientRepo repository.PatientProfileRepository,
	hasher *hash.Hasher,
	tokenStore service.TokenStore,
) UserUsecase {
	return &userUsecase{
		log:         log,
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		patientRepo: patientRepo,
		hasher:      hasher,
		tokenStore:  tokenStore,
	}
}

// Create is the admin path: the account comes out verified with no pending
// code, and a patient profile can be attached inline.
func (u *userUsecase) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	role, err := u.roleRepo.FindByID(ctx, req.RoleID)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, apperr.New(apperr.KindNotFound, "role not found")
	}

	hashedPassword, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:            req.Email,
		Password:         hashedPassword,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Phone:            req.Phone,
		Address:          req.Address,
		RoleID:           role.ID,
		IsVerified:       true,
		VerificationCode: nil,
		IsActive:         true,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, apperr.New(apperr.KindConflict, "email is already registered")
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}
	user.Role = *role

	if role.Name == "patient" && req.PatientProfile != nil {
		profile, err := profileFromPayload(user.ID, req.PatientProfile)
		if err != nil {
			return nil, err
		}
		if err := u.patientRepo.Create(ctx, profile); err != nil {
			if isDuplicateKeyError(err, "identification") {
				return nil, apperr.New(apperr.KindConflict, "identification number is already registered")
			}
			u.log.Warnf("Failed to create patient profile: %+v", err)
			return nil, err
		}
		user.PatientProfile = profile
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}
	return converter.UsersToResponse(users), nil
}

func (u *userUsecase) ListByRole(ctx context.Context, roleName string) ([]dto.UserResponse, error) {
	role, err := u.roleRepo.FindByName(ctx, roleName)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, apperr.New(apperr.KindNotFound, "role not found")
	}

	users, err := u.userRepo.FindByRoleName(ctx, role.Name)
	if err != nil {
		u.log.Warnf("Failed to list users by role: %+v", err)
		return nil, err
	}
	return converter.UsersToResponse(users), nil
}

func (u *userUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Password != nil {
		hashedPassword, err := u.hasher.Hash(*req.Password)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = hashedPassword
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

// SetActive flips the explicit status flag. Deactivation also revokes every
// token the account holds, so issued credentials die with the account.
func (u *userUsecase) SetActive(ctx context.Context, id uuid.UUID, active bool) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}

	user.IsActive = active
	if err := u.userRepo.Update(ctx, user); err != nil {
		u.log.Warnf("Failed to update user status: %+v", err)
		return nil, err
	}

	if !active {
		if err := u.tokenStore.RevokeAll(ctx, user.ID); err != nil {
			u.log.Warnf("Failed to revoke tokens for deactivated user %s: %+v", user.ID, err)
			return nil, err
		}
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Search(ctx context.Context, term string) ([]dto.UserResponse, error) {
	if term == "" {
		return nil, apperr.New(apperr.KindBadRequest, "search term is required")
	}
	users, err := u.userRepo.Search(ctx, term)
	if err != nil {
		u.log.Warnf("Failed to search users: %+v", err)
		return nil, err
	}
	return converter.UsersToResponse(users), nil
}

func (u *userUsecase) Statistics(ctx context.Context) (*dto.UserStatsResponse, error) {
	total, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	verified, err := u.userRepo.CountVerified(ctx)
	if err != nil {
		return nil, err
	}
	admins, err := u.userRepo.CountByRole(ctx, entity.RoleIDAdmin)
	if err != nil {
		return nil, err
	}
	doctors, err := u.userRepo.CountByRole(ctx, entity.RoleIDDoctor)
	if err != nil {
		return nil, err
	}
	patients, err := u.userRepo.CountByRole(ctx, entity.RoleIDPatient)
	if err != nil {
		return nil, err
	}

	return &dto.UserStatsResponse{
		Total:      total,
		Verified:   verified,
		Unverified: total - verified,
		Distribution: dto.UserRoleDistribution{
			Admins:   admins,
			Doctors:  doctors,
			Patients: patients,
		},
	}, nil
}

func (u *userUsecase) ListRoles(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := u.roleRepo.FindActive(ctx)
	if err != nil {
		u.log.Warnf("Failed to list roles: %+v", err)
		return nil, err
	}
	return converter.RolesToResponse(roles), nil
}

// profileFromPayload maps the shared intake payload onto a new profile row.
func profileFromPayload(userID uuid.UUID, payload *dto.PatientProfilePayload) (*entity.PatientProfile, error) {
	profile := &entity.PatientProfile{
		UserID:                   userID,
		IdentificationNumber:     payload.IdentificationNumber,
		IdentificationType:       payload.IdentificationType,
		Gender:                   payload.Gender,
		MaritalStatus:            payload.MaritalStatus,
		Occupation:               payload.Occupation,
		ResidenceCity:            payload.ResidenceCity,
		Neighborhood:             payload.Neighborhood,
		InsuranceProvider:        payload.InsuranceProvider,
		AffiliationNumber:        payload.AffiliationNumber,
		AffiliationType:          payload.AffiliationType,
		EmergencyContactName:     payload.EmergencyContactName,
		EmergencyContactPhone:    payload.EmergencyContactPhone,
		EmergencyContactRelation: payload.EmergencyContactRelation,
		MedicalHistory:           payload.MedicalHistory,
		SurgicalHistory:          payload.SurgicalHistory,
		FamilyHistory:            payload.FamilyHistory,
		Allergies:                payload.Allergies,
		CurrentMedications:       payload.CurrentMedications,
		Weight:                   payload.Weight,
		Height:                   payload.Height,
		BloodType:                payload.BloodType,
		AcceptsCommunications:    true,
		PrefersEmail:             true,
		IsActive:                 true,
		FirstVisit:               true,
	}
	if profile.IdentificationType == "" {
		profile.IdentificationType = "CC"
	}
	if payload.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", payload.BirthDate)
		if err != nil {
			return nil, apperr.New(apperr.KindValidation, "invalid birth date, use YYYY-MM-DD")
		}
		profile.BirthDate = birthDate
	}
	return profile, nil
}
