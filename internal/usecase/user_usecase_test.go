package usecase_test

import (
	"context"
	"testing"

	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/entity"
	"clinic-api/internal/usecase"
	"clinic-api/pkg/apperr"
	"clinic-api/pkg/hash"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type userFixture struct {
	userRepo    *MockUserRepository
	roleRepo    *MockRoleRepository
	patientRepo *MockPatientProfileRepository
	tokenStore  *MockTokenStore
	hasher      *hash.Hasher
	usecase     usecase.UserUsecase
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()
	f := &userFixture{
		userRepo:    new(MockUserRepository),
		roleRepo:    new(MockRoleRepository),
		patientRepo: new(MockPatientProfileRepository),
		tokenStore:  new(MockTokenStore),
		hasher:      hash.NewHasher(bcrypt.MinCost),
	}
	f.usecase = usecase.NewUserUsecase(logrus.New(), f.userRepo, f.roleRepo, f.patientRepo, f.hasher, f.tokenStore)
	return f
}

func TestCreateUserUnknownRole(t *testing.T) {
	f := newUserFixture(t)
	f.roleRepo.On("FindByID", mock.Anything, 99).Return(nil, nil)

	_, err := f.usecase.Create(context.Background(), &dto.CreateUserRequest{
		Email:     "new@example.com",
		Password:  "secret123",
		FirstName: "New",
		LastName:  "User",
		RoleID:    99,
	})

	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUserIsVerifiedImmediately(t *testing.T) {
	f := newUserFixture(t)
	f.roleRepo.On("FindByID", mock.Anything, entity.RoleIDDoctor).
		Return(&entity.Role{ID: entity.RoleIDDoctor, Name: "doctor"}, nil)

	var created *entity.User
	f.userRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(*entity.User) }).
		Return(nil)

	result, err := f.usecase.Create(context.Background(), &dto.CreateUserRequest{
		Email:     "doc@example.com",
		Password:  "secret123",
		FirstName: "Doc",
		LastName:  "Tor",
		RoleID:    entity.RoleIDDoctor,
	})

	require.NoError(t, err)
	assert.True(t, created.IsVerified)
	assert.Nil(t, created.VerificationCode)
	assert.True(t, created.IsActive)
	assert.Equal(t, "doctor", result.Role)
}

func TestCreateUserAttachesInlinePatientProfile(t *testing.T) {
	f := newUserFixture(t)
	f.roleRepo.On("FindByID", mock.Anything, entity.RoleIDPatient).
		Return(&entity.Role{ID: entity.RoleIDPatient, Name: "patient"}, nil)
	f.userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	var profile *entity.PatientProfile
	f.patientRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { profile = args.Get(1).(*entity.PatientProfile) }).
		Return(nil)

	result, err := f.usecase.Create(context.Background(), &dto.CreateUserRequest{
		Email:     "pat@example.com",
		Password:  "secret123",
		FirstName: "Pat",
		LastName:  "Ient",
		RoleID:    entity.RoleIDPatient,
		PatientProfile: &dto.PatientProfilePayload{
			IdentificationNumber: "12345678",
			BirthDate:            "1990-04-15",
		},
	})

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "12345678", profile.IdentificationNumber)
	assert.Equal(t, "CC", profile.IdentificationType)
	assert.True(t, profile.FirstVisit)
	require.NotNil(t, result.PatientProfile)
	assert.Equal(t, "1990-04-15", result.PatientProfile.BirthDate)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	f := newUserFixture(t)
	f.roleRepo.On("FindByID", mock.Anything, entity.RoleIDAdmin).
		Return(&entity.Role{ID: entity.RoleIDAdmin, Name: "admin"}, nil)
	f.userRepo.On("Create", mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := f.usecase.Create(context.Background(), &dto.CreateUserRequest{
		Email:     "dup@example.com",
		Password:  "secret123",
		FirstName: "Dup",
		LastName:  "User",
		RoleID:    entity.RoleIDAdmin,
	})

	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestUpdateUserNotFound(t *testing.T) {
	f := newUserFixture(t)
	id := uuid.New()
	f.userRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

	_, err := f.usecase.Update(context.Background(), id, &dto.UpdateUserRequest{})

	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdateUserOnlyTouchesProvidedFields(t *testing.T) {
	f := newUserFixture(t)
	user := &entity.User{
		ID:        uuid.New(),
		Email:     "ana@example.com",
		FirstName: "Ana",
		LastName:  "Rojas",
		Phone:     "3001234567",
		Password:  "existing-hash",
	}
	f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	f.userRepo.On("Update", mock.Anything, user).Return(nil)

	newPhone := "3009999999"
	result, err := f.usecase.Update(context.Background(), user.ID, &dto.UpdateUserRequest{
		Phone: &newPhone,
	})

	require.NoError(t, err)
	assert.Equal(t, "3009999999", result.Phone)
	assert.Equal(t, "Ana", user.FirstName)
	assert.Equal(t, "existing-hash", user.Password)
}

func TestUpdateUserRehashesNewPassword(t *testing.T) {
	f := newUserFixture(t)
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", Password: "old-hash"}
	f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	f.userRepo.On("Update", mock.Anything, user).Return(nil)

	newPassword := "newsecret"
	_, err := f.usecase.Update(context.Background(), user.ID, &dto.UpdateUserRequest{
		Password: &newPassword,
	})

	require.NoError(t, err)
	assert.NotEqual(t, "old-hash", user.Password)
	assert.NotEqual(t, "newsecret", user.Password)
	assert.True(t, f.hasher.Check("newsecret", user.Password))
}

func TestDeactivationRevokesTokens(t *testing.T) {
	f := newUserFixture(t)
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", IsActive: true}
	f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	f.userRepo.On("Update", mock.Anything, user).Return(nil)
	f.tokenStore.On("RevokeAll", mock.Anything, user.ID).Return(nil)

	result, err := f.usecase.SetActive(context.Background(), user.ID, false)

	require.NoError(t, err)
	assert.False(t, result.IsActive)
	f.tokenStore.AssertExpectations(t)
}

func TestReactivationLeavesTokensAlone(t *testing.T) {
	f := newUserFixture(t)
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", IsActive: false}
	f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	f.userRepo.On("Update", mock.Anything, user).Return(nil)

	result, err := f.usecase.SetActive(context.Background(), user.ID, true)

	require.NoError(t, err)
	assert.True(t, result.IsActive)
	f.tokenStore.AssertNotCalled(t, "RevokeAll", mock.Anything, mock.Anything)
}

func TestListUsersByUnknownRole(t *testing.T) {
	f := newUserFixture(t)
	f.roleRepo.On("FindByName", mock.Anything, "receptionist").Return(nil, nil)

	_, err := f.usecase.ListByRole(context.Background(), "receptionist")

	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	f.userRepo.AssertNotCalled(t, "FindByRoleName", mock.Anything, mock.Anything)
}

func TestListUsersByRole(t *testing.T) {
	f := newUserFixture(t)
	f.roleRepo.On("FindByName", mock.Anything, "doctor").
		Return(&entity.Role{ID: entity.RoleIDDoctor, Name: "doctor"}, nil)
	f.userRepo.On("FindByRoleName", mock.Anything, "doctor").Return([]entity.User{
		{ID: uuid.New(), Email: "doc@example.com", Role: entity.Role{Name: "doctor"}},
	}, nil)

	users, err := f.usecase.ListByRole(context.Background(), "doctor")

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "doctor", users[0].Role)
}

func TestSearchUsersRequiresTerm(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.usecase.Search(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	f.userRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestUserStatistics(t *testing.T) {
	f := newUserFixture(t)
	f.userRepo.On("Count", mock.Anything).Return(int64(10), nil)
	f.userRepo.On("CountVerified", mock.Anything).Return(int64(7), nil)
	f.userRepo.On("CountByRole", mock.Anything, entity.RoleIDAdmin).Return(int64(1), nil)
	f.userRepo.On("CountByRole", mock.Anything, entity.RoleIDDoctor).Return(int64(3), nil)
	f.userRepo.On("CountByRole", mock.Anything, entity.RoleIDPatient).Return(int64(6), nil)

	stats, err := f.usecase.Statistics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Total)
	assert.Equal(t, int64(7), stats.Verified)
	assert.Equal(t, int64(3), stats.Unverified)
	assert.Equal(t, int64(1), stats.Distribution.Admins)
	assert.Equal(t, int64(3), stats.Distribution.Doctors)
	assert.Equal(t, int64(6), stats.Distribution.Patients)
}
