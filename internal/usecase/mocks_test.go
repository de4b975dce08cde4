package usecase_test

import (
	"context"
	"time"

	"clinic-api/internal/domain/entity"
	"clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]entity.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByRoleName(ctx context.Context, roleName string) ([]entity.User, error) {
	args := m.Called(ctx, roleName)
	if users, ok := args.Get(0).([]entity.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Search(ctx context.Context, term string) ([]entity.User, error) {
	args := m.Called(ctx, term)
	if users, ok := args.Get(0).([]entity.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountVerified(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, roleID int) (int64, error) {
	args := m.Called(ctx, roleID)
	return args.Get(0).(int64), args.Error(1)
}

type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) FindByID(ctx context.Context, id int) (*entity.Role, error) {
	args := m.Called(ctx, id)
	if role, ok := args.Get(0).(*entity.Role); ok {
		return role, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	args := m.Called(ctx, name)
	if role, ok := args.Get(0).(*entity.Role); ok {
		return role, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRoleRepository) FindActive(ctx context.Context) ([]entity.Role, error) {
	args := m.Called(ctx)
	if roles, ok := args.Get(0).([]entity.Role); ok {
		return roles, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPatientProfileRepository struct {
	mock.Mock
}

func (m *MockPatientProfileRepository) Create(ctx context.Context, profile *entity.PatientProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockPatientProfileRepository) Update(ctx context.Context, profile *entity.PatientProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockPatientProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error) {
	args := m.Called(ctx, userID)
	if profile, ok := args.Get(0).(*entity.PatientProfile); ok {
		return profile, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientProfileRepository) FindByIdentification(ctx context.Context, identification string) (*entity.PatientProfile, error) {
	args := m.Called(ctx, identification)
	if profile, ok := args.Get(0).(*entity.PatientProfile); ok {
		return profile, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientProfileRepository) FindAll(ctx context.Context) ([]entity.PatientProfile, error) {
	args := m.Called(ctx)
	if profiles, ok := args.Get(0).([]entity.PatientProfile); ok {
		return profiles, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientProfileRepository) FindByAssignedDoctor(ctx context.Context, doctorID uuid.UUID) ([]entity.PatientProfile, error) {
	args := m.Called(ctx, doctorID)
	if profiles, ok := args.Get(0).([]entity.PatientProfile); ok {
		return profiles, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientProfileRepository) Stats(ctx context.Context) (*repository.PatientStats, error) {
	args := m.Called(ctx)
	if stats, ok := args.Get(0).(*repository.PatientStats); ok {
		return stats, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Register(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, userID, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsValid(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	args := m.Called(ctx, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, subject, templateName string, data map[string]interface{}) error {
	args := m.Called(ctx, to, subject, templateName, data)
	return args.Error(0)
}
