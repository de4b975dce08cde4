package repository

import (
	"context"

	"clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository is the persistence boundary for accounts. Find methods return
// (nil, nil) when no row matches; errors are reserved for store failures.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindAll(ctx context.Context) ([]entity.User, error)
	FindByRoleName(ctx context.Context, roleName string) ([]entity.User, error)
	Search(ctx context.Context, term string) ([]entity.User, error)
	Count(ctx context.Context) (int64, error)
	CountVerified(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, roleID int) (int64, error)
}
