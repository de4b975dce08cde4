package repository

import (
	"context"

	"clinic-api/internal/domain/entity"
)

type RoleRepository interface {
	FindByID(ctx context.Context, id int) (*entity.Role, error)
	FindByName(ctx context.Context, name string) (*entity.Role, error)
	FindActive(ctx context.Context) ([]entity.Role, error)
}
