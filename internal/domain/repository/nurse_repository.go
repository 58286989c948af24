package repository

import (
	"context"

	"go-hospital-management/internal/domain/entity"
)

type NurseRepository interface {
	Create(ctx context.Context, nurse *entity.Nurse) error
	FindAll(ctx context.Context) ([]entity.Nurse, error)
}
