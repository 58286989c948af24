package repository

import (
	"context"

	"go-hospital-management/internal/domain/entity"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindAll(ctx context.Context) ([]entity.Patient, error)
	FindByID(ctx context.Context, id int) (*entity.Patient, error)
	Delete(ctx context.Context, id int) error
}
