package repository

import (
	"context"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type nurseRepository struct {
	db *gorm.DB
}

func NewNurseRepository(db *gorm.DB) domainRepo.NurseRepository {
	return &nurseRepository{db: db}
}

func (r *nurseRepository) Create(ctx context.Context, nurse *entity.Nurse) error {
	return r.db.WithContext(ctx).Create(nurse).Error
}

func (r *nurseRepository) FindAll(ctx context.Context) ([]entity.Nurse, error) {
	var nurses []entity.Nurse
	if err := r.db.WithContext(ctx).Order("id").Find(&nurses).Error; err != nil {
		return nil, err
	}
	return nurses, nil
}
