package repository

import (
	"go-hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type BedRepository interface {
	Create(db *gorm.DB, bed *entity.Bed) error
	FindAll(db *gorm.DB) ([]entity.Bed, error)
	FindByID(db *gorm.DB, id int) (*entity.Bed, error)
	// Assign atomically occupies a bed ONLY if it is currently available.
	// Returns affected rows: 1 = success, 0 = bed already occupied.
	Assign(db *gorm.DB, id int, patientID int) (int64, error)
	// Release unconditionally resets a bed to available and clears the
	// patient reference. Idempotent.
	Release(db *gorm.DB, id int) error
}
