package repository

import (
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type bedRepository struct{}

func NewBedRepository() domainRepo.BedRepository {
	return &bedRepository{}
}

func (r *bedRepository) Create(db *gorm.DB, bed *entity.Bed) error {
	return db.Create(bed).Error
}

func (r *bedRepository) FindAll(db *gorm.DB) ([]entity.Bed, error) {
	var beds []entity.Bed
	if err := db.Order("id").Find(&beds).Error; err != nil {
		return nil, err
	}
	return beds, nil
}

func (r *bedRepository) FindByID(db *gorm.DB, id int) (*entity.Bed, error) {
	var bed entity.Bed
	err := db.Where("id = ?", id).First(&bed).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bed, nil
}

// Assign atomically occupies a bed ONLY if it is currently available.
// Returns affected rows: 1 = success, 0 = already occupied (prevents the
// last-writer-wins race on concurrent assignments).
func (r *bedRepository) Assign(db *gorm.DB, id int, patientID int) (int64, error) {
	result := db.Model(&entity.Bed{}).
		Where("id = ? AND availability = ?", id, entity.BedAvailable).
		Updates(map[string]interface{}{
			"availability": entity.BedOccupied,
			"patient_id":   patientID,
		})
	return result.RowsAffected, result.Error
}

// Release resets a bed to available and clears the patient reference,
// regardless of prior state.
func (r *bedRepository) Release(db *gorm.DB, id int) error {
	return db.Model(&entity.Bed{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"availability": entity.BedAvailable,
			"patient_id":   nil,
		}).Error
}
