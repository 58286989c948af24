package repository

import (
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type medicineRepository struct{}

func NewMedicineRepository() domainRepo.MedicineRepository {
	return &medicineRepository{}
}

func (r *medicineRepository) Create(db *gorm.DB, medicine *entity.Medicine) error {
	return db.Create(medicine).Error
}

func (r *medicineRepository) FindAll(db *gorm.DB) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	if err := db.Order("id").Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

func (r *medicineRepository) FindByID(db *gorm.DB, id int) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := db.Where("id = ?", id).First(&medicine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicine, nil
}

// DecrementStock atomically decrements quantity ONLY if enough stock remains.
// Returns affected rows: 1 = success, 0 = insufficient stock (prevents the
// lost-update race on concurrent purchases).
func (r *medicineRepository) DecrementStock(db *gorm.DB, id int, qty int) (int64, error) {
	result := db.Model(&entity.Medicine{}).
		Where("id = ? AND quantity >= ?", id, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	return result.RowsAffected, result.Error
}
