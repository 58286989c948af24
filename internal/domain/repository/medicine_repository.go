package repository

import (
	"go-hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

// MedicineRepository takes the DB handle per call so usecases can run the
// guarded stock decrement and the bill insert inside one transaction.
type MedicineRepository interface {
	Create(db *gorm.DB, medicine *entity.Medicine) error
	FindAll(db *gorm.DB) ([]entity.Medicine, error)
	FindByID(db *gorm.DB, id int) (*entity.Medicine, error)
	// DecrementStock atomically decrements quantity ONLY if enough stock
	// remains. Returns affected rows: 1 = success, 0 = insufficient stock.
	DecrementStock(db *gorm.DB, id int, qty int) (int64, error)
}
