package repository

import (
	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type billRepository struct{}

func NewBillRepository() domainRepo.BillRepository {
	return &billRepository{}
}

func (r *billRepository) Create(db *gorm.DB, bill *entity.Bill) error {
	return db.Create(bill).Error
}

func (r *billRepository) FindAll(db *gorm.DB) ([]entity.Bill, error) {
	var bills []entity.Bill
	if err := db.Order("billed_at DESC").Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

// TotalRevenue sums all bill totals, defaulting to zero when no bills exist.
func (r *billRepository) TotalRevenue(db *gorm.DB) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := db.Model(&entity.Bill{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenue).Error
	if err != nil {
		return decimal.Zero, err
	}
	return revenue, nil
}
