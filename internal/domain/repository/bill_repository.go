package repository

import (
	"go-hospital-management/internal/domain/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BillRepository interface {
	Create(db *gorm.DB, bill *entity.Bill) error
	FindAll(db *gorm.DB) ([]entity.Bill, error)
	// TotalRevenue sums all bill totals, zero when no bills exist.
	TotalRevenue(db *gorm.DB) (decimal.Decimal, error)
}
