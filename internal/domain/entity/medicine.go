package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine represents a pharmacy stock item.
// Quantity must never go negative; purchases that would overdraw stock are
// rejected at the usecase layer with a guarded decrement.
type Medicine struct {
	ID        int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Quantity  int             `gorm:"not null;default:0" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Medicine) TableName() string {
	return "medicines"
}

// InStock checks whether qty units can be taken from current stock
func (m *Medicine) InStock(qty int) bool {
	return qty > 0 && qty <= m.Quantity
}
