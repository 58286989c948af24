package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CanteenItem represents a purchasable canteen menu item
type CanteenItem struct {
	ID    int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string          `gorm:"type:varchar(255);not null" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (CanteenItem) TableName() string {
	return "canteen_items"
}

// OrderStatus represents the status of a canteen order
type OrderStatus string

const (
	OrderStatusPlaced OrderStatus = "placed"
)

// OrderLine is one line of a canteen order. Price is the stored item price at
// order time, never a client-supplied value.
type OrderLine struct {
	ItemID   int             `json:"item_id"`
	Name     string          `json:"name"`
	Qty      int             `json:"qty"`
	Price    decimal.Decimal `json:"price"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// OrderLines is a jsonb-backed ordered line-item list
type OrderLines []OrderLine

// Value returns json value, implement driver.Valuer interface
func (l OrderLines) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan scan value into OrderLines, implements sql.Scanner interface
func (l *OrderLines) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []OrderLine
	err := json.Unmarshal(bytes, &result)
	*l = OrderLines(result)
	return err
}

// CanteenOrder represents a placed canteen food order
type CanteenOrder struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OrderCode string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_code"`
	PatientID int             `gorm:"not null;index" json:"patient_id"`
	Items     OrderLines      `gorm:"type:jsonb;not null" json:"items"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Status    OrderStatus     `gorm:"type:varchar(20);not null;default:'placed'" json:"status"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (CanteenOrder) TableName() string {
	return "canteen_orders"
}

// BeforeCreate assigns the id client-side so stores without uuid functions
// still work.
func (o *CanteenOrder) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
