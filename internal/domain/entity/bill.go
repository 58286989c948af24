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

// BillLine is one (description, amount) line of a bill
type BillLine struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// BillLines is a jsonb-backed ordered line-item list
type BillLines []BillLine

// Value returns json value, implement driver.Valuer interface
func (l BillLines) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan scan value into BillLines, implements sql.Scanner interface
func (l *BillLines) Scan(value interface{}) error {
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

	var result []BillLine
	err := json.Unmarshal(bytes, &result)
	*l = BillLines(result)
	return err
}

// Bill represents a patient bill with embedded line items.
// Total always equals the sum of line amounts.
type Bill struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceCode string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"invoice_code"`
	PatientID   int             `gorm:"not null;index" json:"patient_id"`
	Items       BillLines       `gorm:"type:jsonb;not null" json:"items"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	BilledAt    time.Time       `gorm:"autoCreateTime" json:"billed_at"`
}

func (Bill) TableName() string {
	return "bills"
}

// BeforeCreate assigns the id client-side so stores without uuid functions
// still work.
func (b *Bill) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
