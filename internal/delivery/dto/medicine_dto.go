package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateMedicineRequest struct {
	Name     string          `json:"name" validate:"required,min=2"`
	Quantity int             `json:"quantity" validate:"gte=0"`
	Price    decimal.Decimal `json:"price" validate:"required"`
}

type PurchaseMedicineRequest struct {
	PatientID int `json:"patient_id" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"required,gt=0"`
}

// Response DTOs

type MedicineResponse struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type MedicineListResponse struct {
	Medicines []MedicineResponse `json:"medicines"`
	Total     int                `json:"total"`
}

// PurchaseResponse returns the updated stock and the bill created for it
type PurchaseResponse struct {
	Medicine MedicineResponse `json:"medicine"`
	Bill     BillResponse     `json:"bill"`
}
