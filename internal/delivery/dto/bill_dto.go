package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type BillLineRequest struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
}

type CreateBillRequest struct {
	PatientID int               `json:"patient_id" validate:"required,gt=0"`
	Lines     []BillLineRequest `json:"lines" validate:"required,dive"`
}

// Response DTOs

type BillLineResponse struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type BillResponse struct {
	ID          uuid.UUID          `json:"id"`
	InvoiceCode string             `json:"invoice_code"`
	PatientID   int                `json:"patient_id"`
	Items       []BillLineResponse `json:"items"`
	Total       decimal.Decimal    `json:"total"`
	BilledAt    time.Time          `json:"billed_at"`
}

type BillListResponse struct {
	Bills []BillResponse `json:"bills"`
	Total int            `json:"total"`
}
