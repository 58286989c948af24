package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateCanteenItemRequest struct {
	Name  string          `json:"name" validate:"required,min=2"`
	Price decimal.Decimal `json:"price" validate:"required"`
}

// OrderLineRequest is one structured (item, quantity) pair. Prices are always
// resolved from the store, never taken from the client.
type OrderLineRequest struct {
	ItemID   int `json:"item_id" validate:"required,gt=0"`
	Quantity int `json:"quantity" validate:"gte=0"`
}

type CreateOrderRequest struct {
	PatientID int                `json:"patient_id" validate:"required,gt=0"`
	Lines     []OrderLineRequest `json:"lines" validate:"required,dive"`
}

// Response DTOs

type CanteenItemResponse struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type CanteenItemListResponse struct {
	Items []CanteenItemResponse `json:"items"`
	Total int                   `json:"total"`
}

type OrderLineResponse struct {
	ItemID   int             `json:"item_id"`
	Name     string          `json:"name"`
	Qty      int             `json:"qty"`
	Price    decimal.Decimal `json:"price"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type OrderResponse struct {
	ID        uuid.UUID           `json:"id"`
	OrderCode string              `json:"order_code"`
	PatientID int                 `json:"patient_id"`
	Items     []OrderLineResponse `json:"items"`
	Total     decimal.Decimal     `json:"total"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}
