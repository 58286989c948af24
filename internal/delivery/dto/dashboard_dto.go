package dto

import (
	"go-hospital-management/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// DashboardResponse carries the aggregate counts and chart data shown on the
// dashboard. Everything is recomputed per request.
type DashboardResponse struct {
	Counts       entity.EntityCounts `json:"counts"`
	BedOccupancy entity.BedOccupancy `json:"bed_occupancy"`
	StockLevels  []entity.StockLevel `json:"stock_levels"`
	TotalRevenue decimal.Decimal     `json:"total_revenue"`
}
