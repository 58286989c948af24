package repository

import (
	"go-hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

// StatsRepository serves the read-only dashboard aggregations. All values are
// recomputed from the store on every call; nothing is cached.
type StatsRepository interface {
	EntityCounts(db *gorm.DB) (*entity.EntityCounts, error)
	BedOccupancy(db *gorm.DB) (*entity.BedOccupancy, error)
	// StockLevels returns the stock of the last n medicines added, in
	// insertion order.
	StockLevels(db *gorm.DB, n int) ([]entity.StockLevel, error)
}
