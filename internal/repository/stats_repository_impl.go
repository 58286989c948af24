package repository

import (
	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type statsRepository struct{}

func NewStatsRepository() domainRepo.StatsRepository {
	return &statsRepository{}
}

func (r *statsRepository) EntityCounts(db *gorm.DB) (*entity.EntityCounts, error) {
	counts := &entity.EntityCounts{}

	tables := []struct {
		model interface{}
		dest  *int64
	}{
		{&entity.Patient{}, &counts.Patients},
		{&entity.Doctor{}, &counts.Doctors},
		{&entity.Nurse{}, &counts.Nurses},
		{&entity.Medicine{}, &counts.Medicines},
		{&entity.Bed{}, &counts.Beds},
		{&entity.CanteenItem{}, &counts.CanteenItems},
		{&entity.CanteenOrder{}, &counts.Orders},
		{&entity.Bill{}, &counts.Bills},
	}

	for _, t := range tables {
		if err := db.Model(t.model).Count(t.dest).Error; err != nil {
			return nil, err
		}
	}

	return counts, nil
}

func (r *statsRepository) BedOccupancy(db *gorm.DB) (*entity.BedOccupancy, error) {
	occupancy := &entity.BedOccupancy{}

	err := db.Model(&entity.Bed{}).
		Where("availability = ?", entity.BedAvailable).
		Count(&occupancy.Available).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&entity.Bed{}).
		Where("availability = ?", entity.BedOccupied).
		Count(&occupancy.Occupied).Error
	if err != nil {
		return nil, err
	}

	return occupancy, nil
}

// StockLevels returns the stock of the last n medicines added, oldest first,
// for the dashboard chart.
func (r *statsRepository) StockLevels(db *gorm.DB, n int) ([]entity.StockLevel, error) {
	var levels []entity.StockLevel

	err := db.Model(&entity.Medicine{}).
		Select("id as medicine_id, name, quantity").
		Order("id DESC").
		Limit(n).
		Scan(&levels).Error
	if err != nil {
		return nil, err
	}

	// Query returns newest first; flip to insertion order for charting.
	for i, j := 0, len(levels)-1; i < j; i, j = i+1, j-1 {
		levels[i], levels[j] = levels[j], levels[i]
	}

	return levels, nil
}
