package usecase

import (
	"context"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	statsRepo      repository.StatsRepository
	billRepo       repository.BillRepository
	stockChartSize int
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	statsRepo repository.StatsRepository,
	billRepo repository.BillRepository,
	stockChartSize int,
) DashboardUsecase {
	return &dashboardUsecase{
		db:             db,
		log:            log,
		statsRepo:      statsRepo,
		billRepo:       billRepo,
		stockChartSize: stockChartSize,
	}
}

// GetStats recomputes every dashboard aggregate from the store. Nothing is
// cached between requests.
func (u *dashboardUsecase) GetStats(ctx context.Context) (*dto.DashboardResponse, error) {
	db := u.db.WithContext(ctx)

	counts, err := u.statsRepo.EntityCounts(db)
	if err != nil {
		u.log.Warnf("Failed to compute entity counts: %+v", err)
		return nil, err
	}

	occupancy, err := u.statsRepo.BedOccupancy(db)
	if err != nil {
		u.log.Warnf("Failed to compute bed occupancy: %+v", err)
		return nil, err
	}

	stockLevels, err := u.statsRepo.StockLevels(db, u.stockChartSize)
	if err != nil {
		u.log.Warnf("Failed to compute stock levels: %+v", err)
		return nil, err
	}

	revenue, err := u.billRepo.TotalRevenue(db)
	if err != nil {
		u.log.Warnf("Failed to compute total revenue: %+v", err)
		return nil, err
	}

	return &dto.DashboardResponse{
		Counts:       *counts,
		BedOccupancy: *occupancy,
		StockLevels:  stockLevels,
		TotalRevenue: revenue,
	}, nil
}
