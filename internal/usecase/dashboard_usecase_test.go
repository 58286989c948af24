package usecase

import (
	"context"
	"testing"

	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newDashboardUsecase(t *testing.T, stockChartSize int) (DashboardUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	u := NewDashboardUsecase(db, newTestLogger(), repository.NewStatsRepository(), repository.NewBillRepository(), stockChartSize)
	return u, db
}

func TestGetStatsEmptyStore(t *testing.T) {
	u, _ := newDashboardUsecase(t, 10)

	stats, err := u.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}

	if stats.Counts.Patients != 0 || stats.Counts.Bills != 0 {
		t.Errorf("expected zero counts, got %+v", stats.Counts)
	}
	if !stats.TotalRevenue.Equal(decimal.Zero) {
		t.Errorf("expected zero revenue, got %s", stats.TotalRevenue)
	}
	if len(stats.StockLevels) != 0 {
		t.Errorf("expected no stock levels, got %d", len(stats.StockLevels))
	}
}

func TestGetStatsAggregates(t *testing.T) {
	u, db := newDashboardUsecase(t, 2)
	ctx := context.Background()

	patientID := 1
	seed := []interface{}{
		&entity.Patient{Name: "Alice", Age: 30, Gender: "female"},
		&entity.Patient{Name: "Bob", Age: 45, Gender: "male"},
		&entity.Doctor{Name: "Dr. Carol", Specialization: "cardiology"},
		&entity.Bed{RoomNo: "101", BedType: "general", Availability: entity.BedAvailable},
		&entity.Bed{RoomNo: "102", BedType: "icu", Availability: entity.BedOccupied, PatientID: &patientID},
		&entity.Medicine{Name: "Aspirin", Quantity: 10, Price: decimal.NewFromInt(2)},
		&entity.Medicine{Name: "Ibuprofen", Quantity: 5, Price: decimal.NewFromInt(3)},
		&entity.Medicine{Name: "Paracetamol", Quantity: 8, Price: decimal.NewFromInt(1)},
		&entity.Bill{
			InvoiceCode: "INV-20260901-TEST01",
			PatientID:   1,
			Items:       entity.BillLines{{Description: "Room charge", Amount: decimal.NewFromInt(100)}},
			Total:       decimal.NewFromInt(100),
		},
		&entity.Bill{
			InvoiceCode: "INV-20260901-TEST02",
			PatientID:   2,
			Items:       entity.BillLines{{Description: "X-ray", Amount: decimal.NewFromInt(25)}},
			Total:       decimal.NewFromInt(25),
		},
	}
	for _, row := range seed {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("failed to seed %T: %v", row, err)
		}
	}

	stats, err := u.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}

	if stats.Counts.Patients != 2 || stats.Counts.Doctors != 1 || stats.Counts.Medicines != 3 ||
		stats.Counts.Beds != 2 || stats.Counts.Bills != 2 {
		t.Errorf("unexpected counts: %+v", stats.Counts)
	}
	if stats.BedOccupancy.Available != 1 || stats.BedOccupancy.Occupied != 1 {
		t.Errorf("unexpected occupancy: %+v", stats.BedOccupancy)
	}
	if !stats.TotalRevenue.Equal(decimal.NewFromInt(125)) {
		t.Errorf("expected revenue 125, got %s", stats.TotalRevenue)
	}

	// The chart window keeps the newest medicines in insertion order.
	if len(stats.StockLevels) != 2 {
		t.Fatalf("expected 2 stock levels, got %d", len(stats.StockLevels))
	}
	if stats.StockLevels[0].Name != "Ibuprofen" || stats.StockLevels[1].Name != "Paracetamol" {
		t.Errorf("unexpected stock chart window: %+v", stats.StockLevels)
	}
}
