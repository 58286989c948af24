package usecase

import (
	"context"
	"testing"

	"go-hospital-management/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func TestResetDemoEmptiesEveryTable(t *testing.T) {
	db := newTestDB(t)
	env := &testEnv{db: db}
	u := NewAdminUsecase(db, newTestLogger())

	seed := []interface{}{
		&entity.Patient{Name: "Alice", Age: 30, Gender: "female"},
		&entity.Doctor{Name: "Dr. Carol", Specialization: "cardiology"},
		&entity.Nurse{Name: "Dana", Shift: "morning"},
		&entity.Medicine{Name: "Aspirin", Quantity: 10, Price: decimal.NewFromInt(2)},
		&entity.Bed{RoomNo: "101", BedType: "general", Availability: entity.BedAvailable},
		&entity.CanteenItem{Name: "Soup", Price: decimal.NewFromFloat(3.25)},
		&entity.CanteenOrder{
			OrderCode: "ORD-20260901-TEST01",
			PatientID: 1,
			Items:     entity.OrderLines{{ItemID: 1, Name: "Soup", Qty: 1, Price: decimal.NewFromFloat(3.25), Subtotal: decimal.NewFromFloat(3.25)}},
			Total:     decimal.NewFromFloat(3.25),
			Status:    entity.OrderStatusPlaced,
		},
		&entity.Bill{
			InvoiceCode: "INV-20260901-TEST01",
			PatientID:   1,
			Items:       entity.BillLines{{Description: "Soup", Amount: decimal.NewFromFloat(3.25)}},
			Total:       decimal.NewFromFloat(3.25),
		},
	}
	for _, row := range seed {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("failed to seed %T: %v", row, err)
		}
	}

	if err := u.ResetDemo(context.Background()); err != nil {
		t.Fatalf("ResetDemo failed: %v", err)
	}

	models := []interface{}{
		&entity.Patient{},
		&entity.Doctor{},
		&entity.Nurse{},
		&entity.Medicine{},
		&entity.Bed{},
		&entity.CanteenItem{},
		&entity.CanteenOrder{},
		&entity.Bill{},
	}
	for _, model := range models {
		if got := env.count(t, model); got != 0 {
			t.Errorf("%T: expected empty table after reset, found %d rows", model, got)
		}
	}
}
