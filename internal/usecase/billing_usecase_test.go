package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/repository"

	"github.com/shopspring/decimal"
)

func newBillingUsecase(t *testing.T) (BillingUsecase, *testEnv) {
	t.Helper()
	db := newTestDB(t)
	return NewBillingUsecase(db, newTestLogger(), repository.NewBillRepository()), &testEnv{db: db}
}

func TestCreateBillTotalsLines(t *testing.T) {
	u, _ := newBillingUsecase(t)

	bill, err := u.CreateBill(context.Background(), &dto.CreateBillRequest{
		PatientID: 3,
		Lines: []dto.BillLineRequest{
			{Description: "Room charge", Amount: decimal.NewFromFloat(120.00)},
			{Description: "", Amount: decimal.Zero}, // blank row, dropped
			{Description: "X-ray", Amount: decimal.NewFromFloat(45.50)},
		},
	})
	if err != nil {
		t.Fatalf("CreateBill failed: %v", err)
	}

	if len(bill.Items) != 2 {
		t.Fatalf("expected 2 bill lines, got %d", len(bill.Items))
	}
	if !bill.Total.Equal(decimal.NewFromFloat(165.50)) {
		t.Errorf("expected total 165.50, got %s", bill.Total)
	}
	if !strings.HasPrefix(bill.InvoiceCode, "INV-") {
		t.Errorf("unexpected invoice code: %q", bill.InvoiceCode)
	}
}

func TestCreateBillRejectsEmptyBill(t *testing.T) {
	u, env := newBillingUsecase(t)

	_, err := u.CreateBill(context.Background(), &dto.CreateBillRequest{PatientID: 3})
	if !errors.Is(err, ErrEmptyBill) {
		t.Fatalf("expected ErrEmptyBill, got %v", err)
	}
	if got := env.count(t, &entity.Bill{}); got != 0 {
		t.Errorf("rejected bill should not be persisted, found %d rows", got)
	}
}

func TestCreateBillRejectsNegativeAmount(t *testing.T) {
	u, env := newBillingUsecase(t)

	_, err := u.CreateBill(context.Background(), &dto.CreateBillRequest{
		PatientID: 3,
		Lines: []dto.BillLineRequest{
			{Description: "Refund", Amount: decimal.NewFromFloat(-10.00)},
		},
	})
	if !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
	if got := env.count(t, &entity.Bill{}); got != 0 {
		t.Errorf("rejected bill should not be persisted, found %d rows", got)
	}
}

func TestGetAllBillsRoundTripsLines(t *testing.T) {
	u, _ := newBillingUsecase(t)
	ctx := context.Background()

	if _, err := u.CreateBill(ctx, &dto.CreateBillRequest{
		PatientID: 1,
		Lines:     []dto.BillLineRequest{{Description: "Consultation", Amount: decimal.NewFromFloat(30.00)}},
	}); err != nil {
		t.Fatalf("CreateBill failed: %v", err)
	}

	bills, err := u.GetAllBills(ctx)
	if err != nil {
		t.Fatalf("GetAllBills failed: %v", err)
	}
	if bills.Total != 1 {
		t.Fatalf("expected 1 bill, got %d", bills.Total)
	}
	if len(bills.Bills[0].Items) != 1 || bills.Bills[0].Items[0].Description != "Consultation" {
		t.Errorf("line items did not survive the store round trip: %+v", bills.Bills[0].Items)
	}
}
