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

func newCanteenUsecase(t *testing.T) (CanteenUsecase, *testEnv) {
	t.Helper()
	db := newTestDB(t)
	u := NewCanteenUsecase(db, newTestLogger(), repository.NewCanteenItemRepository(db), repository.NewCanteenOrderRepository())
	return u, &testEnv{db: db}
}

func TestPlaceOrderPricesFromStore(t *testing.T) {
	u, _ := newCanteenUsecase(t)
	ctx := context.Background()

	rice, err := u.CreateItem(ctx, &dto.CreateCanteenItemRequest{Name: "Rice bowl", Price: decimal.NewFromFloat(5.50)})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}
	soup, err := u.CreateItem(ctx, &dto.CreateCanteenItemRequest{Name: "Soup", Price: decimal.NewFromFloat(3.25)})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	order, err := u.PlaceOrder(ctx, &dto.CreateOrderRequest{
		PatientID: 1,
		Lines: []dto.OrderLineRequest{
			{ItemID: rice.ID, Quantity: 2},
			{ItemID: soup.ID, Quantity: 1},
			{ItemID: rice.ID, Quantity: 0}, // untouched row, dropped
		},
	})
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}

	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order lines, got %d", len(order.Items))
	}
	if !order.Items[0].Subtotal.Equal(decimal.NewFromFloat(11.00)) {
		t.Errorf("expected rice subtotal 11.00, got %s", order.Items[0].Subtotal)
	}
	if !order.Total.Equal(decimal.NewFromFloat(14.25)) {
		t.Errorf("expected order total 14.25, got %s", order.Total)
	}
	if order.Status != string(entity.OrderStatusPlaced) {
		t.Errorf("expected status placed, got %q", order.Status)
	}
	if !strings.HasPrefix(order.OrderCode, "ORD-") {
		t.Errorf("unexpected order code: %q", order.OrderCode)
	}
}

func TestPlaceOrderRejectsEmptyOrder(t *testing.T) {
	u, env := newCanteenUsecase(t)
	ctx := context.Background()

	item, err := u.CreateItem(ctx, &dto.CreateCanteenItemRequest{Name: "Soup", Price: decimal.NewFromFloat(3.25)})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	_, err = u.PlaceOrder(ctx, &dto.CreateOrderRequest{
		PatientID: 1,
		Lines:     []dto.OrderLineRequest{{ItemID: item.ID, Quantity: 0}},
	})
	if !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
	if got := env.count(t, &entity.CanteenOrder{}); got != 0 {
		t.Errorf("rejected order should not be persisted, found %d rows", got)
	}
}

func TestPlaceOrderUnknownItem(t *testing.T) {
	u, _ := newCanteenUsecase(t)

	_, err := u.PlaceOrder(context.Background(), &dto.CreateOrderRequest{
		PatientID: 1,
		Lines:     []dto.OrderLineRequest{{ItemID: 999, Quantity: 1}},
	})
	if !errors.Is(err, ErrCanteenItemNotFound) {
		t.Fatalf("expected ErrCanteenItemNotFound, got %v", err)
	}
}
