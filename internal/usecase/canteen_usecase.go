package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"go-hospital-management/internal/converter"
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCanteenItemNotFound = errors.New("canteen item not found")
	ErrEmptyOrder          = errors.New("order has no items")
)

type CanteenUsecase interface {
	CreateItem(ctx context.Context, req *dto.CreateCanteenItemRequest) (*dto.CanteenItemResponse, error)
	GetAllItems(ctx context.Context) (*dto.CanteenItemListResponse, error)
	PlaceOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.OrderResponse, error)
	GetAllOrders(ctx context.Context) (*dto.OrderListResponse, error)
}

type canteenUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	itemRepo  repository.CanteenItemRepository
	orderRepo repository.CanteenOrderRepository
}

func NewCanteenUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	itemRepo repository.CanteenItemRepository,
	orderRepo repository.CanteenOrderRepository,
) CanteenUsecase {
	return &canteenUsecase{
		db:        db,
		log:       log,
		itemRepo:  itemRepo,
		orderRepo: orderRepo,
	}
}

func (u *canteenUsecase) CreateItem(ctx context.Context, req *dto.CreateCanteenItemRequest) (*dto.CanteenItemResponse, error) {
	item := &entity.CanteenItem{
		Name:  req.Name,
		Price: req.Price,
	}

	if err := u.itemRepo.Create(ctx, item); err != nil {
		u.log.Warnf("Failed to create canteen item: %+v", err)
		return nil, err
	}

	u.log.Infof("Canteen item created: id=%d, name=%s", item.ID, item.Name)
	return converter.CanteenItemToResponse(item), nil
}

func (u *canteenUsecase) GetAllItems(ctx context.Context) (*dto.CanteenItemListResponse, error) {
	items, err := u.itemRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list canteen items: %+v", err)
		return nil, err
	}

	return &dto.CanteenItemListResponse{
		Items: converter.CanteenItemsToResponses(items),
		Total: len(items),
	}, nil
}

// PlaceOrder assembles and persists a canteen order.
//
// Flow:
// 1. Drop lines with quantity <= 0
// 2. Resolve each item and its CURRENT price from the store; client-supplied
//    prices are never trusted
// 3. Reject when no positive-quantity line remains (nothing is written)
// 4. Persist the whole order as one row with the embedded line list
func (u *canteenUsecase) PlaceOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	var lines entity.OrderLines
	total := decimal.Zero

	for _, reqLine := range req.Lines {
		if reqLine.Quantity <= 0 {
			continue
		}

		item, err := u.itemRepo.FindByID(ctx, reqLine.ItemID)
		if err != nil {
			u.log.Warnf("Failed to resolve canteen item %d: %+v", reqLine.ItemID, err)
			return nil, err
		}
		if item == nil {
			return nil, ErrCanteenItemNotFound
		}

		subtotal := item.Price.Mul(decimal.NewFromInt(int64(reqLine.Quantity)))
		lines = append(lines, entity.OrderLine{
			ItemID:   item.ID,
			Name:     item.Name,
			Qty:      reqLine.Quantity,
			Price:    item.Price,
			Subtotal: subtotal,
		})
		total = total.Add(subtotal)
	}

	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	order := &entity.CanteenOrder{
		OrderCode: generateOrderCode(time.Now()),
		PatientID: req.PatientID,
		Items:     lines,
		Total:     total,
		Status:    entity.OrderStatusPlaced,
	}

	if err := u.orderRepo.Create(u.db.WithContext(ctx), order); err != nil {
		u.log.Warnf("Failed to place order for patient %d: %+v", req.PatientID, err)
		return nil, err
	}

	u.log.Infof("Order placed: code=%s, patient=%d, lines=%d, total=%s", order.OrderCode, req.PatientID, len(lines), total)
	return converter.OrderToResponse(order), nil
}

func (u *canteenUsecase) GetAllOrders(ctx context.Context) (*dto.OrderListResponse, error) {
	orders, err := u.orderRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list orders: %+v", err)
		return nil, err
	}

	return &dto.OrderListResponse{
		Orders: converter.OrdersToResponses(orders),
		Total:  len(orders),
	}, nil
}

// generateOrderCode generates a unique order code: ORD-YYYYMMDD-XXXXXX
func generateOrderCode(at time.Time) string {
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	return fmt.Sprintf("ORD-%s-%06X", at.Format("20060102"), randomBytes)
}
