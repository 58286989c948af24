package repository

import (
	"context"

	"go-hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type CanteenItemRepository interface {
	Create(ctx context.Context, item *entity.CanteenItem) error
	FindAll(ctx context.Context) ([]entity.CanteenItem, error)
	FindByID(ctx context.Context, id int) (*entity.CanteenItem, error)
}

type CanteenOrderRepository interface {
	Create(db *gorm.DB, order *entity.CanteenOrder) error
	FindAll(db *gorm.DB) ([]entity.CanteenOrder, error)
}
