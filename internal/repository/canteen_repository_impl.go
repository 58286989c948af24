package repository

import (
	"context"
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type canteenItemRepository struct {
	db *gorm.DB
}

func NewCanteenItemRepository(db *gorm.DB) domainRepo.CanteenItemRepository {
	return &canteenItemRepository{db: db}
}

func (r *canteenItemRepository) Create(ctx context.Context, item *entity.CanteenItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *canteenItemRepository) FindAll(ctx context.Context) ([]entity.CanteenItem, error) {
	var items []entity.CanteenItem
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *canteenItemRepository) FindByID(ctx context.Context, id int) (*entity.CanteenItem, error) {
	var item entity.CanteenItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

type canteenOrderRepository struct{}

func NewCanteenOrderRepository() domainRepo.CanteenOrderRepository {
	return &canteenOrderRepository{}
}

func (r *canteenOrderRepository) Create(db *gorm.DB, order *entity.CanteenOrder) error {
	return db.Create(order).Error
}

func (r *canteenOrderRepository) FindAll(db *gorm.DB) ([]entity.CanteenOrder, error) {
	var orders []entity.CanteenOrder
	if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
