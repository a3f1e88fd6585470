package repository

import (
	"context"

	"shop/internal/domain/model"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

// 新しい注文から順に返す
func (r *OrderGormRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Find(&orders).Error
	if err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}
