package repository

import (
	"context"
	"errors"

	"shop/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error
}
