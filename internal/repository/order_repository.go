package repository

import (
	"context"

	"shop/internal/domain/model"
)

// 注文は作成と一覧のみ（更新・削除はしない）
type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	//新しい順
	ListAll(ctx context.Context) ([]model.Order, error)
}
