package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

// 名前が無い注文に入れるプレースホルダ
const defaultCustomerName = "guest"

type OrderUsecase struct {
	orders repo.OrderRepository
}

func NewOrderUsecase(orders repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{orders: orders}
}

type CheckoutInput struct {
	CustomerName string
	Cart         []json.RawMessage
}

type CheckoutOutput struct {
	OrderID      int64
	CustomerName string
	TotalAmount  int64
}

// Checkout は合計を計算して注文を1行保存する。
// カートはそのままJSONでスナップショットとして残す。
func (u *OrderUsecase) Checkout(ctx context.Context, in CheckoutInput) (CheckoutOutput, error) {
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		name = defaultCustomerName
	}

	total := cartTotal(in.Cart)

	id, err := u.orders.Create(ctx, model.Order{
		CustomerName: name,
		OrderData:    model.LineItems(in.Cart),
		TotalAmount:  total,
	})
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CheckoutOutput{
		OrderID:      id,
		CustomerName: name,
		TotalAmount:  total,
	}, nil
}

// 合計 = Σ price × quantity。quantityが無ければ1、priceが無ければ0。
func cartTotal(cart []json.RawMessage) int64 {
	var total int64
	for _, item := range cart {
		var line struct {
			Price    json.Number `json:"price"`
			Quantity json.Number `json:"quantity"`
		}
		if err := json.Unmarshal(item, &line); err != nil {
			continue
		}

		price, err := line.Price.Float64()
		if err != nil {
			price = 0
		}
		qty := float64(1)
		if line.Quantity != "" {
			if q, err := line.Quantity.Float64(); err == nil {
				qty = q
			}
		}
		total += int64(price * qty)
	}
	return total
}

func (u *OrderUsecase) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}
