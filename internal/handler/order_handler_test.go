package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shop/internal/domain/model"
	"shop/internal/handler"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type HandlerOrderRepoMock struct{ mock.Mock }

func (m *HandlerOrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *HandlerOrderRepoMock) ListAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func newOrderServer(oRepo *HandlerOrderRepoMock) *echo.Echo {
	e := echo.New()
	h := handler.NewOrderHandler(usecase.NewOrderUsecase(oRepo))
	h.RegisterRoutes(e)
	return e
}

func TestOrderHandler_Checkout(t *testing.T) {
	oRepo := new(HandlerOrderRepoMock)
	oRepo.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.CustomerName == "Taro" && o.TotalAmount == 250
	})).Return(int64(42), nil)

	e := newOrderServer(oRepo)

	body := `{"customerName":"Taro","cart":[{"price":100,"quantity":2},{"price":50,"quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","message":"Order received","order_id":42}`, rec.Body.String())
	oRepo.AssertExpectations(t)
}

func TestOrderHandler_Checkout_InvalidBody(t *testing.T) {
	e := newOrderServer(new(HandlerOrderRepoMock))

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader("{oops"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_List(t *testing.T) {
	orders := []model.Order{
		{
			ID:           2,
			CustomerName: "Taro",
			OrderData:    model.LineItems{[]byte(`{"price":100,"quantity":2}`)},
			TotalAmount:  200,
			CreatedAt:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	oRepo := new(HandlerOrderRepoMock)
	oRepo.On("ListAll", mock.Anything).Return(orders, nil)

	e := newOrderServer(oRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"order_data":[{"price":100,"quantity":2}]`)
	assert.Contains(t, rec.Body.String(), `"total_amount":200`)
}
