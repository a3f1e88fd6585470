package handler

import (
	"encoding/json"
	"net/http"

	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 注文（チェックアウトと一覧）
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/checkout", h.checkout)
	e.GET("/api/orders", h.list)
}

type checkoutRequest struct {
	CustomerName string            `json:"customerName"`
	Cart         []json.RawMessage `json:"cart"`
}

type checkoutResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}

func (h *OrderHandler) checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request"})
	}

	out, err := h.uc.Checkout(c.Request().Context(), usecase.CheckoutInput{
		CustomerName: req.CustomerName,
		Cart:         req.Cart,
	})
	if err != nil {
		return writeError(c, err)
	}

	c.Logger().Infof("new order #%d: %s, total %d", out.OrderID, out.CustomerName, out.TotalAmount)

	return c.JSON(http.StatusOK, checkoutResponse{
		Status:  "success",
		Message: "Order received",
		OrderID: out.OrderID,
	})
}

func (h *OrderHandler) list(c echo.Context) error {
	out, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
