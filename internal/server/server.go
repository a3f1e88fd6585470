package server

import (
	"shop/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New はecho本体を組み立てて返す。
func New(
	productH *handler.ProductHandler,
	orderH *handler.OrderHandler,
	imageH *handler.ImageHandler,
	pageH *handler.PageHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	// ストアフロントは別オリジンから叩かれることがある
	e.Use(middleware.CORS())

	RegisterRoutes(e, productH, orderH, imageH, pageH)
	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
