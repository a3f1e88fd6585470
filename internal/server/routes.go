package server

import (
	"shop/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	productH *handler.ProductHandler,
	orderH *handler.OrderHandler,
	imageH *handler.ImageHandler,
	pageH *handler.PageHandler,
) {
	productH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
	imageH.RegisterRoutes(e)
	pageH.RegisterRoutes(e)
}
