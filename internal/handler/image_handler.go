package handler

import (
	"net/http"

	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 画像ライブラリ（管理画面用）
type ImageHandler struct {
	uc *usecase.ImageUsecase
}

func NewImageHandler(uc *usecase.ImageUsecase) *ImageHandler {
	return &ImageHandler{uc: uc}
}

func (h *ImageHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/images", h.list)
	e.DELETE("/api/images", h.remove)
}

func (h *ImageHandler) list(c echo.Context) error {
	refs, err := h.uc.ListImages(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, refs)
}

// DELETE /api/images?filename=X
func (h *ImageHandler) remove(c echo.Context) error {
	if err := h.uc.DeleteImage(c.Request().Context(), c.QueryParam("filename")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "deleted"})
}
