package handler

import (
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// ルートごとに固定のHTMLを返す（中身はこのサーバーでは関知しない）
var pageFiles = map[string]string{
	"/":        "MOindex.html",
	"/about":   "MOabout.html",
	"/product": "MOproduct.html",
	"/cart":    "MOcart.html",
	"/admin":   "admin.html",
}

type PageHandler struct {
	staticDir string
	uploadDir string
}

func NewPageHandler(staticDir, uploadDir string) *PageHandler {
	return &PageHandler{
		staticDir: staticDir,
		uploadDir: uploadDir,
	}
}

func (h *PageHandler) RegisterRoutes(e *echo.Echo) {
	for route, file := range pageFiles {
		e.GET(route, h.page(file))
	}
	// アップロード画像の配信
	e.Static("/uploads", h.uploadDir)
}

func (h *PageHandler) page(file string) echo.HandlerFunc {
	path := filepath.Join(h.staticDir, file)
	return func(c echo.Context) error {
		return c.File(path)
	}
}
