package handler

import (
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /api/products のCRUD
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/products", h.list)
	e.GET("/api/products/:id", h.detail)
	e.POST("/api/products", h.create)
	e.PUT("/api/products/:id", h.update)
	e.DELETE("/api/products/:id", h.remove)
}

func (h *ProductHandler) list(c echo.Context) error {
	out, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) create(c echo.Context) error {
	return h.save(c, 0)
}

func (h *ProductHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	return h.save(c, id)
}

// create/update共通。multipartフォームを入力DTOに詰め替える。
func (h *ProductHandler) save(c echo.Context, id int64) error {
	var (
		values url.Values
		files  []*multipart.FileHeader
	)
	if form, err := c.MultipartForm(); err == nil {
		values = url.Values(form.Value)
		files = form.File["photos"]
	} else {
		// ファイル無しの通常フォームも受ける
		params, err := c.FormParams()
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid form"})
		}
		values = params
	}

	in := usecase.SaveProductInput{
		Name:           values.Get("name"),
		Price:          values.Get("price"),
		Description:    values.Get("description"),
		Categories:     values["category"],
		Variants:       values.Get("variants"),
		Positions:      values["positions"],
		Rotations:      values["rotations"],
		ExistingImages: values["existing_images"],
	}

	for _, fh := range files {
		if fh.Filename == "" {
			continue
		}
		f, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to read upload"})
		}
		defer f.Close()
		in.Photos = append(in.Photos, usecase.PhotoUpload{Filename: fh.Filename, Content: f})
	}

	if err := h.uc.SaveProduct(c.Request().Context(), id, in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "success"})
}

func (h *ProductHandler) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "deleted"})
}
