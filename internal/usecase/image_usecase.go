package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"shop/internal/infra/storage"
)

// 画像ライブラリ（アップロード済みファイルの一覧・削除）
type ImageUsecase struct {
	images ImageStore
}

func NewImageUsecase(images ImageStore) *ImageUsecase {
	return &ImageUsecase{images: images}
}

func (u *ImageUsecase) ListImages(ctx context.Context) ([]string, error) {
	refs, err := u.images.List()
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "failed to list images")
	}
	return refs, nil
}

func (u *ImageUsecase) DeleteImage(ctx context.Context, filename string) error {
	if strings.TrimSpace(filename) == "" {
		return NewHTTPError(http.StatusBadRequest, "Filename is required")
	}

	err := u.images.Delete(filename)
	if errors.Is(err, storage.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "File not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Failed to delete file")
	}
	return nil
}
