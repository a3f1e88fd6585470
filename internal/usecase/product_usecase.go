package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"shop/internal/domain/model"
	"shop/internal/infra/storage"
	repo "shop/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 画像の保存先（ローカルディレクトリ実装は infra/storage）
type ImageStore interface {
	Save(filename string, r io.Reader) (string, error)
	List() ([]string, error)
	Delete(filename string) error
}

type ProductUsecase struct {
	products repo.ProductRepository
	images   ImageStore
}

// DI
func NewProductUsecase(products repo.ProductRepository, images ImageStore) *ProductUsecase {
	return &ProductUsecase{
		products: products,
		images:   images,
	}
}

func (u *ProductUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	items, err := u.products.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.products.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// 新規アップロード1件分
type PhotoUpload struct {
	Filename string
	Content  io.Reader
}

// POST/PUT /api/products の入力DTO（multipartフォーム由来）
type SaveProductInput struct {
	Name        string
	Price       string // フォーム値そのまま。数値でなければ0で保存する
	Description string
	Categories  []string
	Variants    string // クライアント側でJSON化済みの文字列
	Positions   []string
	Rotations   []string
	// クライアントが残すと言った既存画像（この順で先頭に並ぶ）
	ExistingImages []string
	Photos         []PhotoUpload
}

// SaveProduct は id>0 なら更新、0なら新規作成。
// 画像は existing_images の後ろに新規アップロード分を足した並びになり、
// 先頭の1枚がメイン画像になる。
func (u *ProductUsecase) SaveProduct(ctx context.Context, productID int64, in SaveProductInput) error {
	price, _ := strconv.ParseInt(strings.TrimSpace(in.Price), 10, 64)

	// 新規アップロードを先に保存して参照パスを得る
	newRefs := []string{}
	for _, ph := range in.Photos {
		if ph.Filename == "" {
			continue
		}
		ref, err := u.images.Save(ph.Filename, ph.Content)
		if err != nil {
			u.discardSaved(newRefs)
			return NewHTTPError(http.StatusInternalServerError, "failed to save file")
		}
		newRefs = append(newRefs, ref)
	}

	finalImages := make([]string, 0, len(in.ExistingImages)+len(newRefs))
	finalImages = append(finalImages, in.ExistingImages...)
	finalImages = append(finalImages, newRefs...)

	p := model.Product{
		ID:             productID,
		Name:           in.Name,
		Price:          price,
		Category:       model.NewCategory(in.Categories),
		Description:    in.Description,
		Images:         finalImages,
		Variants:       model.ParseVariants(in.Variants),
		ImagePositions: in.Positions,
		ImageRotations: in.Rotations,
	}
	p.Image = p.MainImage()

	var err error
	if productID > 0 {
		err = u.products.Update(ctx, p)
	} else {
		_, err = u.products.Create(ctx, p)
	}

	if err != nil {
		// 行の書き込みに失敗したら、保存したばかりのファイルは残さない
		u.discardSaved(newRefs)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Product not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *ProductUsecase) discardSaved(refs []string) {
	for _, ref := range refs {
		_ = u.images.Delete(strings.TrimPrefix(ref, storage.RefPrefix))
	}
}

// DeleteProduct は行だけ消す。参照されていた画像ファイルは消さない。
func (u *ProductUsecase) DeleteProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.products.Delete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
