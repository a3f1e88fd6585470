package repository_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"shop/internal/domain/model"
	"shop/internal/infra/db"
	infraRepo "shop/internal/infra/repository"
	repo "shop/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Connect(filepath.Join(t.TempDir(), "shop.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func TestProductGormRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	r := infraRepo.NewProductGormRepository(newTestDB(t))

	created, err := r.Create(ctx, model.Product{
		Name:           "Sneaker",
		Price:          4200,
		Category:       model.NewCategory([]string{"Shoes"}),
		Images:         model.StringList{"/uploads/a.png", "/uploads/b.png"},
		Image:          "/uploads/a.png",
		ImagePositions: model.StringList{"50% 50%"},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := r.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sneaker", got.Name)
	assert.Equal(t, []string{"Shoes"}, got.Category.Names())
	assert.Equal(t, model.StringList{"/uploads/a.png", "/uploads/b.png"}, got.Images)
	assert.Equal(t, model.StringList{"50% 50%"}, got.ImagePositions)

	got.Images = model.StringList{"/uploads/b.png"}
	got.Image = "/uploads/b.png"
	require.NoError(t, r.Update(ctx, got))

	got, err = r.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StringList{"/uploads/b.png"}, got.Images)
	assert.Equal(t, "/uploads/b.png", got.Image)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err = r.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestProductGormRepository_UpdateMissing(t *testing.T) {
	r := infraRepo.NewProductGormRepository(newTestDB(t))
	err := r.Update(context.Background(), model.Product{ID: 404, Name: "ghost"})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestProductGormRepository_DeleteMissing(t *testing.T) {
	r := infraRepo.NewProductGormRepository(newTestDB(t))
	err := r.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

// 壊れたJSONカラムを持つ行も一覧から落ちない
func TestProductGormRepository_ListSurvivesBrokenColumns(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	r := infraRepo.NewProductGormRepository(gdb)

	require.NoError(t, gdb.Exec(
		`INSERT INTO products (name, price, category, images, variants, image_positions, image_rotations, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		"Broken", 100, `["Shoes"]`, `{{not json`, `also broken`, `[]`, `[]`,
	).Error)

	items, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Broken", items[0].Name)
	assert.Equal(t, model.StringList{}, items[0].Images)
	assert.Equal(t, model.VariantList{}, items[0].Variants)
	assert.Equal(t, []string{"Shoes"}, items[0].Category.Names())
}

func TestOrderGormRepository_CreateAndListNewestFirst(t *testing.T) {
	ctx := context.Background()
	r := infraRepo.NewOrderGormRepository(newTestDB(t))

	first, err := r.Create(ctx, model.Order{
		CustomerName: "Taro",
		OrderData:    model.LineItems{json.RawMessage(`{"price":100,"quantity":2}`)},
		TotalAmount:  200,
	})
	require.NoError(t, err)

	second, err := r.Create(ctx, model.Order{
		CustomerName: "Hanako",
		OrderData:    model.LineItems{},
		TotalAmount:  50,
	})
	require.NoError(t, err)

	orders, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second, orders[0].ID)
	assert.Equal(t, first, orders[1].ID)
	assert.Equal(t, model.LineItems{json.RawMessage(`{"price":100,"quantity":2}`)}, orders[1].OrderData)
}
