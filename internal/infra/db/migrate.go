package db

import (
	"time"

	"shop/internal/domain/model"

	"gorm.io/gorm"
)

// 適用済みマイグレーションの記録
type SchemaMigration struct {
	Version   int64     `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	AppliedAt time.Time `gorm:"not null;autoCreateTime"`
}

type migration struct {
	version int64
	name    string
	run     func(tx *gorm.DB) error
}

// 順番に一度ずつ適用する。各マイグレーションは個別トランザクション。
var migrations = []migration{
	{
		version: 1,
		name:    "create products table",
		run: func(tx *gorm.DB) error {
			if tx.Migrator().HasTable(&model.Product{}) {
				return nil
			}
			return tx.Migrator().CreateTable(&model.Product{})
		},
	},
	{
		version: 2,
		name:    "create orders table",
		run: func(tx *gorm.DB) error {
			if tx.Migrator().HasTable(&model.Order{}) {
				return nil
			}
			return tx.Migrator().CreateTable(&model.Order{})
		},
	},
	{
		version: 3,
		name:    "add variants column to products",
		run:     addProductColumn("variants"),
	},
	{
		version: 4,
		name:    "add image_positions column to products",
		run:     addProductColumn("image_positions"),
	},
	{
		version: 5,
		name:    "add image_rotations column to products",
		run:     addProductColumn("image_rotations"),
	},
	{
		version: 6,
		name:    "normalize legacy plain-string categories",
		run:     normalizeLegacyCategories,
	},
}

func addProductColumn(column string) func(tx *gorm.DB) error {
	return func(tx *gorm.DB) error {
		if tx.Migrator().HasColumn(&model.Product{}, column) {
			return nil
		}
		return tx.Exec("ALTER TABLE products ADD COLUMN " + column + " TEXT DEFAULT '[]'").Error
	}
}

// 旧データの素の文字列カテゴリをJSON配列に一括変換する（読み出し時の判定に頼らない）
func normalizeLegacyCategories(tx *gorm.DB) error {
	type row struct {
		ID       int64
		Category string
	}
	var rows []row
	if err := tx.Table("products").Select("id", "category").Scan(&rows).Error; err != nil {
		return err
	}
	for _, r := range rows {
		var c model.Category
		_ = c.Scan(r.Category)
		if !c.IsPlain() {
			continue
		}
		v, err := c.Value()
		if err != nil {
			return err
		}
		if err := tx.Table("products").Where("id = ?", r.ID).Update("category", v).Error; err != nil {
			return err
		}
	}
	return nil
}

// Migrate は起動時に一度呼ぶ。冪等。
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&SchemaMigration{}); err != nil {
		return err
	}

	for _, m := range migrations {
		var count int64
		if err := gdb.Model(&SchemaMigration{}).Where("version = ?", m.version).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		err := gdb.Transaction(func(tx *gorm.DB) error {
			if err := m.run(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{Version: m.version, Name: m.name}).Error
		})
		if err != nil {
			return err
		}
	}
	return nil
}
