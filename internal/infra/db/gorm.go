package db

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect はDBファイルを開いて *gorm.DB を返す。
func Connect(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
