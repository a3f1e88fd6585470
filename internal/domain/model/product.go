package model

import "time"

type Product struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string      `gorm:"type:varchar(255);not null" json:"name"`
	Price       int64       `gorm:"not null" json:"price"`
	Category    Category    `gorm:"type:text" json:"category"`
	Description string      `gorm:"type:text" json:"description"`
	Image       string      `gorm:"type:text" json:"image"`
	Images      StringList  `gorm:"type:text" json:"images"`
	Variants    VariantList `gorm:"type:text;default:'[]'" json:"variants"`
	// images / image_positions / image_rotations は並び順で対応する（長さ一致は強制しない）
	ImagePositions StringList `gorm:"column:image_positions;type:text;default:'[]'" json:"image_positions"`
	ImageRotations StringList `gorm:"column:image_rotations;type:text;default:'[]'" json:"image_rotations"`
	CreatedAt      time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// MainImage は先頭の画像を返す（なければ空文字）
func (p Product) MainImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}
