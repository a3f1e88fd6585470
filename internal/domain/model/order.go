package model

import "time"

type Order struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	OrderData    LineItems `gorm:"column:order_data;type:text;not null" json:"order_data"`
	TotalAmount  int64     `gorm:"not null" json:"total_amount"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
