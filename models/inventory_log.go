package models

import "time"

type StockLogType string

const (
	StockIn         StockLogType = "in"
	StockOut        StockLogType = "out"
	StockAdjustment StockLogType = "adjustment"
)

type InventoryLog struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	ProductID   uint         `gorm:"index;not null" json:"product_id"`
	ProductName string       `gorm:"size:200;not null" json:"product_name"`
	Type        StockLogType `gorm:"size:12;not null;index" json:"type"`
	Quantity    int64        `gorm:"not null" json:"quantity"`

	OldStock int `gorm:"not null" json:"old_stock"`
	NewStock int `gorm:"not null" json:"new_stock"`

	Reason string `gorm:"size:255;not null" json:"reason"`
	UserID uint   `gorm:"index;not null" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
}
