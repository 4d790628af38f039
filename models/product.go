package models

import "time"

type Product struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"size:200;not null;index" json:"name"`
	Description string   `gorm:"size:500" json:"description,omitempty"`
	Barcode     string   `gorm:"size:100;index" json:"barcode,omitempty"`
	CategoryID  uint     `gorm:"index" json:"category_id"`
	Category    Category `json:"category"` // preload

	// harga dalam satuan minor (rupiah)
	Price     int64 `gorm:"not null" json:"price"`
	CostPrice int64 `gorm:"not null" json:"cost_price"`

	Stock    int `gorm:"not null;default:0" json:"stock"`
	MinStock int `gorm:"not null;default:0" json:"min_stock"`

	ImageURL string `gorm:"size:255" json:"image_url,omitempty"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
