// models/purchase.go
package models

import "time"

// Purchase mencatat pembelian stok dari supplier. Satu pembelian bisa berisi
// banyak item; subtotal + ongkir = total.
type Purchase struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	TransCode string `gorm:"uniqueIndex;size:40" json:"trans_code"` // e.g. PUR-20250901-a1b2c3d4
	Supplier  string `gorm:"size:180;not null" json:"supplier"`

	Subtotal     int64 `gorm:"not null" json:"subtotal"`
	ShippingCost int64 `gorm:"not null;default:0" json:"shipping_cost"`
	TotalAmount  int64 `gorm:"not null" json:"total_amount"`

	Items []PurchaseItem `json:"items"`

	UserID    uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PurchaseItem adalah snapshot harga beli saat transaksi, immutable.
type PurchaseItem struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PurchaseID uint   `gorm:"index;not null" json:"purchase_id"`
	ProductID  uint   `gorm:"not null" json:"product_id"`
	Name       string `gorm:"size:200;not null" json:"name"`
	CostPrice  int64  `gorm:"not null" json:"cost_price"`
	Quantity   int64  `gorm:"not null" json:"quantity"`
	LineTotal  int64  `gorm:"not null" json:"line_total"`
}
