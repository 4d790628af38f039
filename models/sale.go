// models/sale.go
package models

import "time"

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentDebt PaymentMethod = "debt"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)

type SaleStatus string

const (
	SaleCompleted SaleStatus = "completed"
	SaleRefunded  SaleStatus = "refunded"
)

type SaleSource string

const (
	SourcePOS      SaleSource = "pos"
	SourceTelegram SaleSource = "telegram"
	SourceWhatsApp SaleSource = "whatsapp"
)

type Sale struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	TransCode string `gorm:"uniqueIndex;size:40" json:"trans_code"` // e.g. POS-20250901-a1b2c3d4

	CustomerID   *uint     `gorm:"index" json:"customer_id"`
	Customer     *Customer `json:"customer,omitempty"`
	CustomerName string    `gorm:"size:180" json:"customer_name,omitempty"` // snapshot untuk struk

	TotalAmount   int64         `gorm:"not null" json:"total_amount"`
	Discount      int64         `gorm:"not null;default:0" json:"discount"`
	Payment       PaymentMethod `gorm:"size:10;not null" json:"payment"`
	PaymentStatus PaymentStatus `gorm:"size:10;not null;index" json:"payment_status"`
	Status        SaleStatus    `gorm:"size:12;not null" json:"status"`
	Source        SaleSource    `gorm:"size:12;not null;default:pos;index" json:"source"`

	Items []SaleItem `json:"items"`

	CashierID uint      `gorm:"index;not null" json:"cashier_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaleItem adalah snapshot harga saat transaksi, immutable setelah commit.
type SaleItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	SaleID    uint   `gorm:"index;not null" json:"sale_id"`
	ProductID uint   `gorm:"not null" json:"product_id"`
	Name      string `gorm:"size:200;not null" json:"name"`
	Price     int64  `gorm:"not null" json:"price"`
	CostPrice int64  `gorm:"not null" json:"cost_price"`
	Quantity  int64  `gorm:"not null" json:"quantity"`
	LineTotal int64  `gorm:"not null" json:"line_total"`
}
