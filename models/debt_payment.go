// models/debt_payment.go
package models

import "time"

// DebtPayment adalah history pembayaran hutang pelanggan, immutable.
type DebtPayment struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CustomerID   uint   `gorm:"index;not null" json:"customer_id"`
	CustomerName string `gorm:"size:180;not null" json:"customer_name"`

	Amount        int64 `gorm:"not null" json:"amount"`
	RemainingDebt int64 `gorm:"not null" json:"remaining_debt"` // sisa hutang setelah pembayaran ini

	CashierID uint      `gorm:"index;not null" json:"cashier_id"`
	Note      string    `gorm:"size:255" json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
