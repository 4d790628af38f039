// models/savings.go
package models

import "time"

type SavingsCategory string

const (
	CategoryPokok    SavingsCategory = "pokok"    // simpanan pokok, sekali bayar
	CategoryWajib    SavingsCategory = "wajib"    // simpanan wajib, bulanan
	CategorySukarela SavingsCategory = "sukarela" // simpanan sukarela, bebas
)

type SavingsTxType string

const (
	TxDeposit    SavingsTxType = "deposit"
	TxWithdrawal SavingsTxType = "withdrawal"
)

// SavingsAccount menyimpan saldo simpanan per anggota. Maksimal satu akun per
// customer (uniqueIndex), dibuat otomatis saat transaksi pertama.
type SavingsAccount struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	CustomerID uint `gorm:"uniqueIndex;not null" json:"customer_id"`

	// saldo per kategori, satuan minor, tidak boleh negatif
	BalancePokok    int64 `gorm:"not null;default:0" json:"balance_pokok"`
	BalanceWajib    int64 `gorm:"not null;default:0" json:"balance_wajib"`
	BalanceSukarela int64 `gorm:"not null;default:0" json:"balance_sukarela"`

	// pembayaran wajib terakhir, dasar status "lunas bulan ini"
	LastWajibPayment *time.Time `json:"last_wajib_payment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SavingsTransaction adalah buku besar simpanan, append-only.
type SavingsTransaction struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	SavingsAccountID uint            `gorm:"index;not null" json:"savings_account_id"`
	CustomerID       uint            `gorm:"index;not null" json:"customer_id"`
	Type             SavingsTxType   `gorm:"size:12;not null" json:"type"`
	Category         SavingsCategory `gorm:"size:12;not null;index" json:"category"`
	Amount           int64           `gorm:"not null" json:"amount"` // selalu positif
	Date             time.Time       `gorm:"not null" json:"date"`
	Description      string          `gorm:"size:255" json:"description,omitempty"`
	UserID           uint            `gorm:"index;not null" json:"user_id"` // kasir/admin pelaku

	CreatedAt time.Time `json:"created_at"`
}
