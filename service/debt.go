// service/debt.go
package service

import (
	"context"
	"errors"
	"time"

	"go-postgres-pos/models"

	"gorm.io/gorm"
)

// Sumber kebenaran hutang adalah agregat customer.debt. Status per-sale
// (payment_status) hanya proyeksi: semua penjualan pending ikut lunas saat
// agregat mencapai nol.
type DebtService struct {
	db *gorm.DB
}

func NewDebtService(db *gorm.DB) *DebtService {
	return &DebtService{db: db}
}

// Pay mengurangi hutang pelanggan dan mencatat history pembayaran dalam satu
// unit atomik. Pembayaran melebihi sisa hutang ditolak tanpa efek apapun.
// Saldo ditulis dengan compare-and-swap terhadap nilai yang dibaca; kalau
// pembayaran lain menyela, seluruh unit diulang dengan hutang terbaru supaya
// snapshot RemainingDebt konsisten dan pelunasan ke nol selalu terdeteksi.
func (s *DebtService) Pay(ctx context.Context, customerID uint, amount int64, cashierID uint, note string) (*models.DebtPayment, error) {
	if amount <= 0 {
		return nil, validationErrorf("jumlah pembayaran harus lebih dari 0")
	}

	const maxRetries = 3
	var lastErr error = ErrTransactionConflict

	for attempt := 0; attempt < maxRetries; attempt++ {
		var c models.Customer
		if err := s.db.WithContext(ctx).First(&c, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if amount > c.Debt {
			return nil, validationErrorf("jumlah pembayaran melebihi total hutang (hutang=%d, bayar=%d)", c.Debt, amount)
		}

		payment, err := s.settle(ctx, &c, amount, cashierID, note)
		if err == nil {
			return payment, nil
		}
		if errors.Is(err, ErrTransactionConflict) {
			lastErr = err
			continue
		}
		return nil, err
	}
	return nil, lastErr
}

// settle menjalankan satu percobaan pembayaran terhadap hutang yang sudah
// dibaca caller. Hutang yang berubah sejak dibaca membuat CAS gagal dan
// dikembalikan sebagai ErrTransactionConflict tanpa efek apapun.
func (s *DebtService) settle(ctx context.Context, c *models.Customer, amount int64, cashierID uint, note string) (*models.DebtPayment, error) {
	var payment *models.DebtPayment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		remaining := c.Debt - amount

		// CAS: commit hanya jika hutang belum berubah sejak dibaca
		res := tx.Model(&models.Customer{}).
			Where("id = ? AND debt = ?", c.ID, c.Debt).
			Update("debt", remaining)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTransactionConflict
		}

		payment = &models.DebtPayment{
			CustomerID:    c.ID,
			CustomerName:  c.Name,
			Amount:        amount,
			RemainingDebt: remaining,
			CashierID:     cashierID,
			Note:          note,
		}
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		// hutang lunas: tandai semua penjualan pending milik pelanggan ini
		if remaining == 0 {
			if err := tx.Model(&models.Sale{}).
				Where("customer_id = ? AND payment = ? AND payment_status = ?",
					c.ID, models.PaymentDebt, models.PaymentPending).
				Updates(map[string]any{
					"payment_status": models.PaymentPaid,
					"updated_at":     time.Now().UTC(),
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// Debtors mengembalikan pelanggan yang masih punya hutang.
func (s *DebtService) Debtors(ctx context.Context) ([]models.Customer, error) {
	var rows []models.Customer
	if err := s.db.WithContext(ctx).
		Where("debt > 0").
		Order("debt DESC, name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// History mengembalikan pembayaran hutang pelanggan, terbaru dulu.
func (s *DebtService) History(ctx context.Context, customerID uint) ([]models.DebtPayment, error) {
	var rows []models.DebtPayment
	if err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
