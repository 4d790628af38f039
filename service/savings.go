// service/savings.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-postgres-pos/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Konvensi simpanan koperasi. Nominal hanya panduan untuk UI, bukan aturan
// yang dipaksa oleh processor.
const (
	PokokAmount        int64 = 50000 // simpanan pokok, sekali bayar
	WajibMonthlyAmount int64 = 10000 // simpanan wajib per bulan
	PokokPaidThreshold int64 = 50000 // pokok dianggap lunas jika saldo >= ini
)

type SavingsService struct {
	db *gorm.DB
}

func NewSavingsService(db *gorm.DB) *SavingsService {
	return &SavingsService{db: db}
}

type SavingsInput struct {
	Type        models.SavingsTxType
	Category    models.SavingsCategory
	Amount      int64
	Description string
	UserID      uint
}

// AccountStatus adalah ringkasan akun untuk layar simpanan.
type AccountStatus struct {
	Account            *models.SavingsAccount `json:"account"`
	PokokLunas         bool                   `json:"pokok_lunas"`
	WajibLunasBulanIni bool                   `json:"wajib_lunas_bulan_ini"`
}

// Process menjalankan satu setoran/penarikan sebagai satu unit atomik:
// baca akun (buat jika belum ada), mutasi saldo kategori, append entri buku
// besar. Saldo ditulis dengan compare-and-swap terhadap nilai yang dibaca;
// kalau ada transaksi lain menyela, seluruh unit diulang.
func (s *SavingsService) Process(ctx context.Context, customerID uint, in SavingsInput) (*models.SavingsTransaction, error) {
	if err := validateSavingsInput(in); err != nil {
		return nil, err
	}

	var cnt int64
	if err := s.db.WithContext(ctx).Model(&models.Customer{}).
		Where("id = ?", customerID).Count(&cnt).Error; err != nil {
		return nil, err
	}
	if cnt == 0 {
		return nil, ErrNotFound
	}

	const maxRetries = 3
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		var entry *models.SavingsTransaction
		lastErr = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			acc, err := findOrCreateAccount(tx, customerID)
			if err != nil {
				return err
			}

			delta := in.Amount
			if in.Type == models.TxWithdrawal {
				delta = -in.Amount
			}

			newPokok, newWajib, newSukarela := acc.BalancePokok, acc.BalanceWajib, acc.BalanceSukarela
			switch in.Category {
			case models.CategoryPokok:
				newPokok += delta
			case models.CategoryWajib:
				newWajib += delta
			case models.CategorySukarela:
				newSukarela += delta
			}

			if in.Type == models.TxWithdrawal {
				if bal := categoryBalance(in.Category, newPokok, newWajib, newSukarela); bal < 0 {
					return &InsufficientFundsError{
						Category: in.Category,
						Balance:  bal + in.Amount,
						Amount:   in.Amount,
					}
				}
			}

			now := time.Now().UTC()
			updates := map[string]any{
				"balance_pokok":    newPokok,
				"balance_wajib":    newWajib,
				"balance_sukarela": newSukarela,
				"updated_at":       now,
			}
			// hanya setoran wajib yang menggeser last_wajib_payment
			if in.Type == models.TxDeposit && in.Category == models.CategoryWajib {
				updates["last_wajib_payment"] = &now
			}

			// CAS: commit hanya jika saldo belum berubah sejak dibaca
			res := tx.Model(&models.SavingsAccount{}).
				Where("id = ? AND balance_pokok = ? AND balance_wajib = ? AND balance_sukarela = ?",
					acc.ID, acc.BalancePokok, acc.BalanceWajib, acc.BalanceSukarela).
				Updates(updates)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrTransactionConflict
			}

			entry = &models.SavingsTransaction{
				SavingsAccountID: acc.ID,
				CustomerID:       customerID,
				Type:             in.Type,
				Category:         in.Category,
				Amount:           in.Amount,
				Date:             now,
				Description:      in.Description,
				UserID:           in.UserID,
			}
			return tx.Create(entry).Error
		})

		if lastErr == nil {
			return entry, nil
		}
		if errors.Is(lastErr, ErrTransactionConflict) || isUniqueViolation(lastErr) {
			continue
		}
		return nil, lastErr
	}

	if isUniqueViolation(lastErr) {
		lastErr = ErrTransactionConflict
	}
	return nil, lastErr
}

// Status mengembalikan akun plus flag panduan pokok/wajib. Akun yang belum
// ada dilaporkan dengan saldo nol tanpa membuat row.
func (s *SavingsService) Status(ctx context.Context, customerID uint) (*AccountStatus, error) {
	var acc models.SavingsAccount
	err := s.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&acc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &AccountStatus{Account: &models.SavingsAccount{CustomerID: customerID}}, nil
		}
		return nil, err
	}
	return &AccountStatus{
		Account:            &acc,
		PokokLunas:         acc.BalancePokok >= PokokPaidThreshold,
		WajibLunasBulanIni: wajibPaidThisMonth(acc.LastWajibPayment, time.Now().UTC()),
	}, nil
}

// History mengembalikan entri buku besar terbaru dulu.
func (s *SavingsService) History(ctx context.Context, customerID uint) ([]models.SavingsTransaction, error) {
	var rows []models.SavingsTransaction
	if err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func validateSavingsInput(in SavingsInput) error {
	if in.Type != models.TxDeposit && in.Type != models.TxWithdrawal {
		return validationErrorf("tipe transaksi tidak valid: %s", in.Type)
	}
	switch in.Category {
	case models.CategoryPokok, models.CategoryWajib, models.CategorySukarela:
	default:
		return validationErrorf("kategori simpanan tidak valid: %s", in.Category)
	}
	if in.Amount <= 0 {
		return validationErrorf("jumlah harus lebih dari 0")
	}
	return nil
}

func findOrCreateAccount(tx *gorm.DB, customerID uint) (*models.SavingsAccount, error) {
	var acc models.SavingsAccount
	err := tx.Where("customer_id = ?", customerID).First(&acc).Error
	if err == nil {
		return &acc, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	acc = models.SavingsAccount{CustomerID: customerID}
	// uniqueIndex customer_id menjaga maksimal satu akun meski dua transaksi
	// pertama balapan; yang kalah bubble up sebagai unique violation dan
	// di-retry oleh caller sehingga membaca akun pemenang.
	if err := tx.Create(&acc).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

func categoryBalance(cat models.SavingsCategory, pokok, wajib, sukarela int64) int64 {
	switch cat {
	case models.CategoryPokok:
		return pokok
	case models.CategoryWajib:
		return wajib
	default:
		return sukarela
	}
}

func wajibPaidThisMonth(last *time.Time, now time.Time) bool {
	if last == nil {
		return false
	}
	return last.Month() == now.Month() && last.Year() == now.Year()
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(strings.ToUpper(err.Error()), "UNIQUE")
}
