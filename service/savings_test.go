package service

import (
	"context"
	"testing"
	"time"

	"go-postgres-pos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessDepositCreatesAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavingsService(db)
	cust := seedCustomer(t, db, "Budi")

	entry, err := svc.Process(context.Background(), cust.ID, SavingsInput{
		Type:     models.TxDeposit,
		Category: models.CategoryPokok,
		Amount:   50000,
		UserID:   1,
	})
	require.NoError(t, err)
	require.NotNil(t, entry)

	var acc models.SavingsAccount
	require.NoError(t, db.Where("customer_id = ?", cust.ID).First(&acc).Error)
	assert.Equal(t, int64(50000), acc.BalancePokok)
	assert.Equal(t, int64(0), acc.BalanceWajib)
	assert.Equal(t, int64(0), acc.BalanceSukarela)
	assert.Nil(t, acc.LastWajibPayment)

	var entries []models.SavingsTransaction
	require.NoError(t, db.Where("customer_id = ?", cust.ID).Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, models.TxDeposit, entries[0].Type)
	assert.Equal(t, models.CategoryPokok, entries[0].Category)
	assert.Equal(t, int64(50000), entries[0].Amount)
	assert.Equal(t, acc.ID, entries[0].SavingsAccountID)
}

func TestProcessWithdrawalInsufficientFunds(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavingsService(db)
	cust := seedCustomer(t, db, "Siti")
	ctx := context.Background()

	_, err := svc.Process(ctx, cust.ID, SavingsInput{
		Type: models.TxDeposit, Category: models.CategorySukarela, Amount: 10000, UserID: 1,
	})
	require.NoError(t, err)

	_, err = svc.Process(ctx, cust.ID, SavingsInput{
		Type: models.TxWithdrawal, Category: models.CategorySukarela, Amount: 15000, UserID: 1,
	})
	var fundsErr *InsufficientFundsError
	require.ErrorAs(t, err, &fundsErr)
	assert.Equal(t, models.CategorySukarela, fundsErr.Category)

	// saldo dan buku besar tidak berubah sama sekali
	var acc models.SavingsAccount
	require.NoError(t, db.Where("customer_id = ?", cust.ID).First(&acc).Error)
	assert.Equal(t, int64(10000), acc.BalanceSukarela)

	var cnt int64
	require.NoError(t, db.Model(&models.SavingsTransaction{}).
		Where("customer_id = ?", cust.ID).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)
}

func TestProcessWithdrawalRejectedBeforeAccountExists(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavingsService(db)
	cust := seedCustomer(t, db, "Andi")

	_, err := svc.Process(context.Background(), cust.ID, SavingsInput{
		Type: models.TxWithdrawal, Category: models.CategoryWajib, Amount: 5000, UserID: 1,
	})
	var fundsErr *InsufficientFundsError
	require.ErrorAs(t, err, &fundsErr)

	// pembuatan akun ikut rollback
	var cnt int64
	require.NoError(t, db.Model(&models.SavingsAccount{}).
		Where("customer_id = ?", cust.ID).Count(&cnt).Error)
	assert.Equal(t, int64(0), cnt)
}

func TestOnlyWajibDepositStampsLastPayment(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavingsService(db)
	cust := seedCustomer(t, db, "Rina")
	ctx := context.Background()

	_, err := svc.Process(ctx, cust.ID, SavingsInput{
		Type: models.TxDeposit, Category: models.CategorySukarela, Amount: 20000, UserID: 1,
	})
	require.NoError(t, err)

	var acc models.SavingsAccount
	require.NoError(t, db.Where("customer_id = ?", cust.ID).First(&acc).Error)
	assert.Nil(t, acc.LastWajibPayment)

	before := time.Now().UTC().Add(-time.Second)
	_, err = svc.Process(ctx, cust.ID, SavingsInput{
		Type: models.TxDeposit, Category: models.CategoryWajib, Amount: 10000, UserID: 1,
	})
	require.NoError(t, err)

	require.NoError(t, db.Where("customer_id = ?", cust.ID).First(&acc).Error)
	require.NotNil(t, acc.LastWajibPayment)
	assert.True(t, acc.LastWajibPayment.After(before))

	stamped := *acc.LastWajibPayment

	// penarikan wajib tidak menggeser stempel
	_, err = svc.Process(ctx, cust.ID, SavingsInput{
		Type: models.TxWithdrawal, Category: models.CategoryWajib, Amount: 5000, UserID: 1,
	})
	require.NoError(t, err)
	require.NoError(t, db.Where("customer_id = ?", cust.ID).First(&acc).Error)
	assert.Equal(t, stamped.Unix(), acc.LastWajibPayment.Unix())
}

func TestWajibPaidThisMonth(t *testing.T) {
	march := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	endOfMarch := time.Date(2025, time.March, 31, 23, 0, 0, 0, time.UTC)
	april := time.Date(2025, time.April, 1, 8, 0, 0, 0, time.UTC)
	marchNextYear := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	assert.False(t, wajibPaidThisMonth(nil, april))
	assert.True(t, wajibPaidThisMonth(&march, endOfMarch))
	assert.False(t, wajibPaidThisMonth(&march, april))
	assert.False(t, wajibPaidThisMonth(&march, marchNextYear))
}

func TestAtMostOneAccountPerCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavingsService(db)
	cust := seedCustomer(t, db, "Dewi")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Process(ctx, cust.ID, SavingsInput{
			Type: models.TxDeposit, Category: models.CategorySukarela, Amount: 1000, UserID: 1,
		})
		require.NoError(t, err)
	}

	var cnt int64
	require.NoError(t, db.Model(&models.SavingsAccount{}).
		Where("customer_id = ?", cust.ID).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)

	// insert langsung akun kedua harus ditolak index unik
	err := db.Create(&models.SavingsAccount{CustomerID: cust.ID}).Error
	require.Error(t, err)
	assert.True(t, isUniqueViolation(err))
}

func TestLedgerMatchesBalances(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavingsService(db)
	cust := seedCustomer(t, db, "Joko")
	ctx := context.Background()

	steps := []SavingsInput{
		{Type: models.TxDeposit, Category: models.CategoryPokok, Amount: 50000, UserID: 1},
		{Type: models.TxDeposit, Category: models.CategoryWajib, Amount: 10000, UserID: 1},
		{Type: models.TxDeposit, Category: models.CategorySukarela, Amount: 75000, UserID: 1},
		{Type: models.TxWithdrawal, Category: models.CategorySukarela, Amount: 25000, UserID: 1},
		{Type: models.TxDeposit, Category: models.CategoryWajib, Amount: 10000, UserID: 1},
	}
	for _, in := range steps {
		_, err := svc.Process(ctx, cust.ID, in)
		require.NoError(t, err)
	}

	var acc models.SavingsAccount
	require.NoError(t, db.Where("customer_id = ?", cust.ID).First(&acc).Error)

	var entries []models.SavingsTransaction
	require.NoError(t, db.Where("customer_id = ?", cust.ID).Find(&entries).Error)

	sums := map[models.SavingsCategory]int64{}
	for _, e := range entries {
		if e.Type == models.TxDeposit {
			sums[e.Category] += e.Amount
		} else {
			sums[e.Category] -= e.Amount
		}
	}
	assert.Equal(t, sums[models.CategoryPokok], acc.BalancePokok)
	assert.Equal(t, sums[models.CategoryWajib], acc.BalanceWajib)
	assert.Equal(t, sums[models.CategorySukarela], acc.BalanceSukarela)
}

func TestSavingsStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavingsService(db)
	cust := seedCustomer(t, db, "Tono")
	ctx := context.Background()

	// belum punya akun: status kosong tanpa membuat row
	status, err := svc.Status(ctx, cust.ID)
	require.NoError(t, err)
	assert.False(t, status.PokokLunas)
	assert.False(t, status.WajibLunasBulanIni)

	var cnt int64
	db.Model(&models.SavingsAccount{}).Where("customer_id = ?", cust.ID).Count(&cnt)
	assert.Equal(t, int64(0), cnt)

	_, err = svc.Process(ctx, cust.ID, SavingsInput{
		Type: models.TxDeposit, Category: models.CategoryPokok, Amount: PokokAmount, UserID: 1,
	})
	require.NoError(t, err)
	_, err = svc.Process(ctx, cust.ID, SavingsInput{
		Type: models.TxDeposit, Category: models.CategoryWajib, Amount: WajibMonthlyAmount, UserID: 1,
	})
	require.NoError(t, err)

	status, err = svc.Status(ctx, cust.ID)
	require.NoError(t, err)
	assert.True(t, status.PokokLunas)
	assert.True(t, status.WajibLunasBulanIni)
}

func TestProcessValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavingsService(db)
	cust := seedCustomer(t, db, "Wati")
	ctx := context.Background()

	var vErr *ValidationError

	_, err := svc.Process(ctx, cust.ID, SavingsInput{
		Type: "transfer", Category: models.CategoryWajib, Amount: 1000,
	})
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.Process(ctx, cust.ID, SavingsInput{
		Type: models.TxDeposit, Category: "tabungan", Amount: 1000,
	})
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.Process(ctx, cust.ID, SavingsInput{
		Type: models.TxDeposit, Category: models.CategoryWajib, Amount: 0,
	})
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.Process(ctx, 99999, SavingsInput{
		Type: models.TxDeposit, Category: models.CategoryWajib, Amount: 1000,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSavingsHistoryNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavingsService(db)
	cust := seedCustomer(t, db, "Lina")
	ctx := context.Background()

	amounts := []int64{1000, 2000, 3000}
	for _, a := range amounts {
		_, err := svc.Process(ctx, cust.ID, SavingsInput{
			Type: models.TxDeposit, Category: models.CategorySukarela, Amount: a, UserID: 1,
		})
		require.NoError(t, err)
	}

	rows, err := svc.History(ctx, cust.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, int64(3000), rows[0].Amount)
	assert.Equal(t, int64(1000), rows[2].Amount)
}
