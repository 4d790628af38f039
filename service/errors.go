package service

import (
	"errors"
	"fmt"

	"go-postgres-pos/models"
)

// ErrNotFound menandai entitas (produk, customer, akun) yang tidak ada.
var ErrNotFound = errors.New("data tidak ditemukan")

// ErrTransactionConflict dikembalikan setelah retry optimistic commit habis.
var ErrTransactionConflict = errors.New("transaksi bentrok, coba lagi")

// ValidationError menandai input yang ditolak sebelum ada write apapun.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// InsufficientFundsError: penarikan yang akan membuat saldo kategori negatif.
type InsufficientFundsError struct {
	Category models.SavingsCategory
	Balance  int64
	Amount   int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("saldo %s tidak cukup (saldo=%d, minta=%d)", e.Category, e.Balance, e.Amount)
}

// InsufficientStockError: qty penjualan/pengurangan melebihi stok tercatat.
type InsufficientStockError struct {
	ProductID uint
	Name      string
	Stock     int
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stok tidak cukup untuk %s (stok=%d, minta=%d)", e.Name, e.Stock, e.Requested)
}
