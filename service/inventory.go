// service/inventory.go
package service

import (
	"context"
	"errors"
	"time"

	"go-postgres-pos/models"

	"gorm.io/gorm"
)

type InventoryService struct {
	db *gorm.DB
}

// currentStock membaca stok produk di dalam transaksi yang sama; angka
// old/new pada log diturunkan dari sini, bukan dari row yang dibaca sebelum
// update, supaya log tetap akurat saat ada penulis lain.
func currentStock(tx *gorm.DB, productID uint) (int, error) {
	var stock int
	if err := tx.Model(&models.Product{}).
		Select("stock").
		Where("id = ?", productID).
		Scan(&stock).Error; err != nil {
		return 0, err
	}
	return stock, nil
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

type AdjustmentInput struct {
	ProductID uint
	Type      models.StockLogType
	Quantity  int64 // untuk adjustment boleh negatif
	Reason    string
	UserID    uint
}

// Adjust menerapkan mutasi stok manual (in/out/adjustment) plus log, dalam
// satu unit atomik. Stok hasil tidak boleh negatif.
func (s *InventoryService) Adjust(ctx context.Context, in AdjustmentInput) (*models.InventoryLog, error) {
	var delta int64
	switch in.Type {
	case models.StockIn:
		if in.Quantity <= 0 {
			return nil, validationErrorf("qty harus lebih dari 0")
		}
		delta = in.Quantity
	case models.StockOut:
		if in.Quantity <= 0 {
			return nil, validationErrorf("qty harus lebih dari 0")
		}
		delta = -in.Quantity
	case models.StockAdjustment:
		if in.Quantity == 0 {
			return nil, validationErrorf("qty adjustment tidak boleh 0")
		}
		delta = in.Quantity
	default:
		return nil, validationErrorf("tipe mutasi stok tidak valid: %s", in.Type)
	}
	if in.Reason == "" {
		return nil, validationErrorf("alasan wajib diisi")
	}

	var log *models.InventoryLog
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.Product
		if err := tx.First(&p, in.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		res := tx.Model(&models.Product{}).
			Where("id = ? AND stock + ? >= 0", p.ID, delta).
			Updates(map[string]any{
				"stock":      gorm.Expr("stock + ?", delta),
				"updated_at": time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &InsufficientStockError{
				ProductID: p.ID,
				Name:      p.Name,
				Stock:     p.Stock,
				Requested: -delta,
			}
		}

		newStock, err := currentStock(tx, p.ID)
		if err != nil {
			return err
		}

		log = &models.InventoryLog{
			ProductID:   p.ID,
			ProductName: p.Name,
			Type:        in.Type,
			Quantity:    in.Quantity,
			OldStock:    newStock - int(delta),
			NewStock:    newStock,
			Reason:      in.Reason,
			UserID:      in.UserID,
		}
		return tx.Create(log).Error
	})
	if err != nil {
		return nil, err
	}
	return log, nil
}

// Logs mengembalikan mutasi stok terbaru dulu, opsional filter produk/tipe.
func (s *InventoryService) Logs(ctx context.Context, productID uint, logType models.StockLogType, limit int) ([]models.InventoryLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	q := s.db.WithContext(ctx).Order("id DESC").Limit(limit)
	if productID != 0 {
		q = q.Where("product_id = ?", productID)
	}
	if logType != "" {
		q = q.Where("type = ?", logType)
	}
	var rows []models.InventoryLog
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
