// service/checkout.go
package service

import (
	"context"
	"errors"
	"time"

	"go-postgres-pos/models"
	"go-postgres-pos/utils"

	"gorm.io/gorm"
)

type CheckoutService struct {
	db *gorm.DB
}

func NewCheckoutService(db *gorm.DB) *CheckoutService {
	return &CheckoutService{db: db}
}

type CartItem struct {
	ProductID uint  `json:"product_id" binding:"required"`
	Quantity  int64 `json:"quantity" binding:"required,gt=0"`
}

type CheckoutInput struct {
	Items      []CartItem
	Payment    models.PaymentMethod
	CustomerID *uint
	Source     models.SaleSource
	CashierID  uint
}

// Checkout memproses satu penjualan sebagai satu unit atomik: insert Sale +
// items, kurangi stok per baris, append inventory log, update agregat
// customer. Gagal di langkah manapun berarti rollback total; caller mengulang
// seluruh checkout, bukan per langkah.
func (s *CheckoutService) Checkout(ctx context.Context, in CheckoutInput) (*models.Sale, error) {
	if len(in.Items) == 0 {
		return nil, validationErrorf("keranjang kosong")
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, validationErrorf("qty harus lebih dari 0")
		}
	}
	if in.Payment != models.PaymentCash && in.Payment != models.PaymentDebt {
		return nil, validationErrorf("metode pembayaran tidak valid: %s", in.Payment)
	}
	if in.Payment == models.PaymentDebt && (in.CustomerID == nil || *in.CustomerID == 0) {
		return nil, validationErrorf("pembayaran hutang wajib pilih pelanggan")
	}
	if in.Source == "" {
		in.Source = models.SourcePOS
	}

	var sale *models.Sale
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		var customer *models.Customer
		if in.CustomerID != nil && *in.CustomerID != 0 {
			var c models.Customer
			if err := tx.First(&c, *in.CustomerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}
			customer = &c
		}

		items := make([]models.SaleItem, 0, len(in.Items))
		var total int64

		for _, it := range in.Items {
			var p models.Product
			if err := tx.First(&p, it.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}

			// decrement bersyarat: nol row berarti stok tidak cukup dan
			// seluruh unit dibatalkan (tidak ada stok negatif karena race)
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", p.ID, it.Quantity).
				Updates(map[string]any{
					"stock":      gorm.Expr("stock - ?", it.Quantity),
					"updated_at": now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &InsufficientStockError{
					ProductID: p.ID,
					Name:      p.Name,
					Stock:     p.Stock,
					Requested: it.Quantity,
				}
			}

			items = append(items, models.SaleItem{
				ProductID: p.ID,
				Name:      p.Name,
				Price:     p.Price,
				CostPrice: p.CostPrice,
				Quantity:  it.Quantity,
				LineTotal: p.Price * it.Quantity,
			})
			total += p.Price * it.Quantity

			newStock, err := currentStock(tx, p.ID)
			if err != nil {
				return err
			}

			log := models.InventoryLog{
				ProductID:   p.ID,
				ProductName: p.Name,
				Type:        models.StockOut,
				Quantity:    it.Quantity,
				OldStock:    newStock + int(it.Quantity),
				NewStock:    newStock,
				Reason:      "Sale Transaction",
				UserID:      in.CashierID,
			}
			if err := tx.Create(&log).Error; err != nil {
				return err
			}
		}

		paymentStatus := models.PaymentPaid
		if in.Payment == models.PaymentDebt {
			paymentStatus = models.PaymentPending
		}

		data := models.Sale{
			TransCode:     utils.GenTransCode("POS", now),
			CustomerID:    in.CustomerID,
			TotalAmount:   total,
			Payment:       in.Payment,
			PaymentStatus: paymentStatus,
			Status:        models.SaleCompleted,
			Source:        in.Source,
			Items:         items,
			CashierID:     in.CashierID,
		}
		if customer != nil {
			data.CustomerName = customer.Name
		}
		if err := tx.Create(&data).Error; err != nil {
			return err
		}

		if customer != nil {
			updates := map[string]any{
				"total_spent": gorm.Expr("total_spent + ?", total),
				"last_visit":  &now,
			}
			if in.Payment == models.PaymentDebt {
				updates["debt"] = gorm.Expr("debt + ?", total)
			}
			if err := tx.Model(&models.Customer{}).
				Where("id = ?", customer.ID).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		sale = &data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// List mengembalikan penjualan terbaru dulu, opsional filter source.
func (s *CheckoutService) List(ctx context.Context, source models.SaleSource, limit int) ([]models.Sale, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	q := s.db.WithContext(ctx).Preload("Items").Order("id DESC").Limit(limit)
	if source != "" {
		q = q.Where("source = ?", source)
	}
	var rows []models.Sale
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Detail mengambil satu penjualan beserta items.
func (s *CheckoutService) Detail(ctx context.Context, id uint) (*models.Sale, error) {
	var sale models.Sale
	if err := s.db.WithContext(ctx).Preload("Items").Preload("Customer").
		First(&sale, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}
