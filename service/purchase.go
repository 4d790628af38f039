// service/purchase.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-postgres-pos/models"
	"go-postgres-pos/utils"

	"gorm.io/gorm"
)

type PurchaseService struct {
	db *gorm.DB
}

func NewPurchaseService(db *gorm.DB) *PurchaseService {
	return &PurchaseService{db: db}
}

type PurchaseCartItem struct {
	ProductID uint  `json:"product_id" binding:"required"`
	Quantity  int64 `json:"quantity" binding:"required,gt=0"`
	CostPrice int64 `json:"cost_price" binding:"required,gt=0"`
}

type PurchaseInput struct {
	Supplier     string
	ShippingCost int64
	Items        []PurchaseCartItem
	UserID       uint
}

// Create memproses satu pembelian supplier sebagai satu unit atomik: insert
// Purchase + items, tambah stok per produk, refresh cost_price ke harga beli
// terakhir, append inventory log masuk. Gagal di langkah manapun berarti
// rollback total.
func (s *PurchaseService) Create(ctx context.Context, in PurchaseInput) (*models.Purchase, error) {
	if in.Supplier == "" {
		return nil, validationErrorf("nama supplier wajib diisi")
	}
	if len(in.Items) == 0 {
		return nil, validationErrorf("daftar pembelian kosong")
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, validationErrorf("qty harus lebih dari 0")
		}
		if it.CostPrice <= 0 {
			return nil, validationErrorf("harga beli harus lebih dari 0")
		}
	}
	if in.ShippingCost < 0 {
		return nil, validationErrorf("ongkir tidak boleh negatif")
	}

	var purchase *models.Purchase
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		items := make([]models.PurchaseItem, 0, len(in.Items))
		var subtotal int64

		for _, it := range in.Items {
			var p models.Product
			if err := tx.First(&p, it.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}

			// tambah stok dan geser cost_price ke harga beli terakhir
			if err := tx.Model(&models.Product{}).
				Where("id = ?", p.ID).
				Updates(map[string]any{
					"stock":      gorm.Expr("stock + ?", it.Quantity),
					"cost_price": it.CostPrice,
					"updated_at": now,
				}).Error; err != nil {
				return err
			}

			newStock, err := currentStock(tx, p.ID)
			if err != nil {
				return err
			}

			items = append(items, models.PurchaseItem{
				ProductID: p.ID,
				Name:      p.Name,
				CostPrice: it.CostPrice,
				Quantity:  it.Quantity,
				LineTotal: it.CostPrice * it.Quantity,
			})
			subtotal += it.CostPrice * it.Quantity

			log := models.InventoryLog{
				ProductID:   p.ID,
				ProductName: p.Name,
				Type:        models.StockIn,
				Quantity:    it.Quantity,
				OldStock:    newStock - int(it.Quantity),
				NewStock:    newStock,
				Reason:      fmt.Sprintf("Pembelian dari %s", in.Supplier),
				UserID:      in.UserID,
			}
			if err := tx.Create(&log).Error; err != nil {
				return err
			}
		}

		data := models.Purchase{
			TransCode:    utils.GenTransCode("PUR", now),
			Supplier:     in.Supplier,
			Subtotal:     subtotal,
			ShippingCost: in.ShippingCost,
			TotalAmount:  subtotal + in.ShippingCost,
			Items:        items,
			UserID:       in.UserID,
		}
		if err := tx.Create(&data).Error; err != nil {
			return err
		}

		purchase = &data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

// List mengembalikan pembelian terbaru dulu.
func (s *PurchaseService) List(ctx context.Context, limit int) ([]models.Purchase, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var rows []models.Purchase
	if err := s.db.WithContext(ctx).
		Preload("Items").
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Detail mengambil satu pembelian beserta items.
func (s *PurchaseService) Detail(ctx context.Context, id uint) (*models.Purchase, error) {
	var p models.Purchase
	if err := s.db.WithContext(ctx).Preload("Items").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
