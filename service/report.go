// service/report.go
package service

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ===== DTO laporan =====

type DailySalesRow struct {
	Day     string `json:"day"` // YYYY-MM-DD
	TxCount int64  `json:"tx_count"`
	Revenue int64  `json:"revenue"`
	Cost    int64  `json:"cost"`
	Profit  int64  `json:"profit"`
}

type ProductReportRow struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	CategoryID   uint   `json:"category_id"`
	CategoryName string `json:"category_name"`
	Price        int64  `json:"price"`
	CostPrice    int64  `json:"cost_price"`
	Stock        int    `json:"stock"`
	MinStock     int    `json:"min_stock"`
	StockValue   int64  `json:"stock_value"` // CostPrice * Stock
	StockStatus  string `json:"stock_status"`
}

type TopProductRow struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	TotalQty  int64  `json:"total_qty"`
	Revenue   int64  `json:"revenue"`
}

type ProductReportFilter struct {
	Query    string // cari di nama/barcode
	LowOnly  bool   // hanya stok di bawah minimum
	Page     int    // 1-based
	PageSize int    // default 50
	SortBy   string // "name","-name","stock","-stock"
}

// ===== Service =====

type ReportService interface {
	// ringkasan penjualan per hari pada rentang tanggal
	DailySales(ctx context.Context, from, to time.Time) ([]DailySalesRow, error)

	// laporan stok produk dengan status LOW/OK
	Products(ctx context.Context, f ProductReportFilter) ([]ProductReportRow, int64, error)

	// produk terlaris pada rentang tanggal
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProductRow, error)
}

type reportService struct{ db *gorm.DB }

func NewReportService(db *gorm.DB) ReportService { return &reportService{db: db} }

func (s *reportService) DailySales(ctx context.Context, from, to time.Time) ([]DailySalesRow, error) {
	if !from.Before(to) {
		return nil, validationErrorf("rentang tanggal tidak valid")
	}

	var rows []DailySalesRow
	err := s.db.WithContext(ctx).
		Table("sales").
		Select(`
			DATE(sales.created_at) AS day,
			COUNT(DISTINCT sales.id) AS tx_count,
			SUM(si.line_total) AS revenue,
			SUM(si.cost_price * si.quantity) AS cost,
			SUM(si.line_total) - SUM(si.cost_price * si.quantity) AS profit
		`).
		Joins("INNER JOIN sale_items si ON si.sale_id = sales.id").
		Where("sales.status = ?", "completed").
		Where("sales.created_at >= ? AND sales.created_at < ?", from, to).
		Group("DATE(sales.created_at)").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *reportService) Products(ctx context.Context, f ProductReportFilter) ([]ProductReportRow, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 || f.PageSize > 500 {
		f.PageSize = 50
	}

	q := s.db.WithContext(ctx).
		Table("products").
		Select(`
			products.id,
			products.name,
			products.category_id,
			c.name AS category_name,
			products.price,
			products.cost_price,
			products.stock,
			products.min_stock,
			(products.cost_price * products.stock) AS stock_value,
			CASE WHEN products.stock < products.min_stock THEN 'LOW' ELSE 'OK' END AS stock_status
		`).
		Joins("LEFT JOIN categories c ON c.id = products.category_id").
		Where("products.is_active = ?", true)

	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where("products.name LIKE ? OR products.barcode LIKE ?", like, like)
	}
	if f.LowOnly {
		q = q.Where("products.stock < products.min_stock")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch f.SortBy {
	case "name":
		q = q.Order("products.name ASC")
	case "-name":
		q = q.Order("products.name DESC")
	case "stock":
		q = q.Order("products.stock ASC")
	case "-stock":
		q = q.Order("products.stock DESC")
	default:
		q = q.Order("products.id DESC")
	}

	offset := (f.Page - 1) * f.PageSize
	var rows []ProductReportRow
	if err := q.Offset(offset).Limit(f.PageSize).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *reportService) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProductRow, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	var rows []TopProductRow
	err := s.db.WithContext(ctx).
		Table("sale_items").
		Select(`
			sale_items.product_id,
			sale_items.name,
			SUM(sale_items.quantity) AS total_qty,
			SUM(sale_items.line_total) AS revenue
		`).
		Joins("INNER JOIN sales s ON s.id = sale_items.sale_id").
		Where("s.status = ?", "completed").
		Where("s.created_at >= ? AND s.created_at < ?", from, to).
		Group("sale_items.product_id, sale_items.name").
		Order("total_qty DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
