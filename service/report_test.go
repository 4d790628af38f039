package service

import (
	"context"
	"testing"
	"time"

	"go-postgres-pos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailySales(t *testing.T) {
	db := newTestDB(t)
	p1 := seedProduct(t, db, "Beras", 70000, 62000, 100)
	p2 := seedProduct(t, db, "Gula", 15000, 12500, 100)
	checkout := NewCheckoutService(db)
	ctx := context.Background()

	_, err := checkout.Checkout(ctx, CheckoutInput{
		Items:     []CartItem{{ProductID: p1.ID, Quantity: 2}, {ProductID: p2.ID, Quantity: 1}},
		Payment:   models.PaymentCash,
		CashierID: 1,
	})
	require.NoError(t, err)
	_, err = checkout.Checkout(ctx, CheckoutInput{
		Items:     []CartItem{{ProductID: p2.ID, Quantity: 3}},
		Payment:   models.PaymentCash,
		CashierID: 1,
	})
	require.NoError(t, err)

	now := time.Now().UTC()
	from := now.Add(-24 * time.Hour)
	to := now.Add(24 * time.Hour)

	svc := NewReportService(db)
	rows, err := svc.DailySales(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// 2x70000 + 1x15000 + 3x15000 = 200000 omzet
	assert.Equal(t, int64(2), rows[0].TxCount)
	assert.Equal(t, int64(200000), rows[0].Revenue)
	assert.Equal(t, int64(186500), rows[0].Cost) // 2x62000 + 4x12500
	assert.Equal(t, int64(13500), rows[0].Profit)

	var vErr *ValidationError
	_, err = svc.DailySales(ctx, to, from)
	assert.ErrorAs(t, err, &vErr)
}

func TestTopProducts(t *testing.T) {
	db := newTestDB(t)
	p1 := seedProduct(t, db, "Beras", 70000, 62000, 100)
	p2 := seedProduct(t, db, "Gula", 15000, 12500, 100)
	checkout := NewCheckoutService(db)
	ctx := context.Background()

	_, err := checkout.Checkout(ctx, CheckoutInput{
		Items:     []CartItem{{ProductID: p1.ID, Quantity: 1}, {ProductID: p2.ID, Quantity: 5}},
		Payment:   models.PaymentCash,
		CashierID: 1,
	})
	require.NoError(t, err)

	now := time.Now().UTC()
	rows, err := NewReportService(db).TopProducts(ctx, now.Add(-time.Hour), now.Add(time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, p2.ID, rows[0].ProductID)
	assert.Equal(t, int64(5), rows[0].TotalQty)
	assert.Equal(t, int64(75000), rows[0].Revenue)
}

func TestProductReportLowStockStatus(t *testing.T) {
	db := newTestDB(t)
	low := seedProduct(t, db, "Telur", 28000, 25000, 2)
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", low.ID).Update("min_stock", 5).Error)
	seedProduct(t, db, "Kopi", 22000, 19000, 50)

	svc := NewReportService(db)
	ctx := context.Background()

	rows, total, err := svc.Products(ctx, ProductReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, rows, 2)

	byName := map[string]ProductReportRow{}
	for _, r := range rows {
		byName[r.Name] = r
	}
	assert.Equal(t, "LOW", byName["Telur"].StockStatus)
	assert.Equal(t, int64(2*25000), byName["Telur"].StockValue)
	assert.Equal(t, "OK", byName["Kopi"].StockStatus)

	rows, total, err = svc.Products(ctx, ProductReportFilter{LowOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Telur", rows[0].Name)

	rows, _, err = svc.Products(ctx, ProductReportFilter{SortBy: "stock"})
	require.NoError(t, err)
	assert.Equal(t, "Telur", rows[0].Name)
}
