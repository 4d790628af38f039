package service

import (
	"context"
	"testing"

	"go-postgres-pos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutCash(t *testing.T) {
	db := newTestDB(t)
	svc := NewCheckoutService(db)
	p1 := seedProduct(t, db, "Kopi Sachet", 5000, 3500, 10)

	sale, err := svc.Checkout(context.Background(), CheckoutInput{
		Items:     []CartItem{{ProductID: p1.ID, Quantity: 2}},
		Payment:   models.PaymentCash,
		CashierID: 1,
	})
	require.NoError(t, err)
	require.NotNil(t, sale)

	assert.Equal(t, int64(10000), sale.TotalAmount)
	assert.Equal(t, models.PaymentPaid, sale.PaymentStatus)
	assert.Equal(t, models.SaleCompleted, sale.Status)
	assert.Equal(t, models.SourcePOS, sale.Source)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, int64(5000), sale.Items[0].Price)
	assert.Equal(t, int64(3500), sale.Items[0].CostPrice)

	var p models.Product
	require.NoError(t, db.First(&p, p1.ID).Error)
	assert.Equal(t, 8, p.Stock)

	var logs []models.InventoryLog
	require.NoError(t, db.Where("product_id = ?", p1.ID).Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, models.StockOut, logs[0].Type)
	assert.Equal(t, int64(2), logs[0].Quantity)
	assert.Equal(t, "Sale Transaction", logs[0].Reason)
	assert.Equal(t, 10, logs[0].OldStock)
	assert.Equal(t, 8, logs[0].NewStock)
}

func TestCheckoutDebtRequiresCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := NewCheckoutService(db)
	p1 := seedProduct(t, db, "Gula", 15000, 13000, 5)

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		Items:     []CartItem{{ProductID: p1.ID, Quantity: 1}},
		Payment:   models.PaymentDebt,
		CashierID: 1,
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	// ditolak sebelum ada write apapun
	var saleCnt, logCnt int64
	db.Model(&models.Sale{}).Count(&saleCnt)
	db.Model(&models.InventoryLog{}).Count(&logCnt)
	assert.Equal(t, int64(0), saleCnt)
	assert.Equal(t, int64(0), logCnt)

	var p models.Product
	require.NoError(t, db.First(&p, p1.ID).Error)
	assert.Equal(t, 5, p.Stock)
}

func TestCheckoutDebtUpdatesCustomerAggregates(t *testing.T) {
	db := newTestDB(t)
	svc := NewCheckoutService(db)
	p1 := seedProduct(t, db, "Beras 5kg", 70000, 62000, 20)
	cust := seedCustomer(t, db, "Budi")

	sale, err := svc.Checkout(context.Background(), CheckoutInput{
		Items:      []CartItem{{ProductID: p1.ID, Quantity: 3}},
		Payment:    models.PaymentDebt,
		CustomerID: &cust.ID,
		CashierID:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, sale.PaymentStatus)
	assert.Equal(t, cust.Name, sale.CustomerName)

	var c models.Customer
	require.NoError(t, db.First(&c, cust.ID).Error)
	assert.Equal(t, int64(210000), c.Debt)
	assert.Equal(t, int64(210000), c.TotalSpent)
	require.NotNil(t, c.LastVisit)
}

func TestCheckoutCashWithCustomerDoesNotAddDebt(t *testing.T) {
	db := newTestDB(t)
	svc := NewCheckoutService(db)
	p1 := seedProduct(t, db, "Teh Celup", 8000, 6000, 10)
	cust := seedCustomer(t, db, "Siti")

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		Items:      []CartItem{{ProductID: p1.ID, Quantity: 2}},
		Payment:    models.PaymentCash,
		CustomerID: &cust.ID,
		CashierID:  1,
	})
	require.NoError(t, err)

	var c models.Customer
	require.NoError(t, db.First(&c, cust.ID).Error)
	assert.Equal(t, int64(0), c.Debt)
	assert.Equal(t, int64(16000), c.TotalSpent)
}

func TestCheckoutInsufficientStockRollsBackAll(t *testing.T) {
	db := newTestDB(t)
	svc := NewCheckoutService(db)
	p1 := seedProduct(t, db, "Minyak Goreng", 18000, 16000, 10)
	p2 := seedProduct(t, db, "Telur 1kg", 28000, 25000, 1)

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		Items: []CartItem{
			{ProductID: p1.ID, Quantity: 2},
			{ProductID: p2.ID, Quantity: 5}, // stok cuma 1
		},
		Payment:   models.PaymentCash,
		CashierID: 1,
	})
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, p2.ID, stockErr.ProductID)

	// semua efek rollback, termasuk decrement p1 yang sudah lewat
	var a, b models.Product
	require.NoError(t, db.First(&a, p1.ID).Error)
	require.NoError(t, db.First(&b, p2.ID).Error)
	assert.Equal(t, 10, a.Stock)
	assert.Equal(t, 1, b.Stock)

	var saleCnt, logCnt int64
	db.Model(&models.Sale{}).Count(&saleCnt)
	db.Model(&models.InventoryLog{}).Count(&logCnt)
	assert.Equal(t, int64(0), saleCnt)
	assert.Equal(t, int64(0), logCnt)
}

func TestCheckoutLogsChainOnRepeatedSales(t *testing.T) {
	db := newTestDB(t)
	svc := NewCheckoutService(db)
	p1 := seedProduct(t, db, "Sabun", 4000, 3000, 10)
	ctx := context.Background()

	for _, qty := range []int64{2, 3} {
		_, err := svc.Checkout(ctx, CheckoutInput{
			Items:     []CartItem{{ProductID: p1.ID, Quantity: qty}},
			Payment:   models.PaymentCash,
			CashierID: 1,
		})
		require.NoError(t, err)
	}

	// old/new diambil dari stok hasil update, jadi log selalu menyambung
	var logs []models.InventoryLog
	require.NoError(t, db.Order("id ASC").Find(&logs).Error)
	require.Len(t, logs, 2)
	assert.Equal(t, 10, logs[0].OldStock)
	assert.Equal(t, 8, logs[0].NewStock)
	assert.Equal(t, 8, logs[1].OldStock)
	assert.Equal(t, 5, logs[1].NewStock)
}

func TestCheckoutValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewCheckoutService(db)
	ctx := context.Background()

	var vErr *ValidationError

	_, err := svc.Checkout(ctx, CheckoutInput{Payment: models.PaymentCash, CashierID: 1})
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.Checkout(ctx, CheckoutInput{
		Items:   []CartItem{{ProductID: 1, Quantity: 0}},
		Payment: models.PaymentCash, CashierID: 1,
	})
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.Checkout(ctx, CheckoutInput{
		Items:   []CartItem{{ProductID: 1, Quantity: 1}},
		Payment: "transfer", CashierID: 1,
	})
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.Checkout(ctx, CheckoutInput{
		Items:   []CartItem{{ProductID: 42, Quantity: 1}},
		Payment: models.PaymentCash, CashierID: 1,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCheckoutListFiltersBySource(t *testing.T) {
	db := newTestDB(t)
	svc := NewCheckoutService(db)
	p1 := seedProduct(t, db, "Roti", 6000, 4500, 50)
	ctx := context.Background()

	_, err := svc.Checkout(ctx, CheckoutInput{
		Items: []CartItem{{ProductID: p1.ID, Quantity: 1}}, Payment: models.PaymentCash, CashierID: 1,
	})
	require.NoError(t, err)
	_, err = svc.Checkout(ctx, CheckoutInput{
		Items: []CartItem{{ProductID: p1.ID, Quantity: 2}}, Payment: models.PaymentCash,
		Source: models.SourceTelegram, CashierID: 1,
	})
	require.NoError(t, err)

	all, err := svc.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	tg, err := svc.List(ctx, models.SourceTelegram, 0)
	require.NoError(t, err)
	require.Len(t, tg, 1)
	assert.Equal(t, models.SourceTelegram, tg[0].Source)
}
