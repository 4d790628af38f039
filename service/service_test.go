package service

import (
	"testing"

	"go-postgres-pos/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Customer{},
		&models.Sale{},
		&models.SaleItem{},
		&models.Purchase{},
		&models.PurchaseItem{},
		&models.InventoryLog{},
		&models.SavingsAccount{},
		&models.SavingsTransaction{},
		&models.DebtPayment{},
	))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) *models.Customer {
	t.Helper()
	c := &models.Customer{MemberID: "MBR-" + name, Name: name}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price, cost int64, stock int) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Price: price, CostPrice: cost, Stock: stock, IsActive: true}
	require.NoError(t, db.Create(p).Error)
	return p
}
