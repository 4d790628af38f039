package main

import (
	"os"

	"go-postgres-pos/config"
	"go-postgres-pos/middlewares"
	"go-postgres-pos/models"
	"go-postgres-pos/realtime"
	"go-postgres-pos/routes"
	"go-postgres-pos/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env opsional untuk development lokal
	_ = godotenv.Load()

	config.ConnectDB()

	config.DB.AutoMigrate(
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
	)

	config.SeedAdmin()
	config.SeedCategories()

	defer realtime.Default.Close()

	r := gin.Default()
	r.Use(middlewares.RequestID())

	routes.SetupRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "🚀 Koperasi POS API is running"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		utils.Logger().Fatalf("Server berhenti: %v", err)
	}
}
