package routes

import (
	"go-postgres-pos/controllers"
	"go-postgres-pos/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		api.POST("/login", controllers.Login)

		auth := api.Group("/", middlewares.AuthMiddleware())
		{
			auth.GET("/profile", controllers.Profile)
			auth.PUT("/profile/password", controllers.ChangePassword)

			// manajemen user hanya admin
			auth.POST("/users", middlewares.RequireRole("admin"), controllers.Register)

			product := auth.Group("/products")
			{
				product.GET("/", controllers.GetAllProducts)
				product.GET("/low-stock", controllers.GetLowStockProducts)
				product.GET("/:id", controllers.GetProductByID)
				product.POST("/", controllers.CreateProduct)
				product.PUT("/:id", controllers.UpdateProduct)
				product.DELETE("/:id", middlewares.RequireRole("admin"), controllers.DeleteProduct)
			}

			category := auth.Group("/categories")
			{
				category.GET("/", controllers.GetAllCategories)
				category.POST("/", controllers.CreateCategory)
				category.PUT("/:id", controllers.UpdateCategory)
				category.DELETE("/:id", middlewares.RequireRole("admin"), controllers.DeleteCategory)
			}

			customer := auth.Group("/customers")
			{
				customer.GET("/", controllers.GetAllCustomers)
				customer.GET("/export", controllers.ExportCustomers)
				customer.GET("/import/template", controllers.CustomerImportTemplate)
				customer.POST("/import", controllers.ImportCustomers)
				customer.GET("/:id", controllers.GetCustomerByID)
				customer.POST("/", controllers.CreateCustomer)
				customer.PUT("/:id", controllers.UpdateCustomer)
				customer.DELETE("/:id", middlewares.RequireRole("admin"), controllers.DeleteCustomer)
			}

			pos := auth.Group("/pos")
			{
				pos.POST("/checkout", controllers.Checkout)
				pos.GET("/sales", controllers.GetSales)
				pos.GET("/sales/:id", controllers.GetSaleByID)
			}

			savings := auth.Group("/savings")
			{
				savings.POST("/:customerId/transactions", controllers.ProcessSavingsTransaction)
				savings.GET("/:customerId", controllers.GetSavingsStatus)
				savings.GET("/:customerId/transactions", controllers.GetSavingsHistory)
			}

			debt := auth.Group("/debts")
			{
				debt.GET("/", controllers.GetDebtors)
				debt.POST("/:customerId/payments", controllers.PayDebt)
				debt.GET("/:customerId/payments", controllers.GetDebtHistory)
			}

			purchase := auth.Group("/purchases")
			{
				purchase.POST("/", controllers.CreatePurchase)
				purchase.GET("/", controllers.GetPurchases)
				purchase.GET("/:id", controllers.GetPurchaseByID)
			}

			inventory := auth.Group("/inventory")
			{
				inventory.POST("/adjust", controllers.AdjustStock)
				inventory.GET("/logs", controllers.GetInventoryLogs)
			}

			reports := auth.Group("/reports", middlewares.RequireRole("admin"))
			{
				reports.GET("/sales", controllers.ReportDailySales)
				reports.GET("/sales/export", controllers.ExportDailySales)
				reports.GET("/products", controllers.ReportProducts)
				reports.GET("/top-products", controllers.ReportTopProducts)
			}

			auth.GET("/orders", controllers.GetExternalOrders)
			auth.POST("/upload/image", controllers.UploadImage)
			auth.GET("/stream/:topic", controllers.StreamTopic)
		}
	}
}
