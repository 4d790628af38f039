// controllers/order_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"go-postgres-pos/config"
	"go-postgres-pos/models"
	"go-postgres-pos/service"
	"go-postgres-pos/utils"

	"github.com/gin-gonic/gin"
)

// GetExternalOrders: penjualan yang masuk dari kanal pesan (telegram/whatsapp).
func GetExternalOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	source := models.SaleSource(c.DefaultQuery("source", string(models.SourceTelegram)))
	if source != models.SourceTelegram && source != models.SourceWhatsApp {
		c.JSON(http.StatusBadRequest, gin.H{"error": "source tidak valid"})
		return
	}

	svc := service.NewCheckoutService(config.DB)
	rows, err := svc.List(c.Request.Context(), source, limit)
	if err != nil {
		respondServiceError(c, "Gagal mengambil order", err)
		return
	}
	utils.Success(c, "Berhasil mengambil order", rows)
}
