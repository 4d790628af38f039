// controllers/inventory_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"go-postgres-pos/config"
	"go-postgres-pos/models"
	"go-postgres-pos/realtime"
	"go-postgres-pos/service"
	"go-postgres-pos/utils"

	"github.com/gin-gonic/gin"
)

type StockAdjustmentInput struct {
	ProductID uint                `json:"product_id" binding:"required"`
	Type      models.StockLogType `json:"type" binding:"required"`
	Quantity  int64               `json:"quantity" binding:"required"`
	Reason    string              `json:"reason" binding:"required"`
}

// AdjustStock: mutasi stok manual (in/out/adjustment) plus log.
func AdjustStock(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	var in StockAdjustmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	svc := service.NewInventoryService(config.DB)
	log, err := svc.Adjust(c.Request.Context(), service.AdjustmentInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		UserID:    uid,
	})
	if err != nil {
		respondServiceError(c, "Gagal mutasi stok", err)
		return
	}

	realtime.Default.Publish(realtime.TopicProducts, "updated", nil)
	utils.Created(c, "Mutasi stok berhasil", log)
}

// GetInventoryLogs: log mutasi stok, opsional ?product_id= dan ?type=.
func GetInventoryLogs(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Query("product_id"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	svc := service.NewInventoryService(config.DB)
	rows, err := svc.Logs(c.Request.Context(), uint(productID), models.StockLogType(c.Query("type")), limit)
	if err != nil {
		respondServiceError(c, "Gagal mengambil log stok", err)
		return
	}
	utils.Success(c, "Berhasil mengambil log stok", rows)
}
