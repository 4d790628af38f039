// controllers/purchase_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"go-postgres-pos/config"
	"go-postgres-pos/realtime"
	"go-postgres-pos/service"
	"go-postgres-pos/utils"

	"github.com/gin-gonic/gin"
)

type PurchaseRequest struct {
	Supplier     string                     `json:"supplier" binding:"required"`
	ShippingCost int64                      `json:"shipping_cost" binding:"gte=0"`
	Items        []service.PurchaseCartItem `json:"items" binding:"required,min=1"`
}

// CreatePurchase: catat pembelian supplier, tambah stok, refresh harga beli.
func CreatePurchase(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	var in PurchaseRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	svc := service.NewPurchaseService(config.DB)
	purchase, err := svc.Create(c.Request.Context(), service.PurchaseInput{
		Supplier:     in.Supplier,
		ShippingCost: in.ShippingCost,
		Items:        in.Items,
		UserID:       uid,
	})
	if err != nil {
		respondServiceError(c, "Gagal menyimpan pembelian", err)
		return
	}

	realtime.Default.Publish(realtime.TopicProducts, "updated", nil)
	utils.Created(c, "Pembelian berhasil disimpan", purchase)
}

// GetPurchases: daftar pembelian, terbaru dulu.
func GetPurchases(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	svc := service.NewPurchaseService(config.DB)
	rows, err := svc.List(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, "Gagal mengambil data pembelian", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data Pembelian", rows)
}

// GetPurchaseByID: detail pembelian beserta items.
func GetPurchaseByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	svc := service.NewPurchaseService(config.DB)
	purchase, err := svc.Detail(c.Request.Context(), uint(id))
	if err != nil {
		respondServiceError(c, "Gagal mengambil detail pembelian", err)
		return
	}
	utils.Success(c, "Berhasil mengambil detail Pembelian", purchase)
}
