// controllers/pos_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go-postgres-pos/config"
	"go-postgres-pos/models"
	"go-postgres-pos/realtime"
	"go-postgres-pos/service"
	"go-postgres-pos/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutRequest struct {
	Items      []service.CartItem   `json:"items" binding:"required,min=1"`
	Payment    models.PaymentMethod `json:"payment" binding:"required"`
	CustomerID *uint                `json:"customer_id"`
	Source     models.SaleSource    `json:"source"`
}

// Checkout memproses keranjang jadi satu penjualan atomik.
func Checkout(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	var in CheckoutRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	svc := service.NewCheckoutService(config.DB)
	sale, err := svc.Checkout(c.Request.Context(), service.CheckoutInput{
		Items:      in.Items,
		Payment:    in.Payment,
		CustomerID: in.CustomerID,
		Source:     in.Source,
		CashierID:  uid,
	})
	if err != nil {
		respondServiceError(c, "Gagal memproses transaksi", err)
		return
	}

	realtime.Default.Publish(realtime.TopicSales, "created", sale)
	realtime.Default.Publish(realtime.TopicProducts, "updated", nil)
	if sale.CustomerID != nil {
		realtime.Default.Publish(realtime.TopicCustomers, "updated", nil)
	}

	// notifikasi order best-effort, tidak pernah menggagalkan checkout
	go func(s *models.Sale) {
		if err := utils.NotifyTelegram(formatOrderMessage(s)); err != nil {
			utils.Warnf("Notifikasi telegram gagal: %v", err)
		}
	}(sale)

	utils.Created(c, "Transaksi berhasil", sale)
}

func formatOrderMessage(s *models.Sale) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Penjualan %s\n", s.TransCode)
	for _, it := range s.Items {
		fmt.Fprintf(&b, "- %s x%d = Rp %d\n", it.Name, it.Quantity, it.LineTotal)
	}
	fmt.Fprintf(&b, "Total: Rp %d (%s)", s.TotalAmount, s.Payment)
	if s.CustomerName != "" {
		fmt.Fprintf(&b, "\nPelanggan: %s", s.CustomerName)
	}
	return b.String()
}

// GetSales: daftar penjualan, opsional ?source=pos|telegram|whatsapp.
func GetSales(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	source := models.SaleSource(c.Query("source"))

	svc := service.NewCheckoutService(config.DB)
	rows, err := svc.List(c.Request.Context(), source, limit)
	if err != nil {
		respondServiceError(c, "Gagal mengambil data penjualan", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data Penjualan", rows)
}

// GetSaleByID: detail penjualan beserta items.
func GetSaleByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	svc := service.NewCheckoutService(config.DB)
	sale, err := svc.Detail(c.Request.Context(), uint(id))
	if err != nil {
		respondServiceError(c, "Gagal mengambil detail penjualan", err)
		return
	}
	utils.Success(c, "Berhasil mengambil detail Penjualan", sale)
}
