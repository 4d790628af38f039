// controllers/debt_controller.go
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

// GetDebtors: pelanggan yang masih punya hutang, terbesar dulu.
func GetDebtors(c *gin.Context) {
	svc := service.NewDebtService(config.DB)
	rows, err := svc.Debtors(c.Request.Context())
	if err != nil {
		respondServiceError(c, "Gagal mengambil daftar hutang", err)
		return
	}
	utils.Success(c, "Berhasil mengambil daftar hutang", rows)
}

type DebtPaymentInput struct {
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Note   string `json:"note"`
}

// PayDebt: bayar hutang pelanggan, satu unit atomik (kurangi agregat +
// append history).
func PayDebt(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	customerID, err := strconv.Atoi(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer id tidak valid"})
		return
	}

	var in DebtPaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	svc := service.NewDebtService(config.DB)
	payment, err := svc.Pay(c.Request.Context(), uint(customerID), in.Amount, uid, in.Note)
	if err != nil {
		respondServiceError(c, "Gagal memproses pembayaran hutang", err)
		return
	}

	realtime.Default.Publish(realtime.TopicCustomers, "updated", nil)
	utils.Created(c, "Pembayaran hutang berhasil", payment)
}

// GetDebtHistory: history pembayaran hutang pelanggan.
func GetDebtHistory(c *gin.Context) {
	customerID, err := strconv.Atoi(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer id tidak valid"})
		return
	}

	svc := service.NewDebtService(config.DB)
	rows, err := svc.History(c.Request.Context(), uint(customerID))
	if err != nil {
		respondServiceError(c, "Gagal mengambil history pembayaran", err)
		return
	}
	utils.Success(c, "Berhasil mengambil history pembayaran", rows)
}
