// controllers/savings_controller.go
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

type SavingsTransactionInput struct {
	Type        models.SavingsTxType   `json:"type" binding:"required"`
	Category    models.SavingsCategory `json:"category" binding:"required"`
	Amount      int64                  `json:"amount" binding:"required,gt=0"`
	Description string                 `json:"description"`
}

// ProcessSavingsTransaction: setoran/penarikan simpanan, satu unit atomik.
func ProcessSavingsTransaction(c *gin.Context) {
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

	var in SavingsTransactionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	svc := service.NewSavingsService(config.DB)
	entry, err := svc.Process(c.Request.Context(), uint(customerID), service.SavingsInput{
		Type:        in.Type,
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
		UserID:      uid,
	})
	if err != nil {
		respondServiceError(c, "Gagal memproses transaksi simpanan", err)
		return
	}

	realtime.Default.Publish(realtime.TopicSavings, "created", entry)
	utils.Created(c, "Transaksi simpanan berhasil", entry)
}

// GetSavingsStatus: akun + flag panduan (pokok lunas, wajib lunas bulan ini).
func GetSavingsStatus(c *gin.Context) {
	customerID, err := strconv.Atoi(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer id tidak valid"})
		return
	}

	svc := service.NewSavingsService(config.DB)
	status, err := svc.Status(c.Request.Context(), uint(customerID))
	if err != nil {
		respondServiceError(c, "Gagal mengambil status simpanan", err)
		return
	}

	utils.Success(c, "Berhasil mengambil status simpanan", gin.H{
		"account":               status.Account,
		"pokok_lunas":           status.PokokLunas,
		"wajib_lunas_bulan_ini": status.WajibLunasBulanIni,
		"pokok_amount":          service.PokokAmount,
		"wajib_monthly_amount":  service.WajibMonthlyAmount,
	})
}

// GetSavingsHistory: buku besar simpanan customer, terbaru dulu.
func GetSavingsHistory(c *gin.Context) {
	customerID, err := strconv.Atoi(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer id tidak valid"})
		return
	}

	svc := service.NewSavingsService(config.DB)
	rows, err := svc.History(c.Request.Context(), uint(customerID))
	if err != nil {
		respondServiceError(c, "Gagal mengambil riwayat simpanan", err)
		return
	}
	utils.Success(c, "Berhasil mengambil riwayat simpanan", rows)
}
