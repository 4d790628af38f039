// controllers/report_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go-postgres-pos/config"
	"go-postgres-pos/service"
	"go-postgres-pos/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// parseDateRange membaca ?from=YYYY-MM-DD&to=YYYY-MM-DD, default 30 hari
// terakhir. `to` eksklusif (ditambah satu hari dari input).
func parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now.AddDate(0, 0, 1)

	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("from tidak valid: %s", s)
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("to tidak valid: %s", s)
		}
		to = t.AddDate(0, 0, 1)
	}
	return from, to, nil
}

// ReportDailySales: ringkasan penjualan per hari (omzet, modal, laba).
func ReportDailySales(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	svc := service.NewReportService(config.DB)
	rows, err := svc.DailySales(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, "Gagal mengambil laporan", err)
		return
	}
	utils.Success(c, "Berhasil mengambil laporan penjualan", rows)
}

// ReportProducts: laporan stok produk dengan status LOW/OK, paginated.
func ReportProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	svc := service.NewReportService(config.DB)
	rows, total, err := svc.Products(c.Request.Context(), service.ProductReportFilter{
		Query:    c.Query("q"),
		LowOnly:  c.Query("low") == "true",
		Page:     page,
		PageSize: pageSize,
		SortBy:   c.Query("sort"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil laporan", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Berhasil mengambil laporan produk",
		"data":    rows,
		"total":   total,
	})
}

// ReportTopProducts: produk terlaris pada rentang tanggal.
func ReportTopProducts(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	svc := service.NewReportService(config.DB)
	rows, err := svc.TopProducts(c.Request.Context(), from, to, limit)
	if err != nil {
		respondServiceError(c, "Gagal mengambil laporan", err)
		return
	}
	utils.Success(c, "Berhasil mengambil produk terlaris", rows)
}

// ExportDailySales: laporan penjualan harian sebagai XLSX.
func ExportDailySales(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	svc := service.NewReportService(config.DB)
	rows, err := svc.DailySales(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, "Gagal mengambil laporan", err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Laporan Penjualan"
	f.SetSheetName("Sheet1", sheet)
	for i, h := range []string{"Tanggal", "Jumlah Transaksi", "Omzet", "Modal", "Laba"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, r := range rows {
		values := []any{r.Day, r.TxCount, r.Revenue, r.Cost, r.Profit}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("Laporan_Penjualan_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		utils.Errorf("Gagal menulis xlsx laporan: %v", err)
	}
}
