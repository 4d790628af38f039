// controllers/customer_excel_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"go-postgres-pos/config"
	"go-postgres-pos/models"
	"go-postgres-pos/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

var customerSheetHeader = []string{"Member ID", "Nama", "Telepon", "Alamat", "Total Belanja", "Hutang", "Bergabung"}

// ExportCustomers mengirim semua customer sebagai file XLSX.
func ExportCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := config.DB.Order("member_id ASC").Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data", "error": err.Error()})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Customers"
	f.SetSheetName("Sheet1", sheet)
	for i, h := range customerSheetHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, cust := range customers {
		values := []any{
			cust.MemberID,
			cust.Name,
			cust.Phone,
			cust.Address,
			cust.TotalSpent,
			cust.Debt,
			cust.JoinDate.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("Customers_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		utils.Errorf("Gagal menulis xlsx customer: %v", err)
	}
}

// ImportCustomers membaca file XLSX (kolom: Nama, Telepon, Alamat) dan
// membuat customer baru per baris. Baris tanpa nama dilewati.
func ImportCustomers(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File tidak ditemukan", "error": err.Error()})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Gagal membuka file", "error": err.Error()})
		return
	}
	defer src.Close()

	f, err := excelize.OpenReader(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File bukan XLSX valid", "error": err.Error()})
		return
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Gagal membaca sheet", "error": err.Error()})
		return
	}

	imported := 0
	skipped := 0
	for i, row := range rows {
		if i == 0 { // header
			continue
		}
		if len(row) == 0 || row[0] == "" {
			skipped++
			continue
		}
		in := CustomerInput{Name: row[0]}
		if len(row) > 1 {
			in.Phone = row[1]
		}
		if len(row) > 2 {
			in.Address = row[2]
		}
		if _, err := createCustomerRecord(config.DB, in); err != nil {
			utils.Warnf("Import customer baris %d gagal: %v", i+1, err)
			skipped++
			continue
		}
		imported++
	}

	utils.Success(c, "Import selesai", gin.H{"imported": imported, "skipped": skipped})
}

// CustomerImportTemplate mengirim template XLSX kosong untuk import.
func CustomerImportTemplate(c *gin.Context) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Template"
	f.SetSheetName("Sheet1", sheet)
	for i, h := range []string{"Nama", "Telepon", "Alamat"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellValue(sheet, "A2", "Budi Santoso")
	f.SetCellValue(sheet, "B2", "081234567890")
	f.SetCellValue(sheet, "C2", "Jl. Contoh No. 1")

	c.Header("Content-Disposition", `attachment; filename="Template_Customer.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		utils.Errorf("Gagal menulis template xlsx: %v", err)
	}
}
