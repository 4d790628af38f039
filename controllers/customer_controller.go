package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go-postgres-pos/config"
	"go-postgres-pos/models"
	"go-postgres-pos/realtime"
	"go-postgres-pos/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type CustomerInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func CreateCustomer(c *gin.Context) {
	var in CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	customer, err := createCustomerRecord(config.DB, in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat customer", "error": err.Error()})
		return
	}

	realtime.Default.Publish(realtime.TopicCustomers, "created", customer)
	utils.Created(c, "Customer berhasil ditambahkan", customer)
}

// createCustomerRecord membuat customer dengan member id berurutan; bentrok
// unik (dua create balapan) di-retry dengan nomor berikutnya.
func createCustomerRecord(db *gorm.DB, in CustomerInput) (*models.Customer, error) {
	const maxRetries = 3
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		var last models.Customer
		seq := int64(1)
		if err := db.Order("id DESC").Limit(1).Find(&last).Error; err != nil {
			return nil, err
		}
		if last.ID != 0 {
			seq = int64(last.ID) + 1
		}

		customer := models.Customer{
			MemberID: utils.GenMemberID(seq),
			Name:     in.Name,
			Phone:    in.Phone,
			Address:  in.Address,
			JoinDate: time.Now().UTC(),
		}
		lastErr = db.Create(&customer).Error
		if lastErr == nil {
			return &customer, nil
		}

		var pgErr *pgconn.PgError
		if errors.As(lastErr, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		if strings.Contains(strings.ToUpper(lastErr.Error()), "UNIQUE") {
			continue
		}
		break
	}
	return nil, lastErr
}

func GetAllCustomers(c *gin.Context) {
	q := config.DB.Order("name ASC")
	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR member_id ILIKE ?", like, like)
	}

	var customers []models.Customer
	if err := q.Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	utils.Success(c, "Berhasil mengambil data Customer", customers)
}

func GetCustomerByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer tidak ditemukan"})
		return
	}
	utils.Success(c, "Berhasil mengambil detail Customer", customer)
}

func UpdateCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer tidak ditemukan"})
		return
	}

	var in struct {
		Name    *string `json:"name"`
		Phone   *string `json:"phone"`
		Address *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}
	// agregat (total_spent, debt, last_visit) hanya dimutasi checkout dan
	// pembayaran hutang, tidak lewat endpoint ini
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	realtime.Default.Publish(realtime.TopicCustomers, "updated", customer)
	utils.Success(c, "Customer berhasil diupdate", customer)
}

func DeleteCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer tidak ditemukan"})
		return
	}
	if customer.Debt > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer masih punya hutang"})
		return
	}

	var cnt int64
	config.DB.Model(&models.SavingsAccount{}).Where("customer_id = ?", id).Count(&cnt)
	if cnt > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer punya akun simpanan"})
		return
	}

	if err := config.DB.Delete(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	realtime.Default.Publish(realtime.TopicCustomers, "deleted", customer.ID)
	utils.Success(c, "Customer berhasil dihapus", nil)
}
