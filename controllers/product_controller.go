package controllers

import (
	"net/http"
	"strconv"

	"go-postgres-pos/config"
	"go-postgres-pos/models"
	"go-postgres-pos/realtime"
	"go-postgres-pos/utils"

	"github.com/gin-gonic/gin"
)

type ProductInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Barcode     string `json:"barcode"`
	CategoryID  uint   `json:"category_id"`
	Price       int64  `json:"price" binding:"required,gt=0"`
	CostPrice   int64  `json:"cost_price" binding:"gte=0"`
	Stock       int    `json:"stock" binding:"gte=0"`
	MinStock    int    `json:"min_stock" binding:"gte=0"`
	ImageURL    string `json:"image_url"`
}

func CreateProduct(c *gin.Context) {
	var in ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	product := models.Product{
		Name:        in.Name,
		Description: in.Description,
		Barcode:     in.Barcode,
		CategoryID:  in.CategoryID,
		Price:       in.Price,
		CostPrice:   in.CostPrice,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		ImageURL:    in.ImageURL,
		IsActive:    true,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat produk", "error": err.Error()})
		return
	}

	realtime.Default.Publish(realtime.TopicProducts, "created", product)
	utils.Created(c, "Produk berhasil ditambahkan", product)
}

func GetAllProducts(c *gin.Context) {
	q := config.DB.Preload("Category").Order("name ASC")
	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR barcode ILIKE ?", like, like)
	}
	if c.Query("active") != "" {
		q = q.Where("is_active = ?", c.Query("active") == "true")
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data", "error": err.Error()})
		return
	}
	utils.Success(c, "Berhasil mengambil data Produk", products)
}

func GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var product models.Product
	if err := config.DB.Preload("Category").First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak ditemukan"})
		return
	}
	utils.Success(c, "Berhasil mengambil detail Produk", product)
}

func UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak ditemukan"})
		return
	}

	var in struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Barcode     *string `json:"barcode"`
		CategoryID  *uint   `json:"category_id"`
		Price       *int64  `json:"price"`
		CostPrice   *int64  `json:"cost_price"`
		MinStock    *int    `json:"min_stock"`
		ImageURL    *string `json:"image_url"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	// stok tidak diubah lewat endpoint ini; pakai /inventory/adjust agar
	// mutasi selalu tercatat di log
	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Barcode != nil {
		updates["barcode"] = *in.Barcode
	}
	if in.CategoryID != nil {
		updates["category_id"] = *in.CategoryID
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.CostPrice != nil {
		updates["cost_price"] = *in.CostPrice
	}
	if in.MinStock != nil {
		updates["min_stock"] = *in.MinStock
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&product).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal update produk", "error": err.Error()})
			return
		}
	}

	realtime.Default.Publish(realtime.TopicProducts, "updated", product)
	utils.Success(c, "Produk berhasil diupdate", product)
}

func DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak ditemukan"})
		return
	}

	// soft-disable, bukan hapus: penjualan lama masih mereferensikan produk
	if err := config.DB.Model(&product).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menonaktifkan produk", "error": err.Error()})
		return
	}

	realtime.Default.Publish(realtime.TopicProducts, "deleted", product.ID)
	utils.Success(c, "Produk dinonaktifkan", nil)
}

// GetLowStockProducts: produk aktif dengan stok di bawah minimum.
func GetLowStockProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.
		Where("is_active = true AND stock < min_stock").
		Order("stock ASC").
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data", "error": err.Error()})
		return
	}
	utils.Success(c, "Berhasil mengambil produk stok rendah", products)
}
