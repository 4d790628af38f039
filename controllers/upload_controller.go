// controllers/upload_controller.go
package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"go-postgres-pos/utils"

	"github.com/gin-gonic/gin"
)

var uploadClient = &http.Client{Timeout: 30 * time.Second}

// UploadImage meneruskan gambar produk ke imgur (anonymous) dan mengembalikan
// URL-nya untuk disimpan di record produk.
func UploadImage(c *gin.Context) {
	clientID := os.Getenv("IMGUR_CLIENT_ID")
	if clientID == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Upload gambar tidak dikonfigurasi"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File tidak ditemukan", "error": err.Error()})
		return
	}
	if fileHeader.Size > 10<<20 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File terlalu besar (maks 10MB)"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Gagal membuka file", "error": err.Error()})
		return
	}
	defer src.Close()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		part, err := mw.CreateFormFile("image", fileHeader.Filename)
		if err == nil {
			_, err = io.Copy(part, src)
		}
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, "https://api.imgur.com/3/image", pr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat request", "error": err.Error()})
		return
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Client-ID "+clientID)

	resp, err := uploadClient.Do(req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Upload ke imgur gagal", "error": err.Error()})
		return
	}
	defer resp.Body.Close()

	var out struct {
		Success bool `json:"success"`
		Data    struct {
			Link  string `json:"link"`
			Error string `json:"error"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Respon imgur tidak valid", "error": err.Error()})
		return
	}
	if !out.Success || out.Data.Link == "" {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Upload ditolak imgur", "error": fmt.Sprintf("status=%d %s", resp.StatusCode, out.Data.Error)})
		return
	}

	utils.Success(c, "Upload berhasil", gin.H{"url": out.Data.Link})
}
