package config

import (
	"os"

	"go-postgres-pos/models"
	"go-postgres-pos/utils"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin membuat satu user admin default kalau belum ada user sama sekali.
func SeedAdmin() {
	var cnt int64
	DB.Model(&models.User{}).Count(&cnt)
	if cnt > 0 {
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@koperasi.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.Errorf("Gagal hash password admin: %v", err)
		return
	}

	admin := models.User{
		Email:        email,
		Name:         "Administrator",
		Role:         models.RoleAdmin,
		AvatarURL:    utils.DefaultAvatar("Administrator"),
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		utils.Errorf("Gagal seed admin: %v", err)
		return
	}
	utils.Infof("Admin default dibuat: %s", email)
}

// SeedCategories mengisi kategori dasar sekali saja.
func SeedCategories() {
	names := []models.Category{
		{Name: "Sembako", Color: "emerald"},
		{Name: "Minuman", Color: "sky"},
		{Name: "Makanan Ringan", Color: "amber"},
		{Name: "Alat Tulis", Color: "violet"},
	}
	for _, cat := range names {
		var cnt int64
		DB.Model(&models.Category{}).Where("name = ?", cat.Name).Count(&cnt)
		if cnt == 0 {
			DB.Create(&cat)
		}
	}
}
