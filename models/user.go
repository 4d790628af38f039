package models

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
)

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;size:180" json:"email"`
	Name         string     `gorm:"size:180" json:"name"`
	Role         Role       `gorm:"size:20;default:cashier" json:"role"`
	AvatarURL    string     `gorm:"size:255" json:"avatar_url"`
	PasswordHash string     `gorm:"size:255" json:"-"` // jangan dikirim ke client
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
