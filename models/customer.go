package models

import "time"

type Customer struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	MemberID string `gorm:"uniqueIndex;size:40" json:"member_id"` // e.g. MBR-000123 (generate di server)
	Name     string `gorm:"size:180;not null" json:"name"`
	Phone    string `gorm:"size:60" json:"phone,omitempty"`
	Address  string `gorm:"size:255" json:"address,omitempty"`

	// agregat, dimutasi oleh checkout & pembayaran hutang
	TotalSpent int64      `gorm:"not null;default:0" json:"total_spent"`
	Debt       int64      `gorm:"not null;default:0" json:"debt"`
	LastVisit  *time.Time `json:"last_visit"`

	JoinDate  time.Time `json:"join_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
