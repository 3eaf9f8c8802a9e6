package domain

import "time"

type Owner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;index" json:"name"`
	Phone     string    `gorm:"size:64" json:"phone"`
	Email     string    `gorm:"size:255" json:"email"`
	Address   string    `gorm:"size:500" json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerSummary is the projection returned by the owner list endpoint.
type OwnerSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
