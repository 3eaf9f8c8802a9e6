package domain

import "time"

type LostItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"size:1000;not null" json:"description"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	Found       bool      `gorm:"not null;default:false" json:"found"`
	PhotoKey    string    `gorm:"size:512" json:"photo_key,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Owner       *Owner    `gorm:"constraint:OnDelete:CASCADE" json:"owner,omitempty"`
}
