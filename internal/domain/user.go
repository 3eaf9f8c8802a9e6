package domain

import "time"

// User is a registered identity. PasswordHash never leaves the service
// boundary: it is excluded from JSON and must only be checked through the
// password hasher.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	DisplayName  string    `gorm:"size:255;not null" json:"displayName"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
