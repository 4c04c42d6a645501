package models

import "time"

// User represents a registered account. Accounts are created on signup and
// never updated or deleted afterwards.
type User struct {
	ID           string    `gorm:"primaryKey;size:36"` // UUID
	Name         string    `gorm:"size:64;not null"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	Location     string    `gorm:"size:128;not null"` // home location, default for discovery
	CreatedAt    time.Time
}
