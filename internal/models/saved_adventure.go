package models

import "time"

// SavedAdventure links a user to an adventure they chose to keep.
// One row per (user, adventure) pair, enforced by the composite unique index.
type SavedAdventure struct {
	ID          string    `gorm:"primaryKey;size:36"` // UUID
	UserID      string    `gorm:"size:36;not null;uniqueIndex:idx_user_adventure"`
	AdventureID string    `gorm:"size:36;not null;uniqueIndex:idx_user_adventure"`
	SavedAt     time.Time `gorm:"index;not null"`

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
