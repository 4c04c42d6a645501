package store

import (
	"errors"
	"time"

	"github.com/AkhilKonduru1/Eventure/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrAlreadySaved is returned when a user saves the same adventure twice.
var ErrAlreadySaved = errors.New("adventure already saved")

// SavedAdventureStore persists the link between users and the adventures
// they keep.
type SavedAdventureStore struct {
	DB *gorm.DB
}

func NewSavedAdventureStore(db *gorm.DB) *SavedAdventureStore {
	return &SavedAdventureStore{DB: db}
}

// Save records an adventure for a user. The duplicate check and the insert
// share one transaction; the composite unique index on (user_id,
// adventure_id) is the backstop under concurrent saves.
func (s *SavedAdventureStore) Save(userID, adventureID string) (*models.SavedAdventure, error) {
	if userID == "" || adventureID == "" {
		return nil, errors.New("user id and adventure id are required")
	}

	rec := &models.SavedAdventure{
		ID:          uuid.NewString(),
		UserID:      userID,
		AdventureID: adventureID,
		SavedAt:     time.Now(),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.SavedAdventure{}).
			Where("user_id = ? AND adventure_id = ?", userID, adventureID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadySaved
		}
		return tx.Create(rec).Error
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListForUser returns a user's saved adventures, newest first.
func (s *SavedAdventureStore) ListForUser(userID string) ([]models.SavedAdventure, error) {
	var recs []models.SavedAdventure
	if err := s.DB.Where("user_id = ?", userID).
		Order("saved_at DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
