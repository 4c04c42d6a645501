package store

import (
	"errors"
	"fmt"

	"github.com/AkhilKonduru1/Eventure/internal/models"
	"github.com/AkhilKonduru1/Eventure/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrEmailTaken is returned when a signup reuses a registered email.
var ErrEmailTaken = errors.New("email already registered")

// UserStore persists account records.
type UserStore struct {
	DB *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{DB: db}
}

// Create inserts a new user with a fresh id and a one-way hash of the
// password. The duplicate check and the insert share one transaction; the
// unique index on email is the backstop under concurrent signups.
func (s *UserStore) Create(name, email, password, location string) (*models.User, error) {
	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Location:     location,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("email = ?", email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}
		return tx.Create(user).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// FindByEmail looks a user up by exact email.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID looks a user up by id.
func (s *UserStore) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
