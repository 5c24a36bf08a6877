// Package user provides lookup and provider-upsert operations for accounts.
package user

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/db/models"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetByID retrieves a user by ID.
func GetByID(db *gorm.DB, id uint64) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var u models.User
	result := db.First(&u, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}

	return &u, nil
}

// GetByUsername retrieves a user by username.
func GetByUsername(db *gorm.DB, username string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var u models.User
	result := db.Where("username = ?", username).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}

	return &u, nil
}

// Profile carries the identity fields delivered by the OIDC provider.
type Profile struct {
	ExternalID      string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

// UpsertOIDC finds the account for an OIDC subject, creating it on first
// login and refreshing the profile fields on every subsequent one.
func UpsertOIDC(db *gorm.DB, profile Profile) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var u models.User
	err := db.Where("external_id = ? AND auth_source = ?", profile.ExternalID, models.AuthSourceOIDC).
		First(&u).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		u = models.User{
			Active:          true,
			Username:        profile.Email,
			Email:           profile.Email,
			FirstName:       profile.FirstName,
			LastName:        profile.LastName,
			ProfileImageURL: profile.ProfileImageURL,
			AuthSource:      models.AuthSourceOIDC,
			ExternalID:      profile.ExternalID,
		}

		if err = db.Create(&u).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		u.Email = profile.Email
		u.FirstName = profile.FirstName
		u.LastName = profile.LastName
		u.ProfileImageURL = profile.ProfileImageURL
		u.UpdatedAt = time.Now()

		if err = db.Save(&u).Error; err != nil {
			return nil, err
		}
	}

	return &u, nil
}
