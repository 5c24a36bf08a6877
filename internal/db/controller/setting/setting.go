// Package setting provides CRUD operations for site settings.
package setting

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/db/models"
)

const keyQueryPattern = "setting_key = ?"

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingKeyEmpty is returned when a setting key is empty.
	ErrSettingKeyEmpty = errors.New("setting key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a setting by its key.
func Get(db *gorm.DB, key string) (*models.SiteSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	var s models.SiteSetting
	result := db.Where(keyQueryPattern, key).First(&s)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, result.Error
	}

	return &s, nil
}

// GetAll retrieves all settings.
func GetAll(db *gorm.DB) ([]models.SiteSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.SiteSetting
	result := db.Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}

// Set creates or replaces a setting by key (upsert). An existing row keeps
// its ID; value, description and the update timestamp are refreshed.
func Set(db *gorm.DB, key, value, description string) (*models.SiteSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	var s models.SiteSetting
	result := db.Where(keyQueryPattern, key).First(&s)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		s = models.SiteSetting{
			SettingKey:   key,
			SettingValue: value,
			Description:  description,
		}

		if err := db.Create(&s).Error; err != nil {
			return nil, err
		}

		return &s, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	s.SettingValue = value
	s.Description = description
	s.UpdatedAt = time.Now()

	result = db.Save(&s)
	if result.Error != nil {
		return nil, result.Error
	}

	return &s, nil
}

// Delete removes a setting by key.
func Delete(db *gorm.DB, key string) error {
	if db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrSettingKeyEmpty
	}

	result := db.Where(keyQueryPattern, key).Delete(&models.SiteSetting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}
