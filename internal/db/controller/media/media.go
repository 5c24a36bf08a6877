// Package media provides CRUD operations for uploaded media metadata.
package media

import (
	"errors"

	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/db/models"
)

var (
	// ErrMediaNotFound is returned when a media file is not found.
	ErrMediaNotFound = errors.New("media file not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetAll retrieves all media files, newest first.
func GetAll(db *gorm.DB) ([]models.MediaFile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var files []models.MediaFile
	result := db.Order("created_at DESC, id DESC").Find(&files)
	if result.Error != nil {
		return nil, result.Error
	}

	return files, nil
}

// GetByID retrieves a media file by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.MediaFile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var file models.MediaFile
	result := db.First(&file, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, result.Error
	}

	return &file, nil
}

// Create records metadata for a stored upload and returns the created row.
func Create(db *gorm.DB, file *models.MediaFile) (*models.MediaFile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	result := db.Create(file)
	if result.Error != nil {
		return nil, result.Error
	}

	return file, nil
}

// Delete removes a media row by ID. Returns false without error for an
// absent ID, so repeated deletes are idempotent.
func Delete(db *gorm.DB, id uint64) (bool, error) {
	if db == nil {
		return false, ErrDBNil
	}

	result := db.Delete(&models.MediaFile{}, id)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
