// Package section provides CRUD operations for content sections.
package section

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/db/models"
)

const keyQueryPattern = "section_key = ?"

var (
	// ErrSectionNotFound is returned when a content section is not found.
	ErrSectionNotFound = errors.New("content section not found")
	// ErrSectionKeyEmpty is returned when creating a section with an empty key.
	ErrSectionKeyEmpty = errors.New("section key cannot be empty")
	// ErrSectionKeyExists is returned when creating a section whose key is already taken.
	ErrSectionKeyExists = errors.New("section key already exists")
	// ErrSectionKeyImmutable is returned when an update attempts to change the section key.
	ErrSectionKeyImmutable = errors.New("section key cannot be changed")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Fields holds the writable fields of a content section. Pointer fields are
// applied only when non-nil so partial updates leave the rest untouched.
type Fields struct {
	Title    *string
	Subtitle *string
	Content  *string
	Metadata datatypes.JSON
	IsActive *bool
}

// GetAll retrieves all content sections in creation order.
func GetAll(db *gorm.DB) ([]models.ContentSection, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var sections []models.ContentSection
	result := db.Order("created_at ASC, id ASC").Find(&sections)
	if result.Error != nil {
		return nil, result.Error
	}

	return sections, nil
}

// GetByKey retrieves a content section by its section key.
func GetByKey(db *gorm.DB, key string) (*models.ContentSection, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrSectionKeyEmpty
	}

	var sec models.ContentSection
	result := db.Where(keyQueryPattern, key).First(&sec)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, result.Error
	}

	return &sec, nil
}

// GetByID retrieves a content section by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.ContentSection, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var sec models.ContentSection
	result := db.First(&sec, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, result.Error
	}

	return &sec, nil
}

// Create creates a new content section. A key already present in the store is
// rejected, never overwritten.
func Create(db *gorm.DB, key string, fields Fields) (*models.ContentSection, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrSectionKeyEmpty
	}

	var existing models.ContentSection
	result := db.Where(keyQueryPattern, key).First(&existing)
	if result.Error == nil {
		return nil, ErrSectionKeyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	sec := &models.ContentSection{
		SectionKey: key,
		IsActive:   true,
	}
	applyFields(sec, fields)

	result = db.Create(sec)
	if result.Error != nil {
		return nil, result.Error
	}

	return sec, nil
}

// Update applies a partial field set to an existing section. The section key
// is immutable: callers wanting a different key must create a new section.
func Update(db *gorm.DB, id uint64, key string, fields Fields) (*models.ContentSection, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var sec models.ContentSection
	result := db.First(&sec, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, result.Error
	}

	if key != "" && key != sec.SectionKey {
		return nil, ErrSectionKeyImmutable
	}

	applyFields(&sec, fields)

	result = db.Save(&sec)
	if result.Error != nil {
		return nil, result.Error
	}

	return &sec, nil
}

// Delete removes a section by ID. Deleting an absent ID returns false and no
// error, so repeated deletes are idempotent.
func Delete(db *gorm.DB, id uint64) (bool, error) {
	if db == nil {
		return false, ErrDBNil
	}

	result := db.Delete(&models.ContentSection{}, id)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func applyFields(sec *models.ContentSection, fields Fields) {
	if fields.Title != nil {
		sec.Title = *fields.Title
	}
	if fields.Subtitle != nil {
		sec.Subtitle = *fields.Subtitle
	}
	if fields.Content != nil {
		sec.Content = *fields.Content
	}
	if fields.Metadata != nil {
		sec.Metadata = fields.Metadata
	}
	if fields.IsActive != nil {
		sec.IsActive = *fields.IsActive
	}
}
