// Package contact provides operations for contact form submissions.
package contact

import (
	"errors"

	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/db/models"
)

var (
	// ErrSubmissionNotFound is returned when a submission is not found.
	ErrSubmissionNotFound = errors.New("contact submission not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetAll retrieves all contact submissions, newest first.
func GetAll(db *gorm.DB) ([]models.ContactSubmission, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var submissions []models.ContactSubmission
	result := db.Order("created_at DESC, id DESC").Find(&submissions)
	if result.Error != nil {
		return nil, result.Error
	}

	return submissions, nil
}

// Create stores a new submission with IsRead false and returns the row.
func Create(db *gorm.DB, submission *models.ContactSubmission) (*models.ContactSubmission, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	submission.IsRead = false

	result := db.Create(submission)
	if result.Error != nil {
		return nil, result.Error
	}

	return submission, nil
}

// MarkRead flips the read flag on a submission. Returns false for an absent
// ID. Marking an already-read submission succeeds and leaves the flag set.
func MarkRead(db *gorm.DB, id uint64) (bool, error) {
	if db == nil {
		return false, ErrDBNil
	}

	var sub models.ContactSubmission
	result := db.First(&sub, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}

	if sub.IsRead {
		return true, nil
	}

	result = db.Model(&sub).Update("is_read", true)
	if result.Error != nil {
		return false, result.Error
	}

	return true, nil
}
