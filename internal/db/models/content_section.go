// Package models contains database model definitions.
package models

import (
	"time"

	"gorm.io/datatypes"
)

// ContentSection is a keyed block of page content rendered by the public
// site. SectionKey is the stable lookup key and never changes after create.
type ContentSection struct {
	ID         uint64         `gorm:"primaryKey" json:"id"`
	SectionKey string         `gorm:"uniqueIndex;size:100;not null" json:"sectionKey"`
	Title      string         `gorm:"size:255" json:"title"`
	Subtitle   string         `gorm:"size:255" json:"subtitle"`
	Content    string         `gorm:"type:text" json:"content"`
	Metadata   datatypes.JSON `json:"metadata"` // section-specific extras, opaque to the server
	IsActive   bool           `gorm:"not null;default:true" json:"isActive"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}
