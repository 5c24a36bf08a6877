package models

import "time"

// MediaFile holds metadata for an uploaded image. The backing file lives in
// the upload directory under Filename; URL is the public path derived from it.
type MediaFile struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Filename     string    `gorm:"size:255;not null" json:"filename"`
	OriginalName string    `gorm:"size:255;not null" json:"originalName"`
	MimeType     string    `gorm:"size:100;not null" json:"mimeType"`
	Size         int64     `gorm:"not null" json:"size"`
	URL          string    `gorm:"size:512;not null" json:"url"`
	Alt          string    `gorm:"size:255" json:"alt"`
	CreatedAt    time.Time `json:"createdAt"`
}
