package models

import "time"

// ContactSubmission is an inbound inquiry from the public contact form.
// Rows are never deleted through the API; admins only flip IsRead.
type ContactSubmission struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	CompanyName    string    `gorm:"size:255;not null" json:"companyName"`
	ContactName    string    `gorm:"size:255;not null" json:"contactName"`
	Email          string    `gorm:"size:255;not null" json:"email"`
	ProjectContent string    `gorm:"type:text;not null" json:"projectContent"`
	IsRead         bool      `gorm:"not null;default:false" json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}
