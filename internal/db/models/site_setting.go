package models

import "time"

// SiteSetting is a key/value configuration pair with upsert semantics keyed
// by SettingKey. A fixed subset of keys is exposed on the public API.
type SiteSetting struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	SettingKey   string    `gorm:"uniqueIndex;size:100;not null" json:"settingKey"`
	SettingValue string    `gorm:"type:text" json:"settingValue"`
	Description  string    `gorm:"size:255" json:"description"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
