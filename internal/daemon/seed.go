package daemon

import (
	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/config"
	"github.com/brightpage/brightpage/internal/db/models"
)

// defaultSections are created on first start so the landing page has
// something to render before an admin touches the panel.
var defaultSections = []models.ContentSection{
	{SectionKey: "hero", Title: "Welcome", IsActive: true},
	{SectionKey: "about", Title: "About Us", IsActive: true},
	{SectionKey: "services", Title: "Our Services", IsActive: true},
	{SectionKey: "contact", Title: "Contact", IsActive: true},
}

var defaultSettings = []models.SiteSetting{
	{SettingKey: "site_title", SettingValue: "BrightPage", Description: "Site title shown in the browser tab"},
	{SettingKey: "site_description", SettingValue: "", Description: "Short description for search engines"},
	{SettingKey: "contact_email", SettingValue: "", Description: "Public contact email address"},
	{SettingKey: "contact_phone", SettingValue: "", Description: "Public contact phone number"},
}

func seed(cfg *config.Config, db *gorm.DB) {
	// Create a default admin account when the user table is empty. The
	// password must be changed after first login.
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count == 0 && cfg.Auth.Local.Enabled {
		db.Create(
			&models.User{
				Username:   "admin",
				Password:   models.HashPassword("changeme"),
				Active:     true,
				AuthSource: models.AuthSourceLocal,
			},
		)
	}

	db.Model(&models.ContentSection{}).Count(&count)
	if count == 0 {
		db.Create(&defaultSections)
	}

	db.Model(&models.SiteSetting{}).Count(&count)
	if count == 0 {
		db.Create(&defaultSettings)
	}
}
