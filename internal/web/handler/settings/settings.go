// Package settings serves the public subset of site settings.
package settings

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/config"
	"github.com/brightpage/brightpage/internal/db/controller/setting"
	"github.com/brightpage/brightpage/internal/db/models"
	"github.com/brightpage/brightpage/internal/web/handler"
)

// Path is the public settings endpoint.
const Path = "/api/settings/public"

// PublicSettingKeys is the fixed allow-list of settings exposed without
// authentication. Everything else stays admin-only regardless of what is in
// the store.
var PublicSettingKeys = []string{
	"site_title",
	"site_description",
	"contact_email",
	"contact_phone",
}

// Service is the public settings handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the public settings handler.
var Handler = Service{}

// Init initializes the public settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.List)
}

// List returns only the allow-listed settings.
func (s *Service) List(c *fiber.Ctx) error {
	all, err := setting.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch public settings")

		return handler.Message(c, fiber.StatusInternalServerError, "Failed to fetch settings")
	}

	public := make([]models.SiteSetting, 0, len(PublicSettingKeys))
	for _, st := range all {
		if isPublicKey(st.SettingKey) {
			public = append(public, st)
		}
	}

	return c.JSON(public)
}

func isPublicKey(key string) bool {
	for _, allowed := range PublicSettingKeys {
		if key == allowed {
			return true
		}
	}

	return false
}
