// Package settings implements the admin endpoints for site settings.
package settings

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/auth"
	"github.com/brightpage/brightpage/internal/config"
	"github.com/brightpage/brightpage/internal/db/controller/setting"
	"github.com/brightpage/brightpage/internal/web/handler"
)

// Path is the base path of the admin settings API.
const Path = "/api/admin/settings"

// UpsertRequest declares the body of a setting upsert. The key comes from
// the URL, never the body.
type UpsertRequest struct {
	SettingValue string `json:"settingValue" validate:"required"`
	Description  string `json:"description"`
}

// Service is the admin settings handler service.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the admin settings handler.
var Handler = Service{}

// Init initializes the admin settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	admin := app.Group(Path, auth.RequireAdmin())
	admin.Get("/", s.List)
	admin.Put("/:settingKey", s.Put)
}

// List returns every setting, including non-public ones.
func (s *Service) List(c *fiber.Ctx) error {
	settings, err := setting.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch settings")

		return handler.Message(c, fiber.StatusInternalServerError, "Failed to fetch settings")
	}

	return c.JSON(settings)
}

// Put creates or replaces the setting named by the URL key.
func (s *Service) Put(c *fiber.Ctx) error {
	req := new(UpsertRequest)

	if err := c.BodyParser(req); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid setting data")
	}

	if err := s.validator.Struct(req); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid setting data")
	}

	st, err := setting.Set(s.db, c.Params("settingKey"), req.SettingValue, req.Description)
	if err != nil {
		log.Error().Err(err).Str("settingKey", c.Params("settingKey")).Msg("failed to upsert setting")

		return handler.Message(c, fiber.StatusInternalServerError, "Failed to update setting")
	}

	return c.JSON(st)
}
