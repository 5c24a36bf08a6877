// Package content serves the public content section endpoints the landing
// page reads.
package content

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/config"
	"github.com/brightpage/brightpage/internal/db/controller/section"
	"github.com/brightpage/brightpage/internal/web/handler"
)

// Path is the base path of the public content API.
const Path = "/api/content/sections"

// Service is the public content handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the public content handler.
var Handler = Service{}

// Init initializes the public content handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.List)
	app.Get(Path+"/:sectionKey", s.GetByKey)
}

// List returns all content sections in creation order.
func (s *Service) List(c *fiber.Ctx) error {
	sections, err := section.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch content sections")

		return handler.Message(c, fiber.StatusInternalServerError, "Failed to fetch content sections")
	}

	return c.JSON(sections)
}

// GetByKey returns a single section by its key, 404 if absent.
func (s *Service) GetByKey(c *fiber.Ctx) error {
	sec, err := section.GetByKey(s.db, c.Params("sectionKey"))
	if err != nil {
		if errors.Is(err, section.ErrSectionNotFound) || errors.Is(err, section.ErrSectionKeyEmpty) {
			return handler.Message(c, fiber.StatusNotFound, "Section not found")
		}

		log.Error().Err(err).Msg("failed to fetch content section")

		return handler.Message(c, fiber.StatusInternalServerError, "Failed to fetch content section")
	}

	return c.JSON(sec)
}
