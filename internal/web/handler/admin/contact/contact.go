// Package contact implements the admin inbox for contact submissions.
package contact

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/auth"
	"github.com/brightpage/brightpage/internal/config"
	contactcontroller "github.com/brightpage/brightpage/internal/db/controller/contact"
	"github.com/brightpage/brightpage/internal/web/handler"
)

// Path is the base path of the admin contact API.
const Path = "/api/admin/contact"

// Service is the admin contact handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin contact handler.
var Handler = Service{}

// Init initializes the admin contact handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	admin := app.Group(Path, auth.RequireAdmin())
	admin.Get("/", s.List)
	admin.Put("/:id/read", s.MarkRead)
}

// List returns all submissions, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	submissions, err := contactcontroller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch contact submissions")

		return handler.Message(c, fiber.StatusInternalServerError, "Failed to fetch contact submissions")
	}

	return c.JSON(submissions)
}

// MarkRead flags a submission as read. Marking an already-read submission
// succeeds again with no change.
func (s *Service) MarkRead(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return handler.Message(c, fiber.StatusNotFound, "Contact submission not found")
	}

	marked, err := contactcontroller.MarkRead(s.db, id)
	if err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("failed to mark contact submission as read")

		return handler.Message(c, fiber.StatusInternalServerError, "Failed to update contact submission")
	}

	if !marked {
		return handler.Message(c, fiber.StatusNotFound, "Contact submission not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
