// Package contact receives public contact form submissions.
package contact

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/config"
	"github.com/brightpage/brightpage/internal/db/controller/contact"
	"github.com/brightpage/brightpage/internal/db/models"
	"github.com/brightpage/brightpage/internal/web/handler"
)

// Path is the public contact form endpoint.
const Path = "/api/contact"

// SubmissionRequest declares the required contact form fields.
type SubmissionRequest struct {
	CompanyName    string `json:"companyName" validate:"required"`
	ContactName    string `json:"contactName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	ProjectContent string `json:"projectContent" validate:"required"`
}

// Service is the public contact form handler service.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the public contact form handler.
var Handler = Service{}

// Init initializes the contact form handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	app.Post(Path, s.Post)
}

// Post validates the submission and stores it unread.
func (s *Service) Post(c *fiber.Ctx) error {
	req := new(SubmissionRequest)

	if err := c.BodyParser(req); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid contact form data")
	}

	if err := s.validator.Struct(req); err != nil {
		log.Debug().Strs("errors", handler.ValidationMessages(err)).Msg("contact form validation failed")

		return handler.Message(c, fiber.StatusBadRequest, "Invalid contact form data")
	}

	submission, err := contact.Create(s.db, &models.ContactSubmission{
		CompanyName:    req.CompanyName,
		ContactName:    req.ContactName,
		Email:          req.Email,
		ProjectContent: req.ProjectContent,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create contact submission")

		return handler.Message(c, fiber.StatusInternalServerError, "Failed to create contact submission")
	}

	return c.Status(fiber.StatusCreated).JSON(submission)
}
