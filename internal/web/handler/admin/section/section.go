// Package section implements the admin CRUD endpoints for content sections.
package section

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/auth"
	"github.com/brightpage/brightpage/internal/config"
	"github.com/brightpage/brightpage/internal/db/controller/section"
	"github.com/brightpage/brightpage/internal/web/handler"
)

// Path is the base path of the admin content section API.
const Path = "/api/admin/content/sections"

// CreateRequest declares the fields accepted when creating a section.
type CreateRequest struct {
	SectionKey string         `json:"sectionKey" validate:"required"`
	Title      *string        `json:"title"`
	Subtitle   *string        `json:"subtitle"`
	Content    *string        `json:"content"`
	Metadata   datatypes.JSON `json:"metadata"`
	IsActive   *bool          `json:"isActive"`
}

// UpdateRequest declares the fields accepted on update. Absent fields are
// left untouched; a sectionKey differing from the stored one is rejected.
type UpdateRequest struct {
	SectionKey string         `json:"sectionKey"`
	Title      *string        `json:"title"`
	Subtitle   *string        `json:"subtitle"`
	Content    *string        `json:"content"`
	Metadata   datatypes.JSON `json:"metadata"`
	IsActive   *bool          `json:"isActive"`
}

// Service is the admin content section handler service.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the admin content section handler.
var Handler = Service{}

// Init initializes the admin content section handler.
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
	admin.Post("/", s.Post)
	admin.Put("/:id", s.Put)
	admin.Delete("/:id", s.Delete)
}

// List returns all sections, active or not.
func (s *Service) List(c *fiber.Ctx) error {
	sections, err := section.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch content sections")

		return handler.Message(c, fiber.StatusInternalServerError, "Failed to fetch content sections")
	}

	return c.JSON(sections)
}

// Post creates a new section.
func (s *Service) Post(c *fiber.Ctx) error {
	req := new(CreateRequest)

	if err := c.BodyParser(req); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid section data")
	}

	if err := s.validator.Struct(req); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid section data")
	}

	sec, err := section.Create(s.db, req.SectionKey, section.Fields{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Content:  req.Content,
		Metadata: req.Metadata,
		IsActive: req.IsActive,
	})
	if err != nil {
		if errors.Is(err, section.ErrSectionKeyExists) {
			return handler.Message(c, fiber.StatusBadRequest, "Section key already exists")
		}

		log.Error().Err(err).Str("sectionKey", req.SectionKey).Msg("failed to create content section")

		return handler.Message(c, fiber.StatusInternalServerError, "Failed to create content section")
	}

	return c.Status(fiber.StatusCreated).JSON(sec)
}

// Put applies a partial update to a section.
func (s *Service) Put(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusNotFound, "Section not found")
	}

	req := new(UpdateRequest)
	if err = c.BodyParser(req); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid section data")
	}

	sec, err := section.Update(s.db, id, req.SectionKey, section.Fields{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Content:  req.Content,
		Metadata: req.Metadata,
		IsActive: req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, section.ErrSectionNotFound):
			return handler.Message(c, fiber.StatusNotFound, "Section not found")
		case errors.Is(err, section.ErrSectionKeyImmutable):
			return handler.Message(c, fiber.StatusBadRequest, "Section key cannot be changed")
		default:
			log.Error().Err(err).Uint64("id", id).Msg("failed to update content section")

			return handler.Message(c, fiber.StatusInternalServerError, "Failed to update content section")
		}
	}

	return c.JSON(sec)
}

// Delete removes a section.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusNotFound, "Section not found")
	}

	deleted, err := section.Delete(s.db, id)
	if err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("failed to delete content section")

		return handler.Message(c, fiber.StatusInternalServerError, "Failed to delete content section")
	}

	if !deleted {
		return handler.Message(c, fiber.StatusNotFound, "Section not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx) (uint64, error) {
	return strconv.ParseUint(c.Params("id"), 10, 64)
}
