// Package media implements the admin endpoints for the media library:
// listing, multipart uploads and deletion.
package media

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/auth"
	"github.com/brightpage/brightpage/internal/config"
	mediacontroller "github.com/brightpage/brightpage/internal/db/controller/media"
	"github.com/brightpage/brightpage/internal/db/models"
	"github.com/brightpage/brightpage/internal/upload"
	"github.com/brightpage/brightpage/internal/web/handler"
)

const (
	// Path is the base path of the admin media API.
	Path = "/api/admin/media"

	// fileField is the multipart form field carrying the upload.
	fileField = "file"
)

// Service is the admin media handler service.
type Service struct {
	cfg   *config.Config
	db    *gorm.DB
	store *upload.Store
}

// Handler is the admin media handler.
var Handler = Service{}

// Init initializes the admin media handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, store *upload.Store) {
	if app == nil || cfg == nil || db == nil || store == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.store = store

	admin := app.Group(Path, auth.RequireAdmin())
	admin.Get("/", s.List)
	admin.Post("/upload", s.Upload)
	admin.Delete("/:id", s.Delete)
}

// List returns all media files, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	files, err := mediacontroller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch media files")

		return handler.Message(c, fiber.StatusInternalServerError, "Failed to fetch media files")
	}

	return c.JSON(files)
}

// Upload validates the multipart file, writes it to disk and records its
// metadata. Validation happens before any disk write.
func (s *Service) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile(fileField)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "No file uploaded")
	}

	mimeType := fileHeader.Header.Get(fiber.HeaderContentType)

	if err = s.store.Validate(fileHeader.Filename, mimeType, fileHeader.Size); err != nil {
		switch {
		case errors.Is(err, upload.ErrTypeNotAllowed):
			return handler.Message(c, fiber.StatusBadRequest, "Only image files are allowed")
		case errors.Is(err, upload.ErrFileTooLarge):
			return handler.Message(c, fiber.StatusBadRequest, "File exceeds the maximum allowed size")
		default:
			log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("upload validation failed")

			return handler.Message(c, fiber.StatusInternalServerError, "Failed to upload file")
		}
	}

	storedName := s.store.StoredName(fileHeader.Filename)

	if err = c.SaveFile(fileHeader, s.store.Path(storedName)); err != nil {
		log.Error().Err(err).Str("filename", storedName).Msg("failed to save uploaded file")

		return handler.Message(c, fiber.StatusInternalServerError, "Failed to upload file")
	}

	file, err := mediacontroller.Create(s.db, &models.MediaFile{
		Filename:     storedName,
		OriginalName: fileHeader.Filename,
		MimeType:     mimeType,
		Size:         fileHeader.Size,
		URL:          s.store.PublicURL(storedName),
		Alt:          c.FormValue("alt"),
	})
	if err != nil {
		// keep disk and metadata consistent when the row cannot be written
		s.store.Remove(storedName)

		log.Error().Err(err).Str("filename", storedName).Msg("failed to record media metadata")

		return handler.Message(c, fiber.StatusInternalServerError, "Failed to upload file")
	}

	return c.Status(fiber.StatusCreated).JSON(file)
}

// Delete removes the stored file best-effort, then the metadata row. A
// missing physical file never blocks removal of the row.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return handler.Message(c, fiber.StatusNotFound, "Media file not found")
	}

	file, err := mediacontroller.GetByID(s.db, id)
	if err != nil {
		if errors.Is(err, mediacontroller.ErrMediaNotFound) {
			return handler.Message(c, fiber.StatusNotFound, "Media file not found")
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to fetch media file")

		return handler.Message(c, fiber.StatusInternalServerError, "Failed to delete media file")
	}

	s.store.Remove(file.Filename)

	deleted, err := mediacontroller.Delete(s.db, id)
	if err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("failed to delete media file")

		return handler.Message(c, fiber.StatusInternalServerError, "Failed to delete media file")
	}

	if !deleted {
		return handler.Message(c, fiber.StatusNotFound, "Media file not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
