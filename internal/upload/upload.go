// Package upload validates and names uploaded media files.
package upload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/brightpage/brightpage/internal/config"
	"github.com/brightpage/brightpage/internal/uniuri"
)

var (
	// ErrTypeNotAllowed is returned when the file is not an accepted image type.
	ErrTypeNotAllowed = errors.New("only image files are allowed")
	// ErrFileTooLarge is returned when the file exceeds the configured size ceiling.
	ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")
)

// allowedTypes maps accepted MIME types to their expected extensions.
var allowedTypes = map[string][]string{
	"image/jpeg":    {".jpg", ".jpeg"},
	"image/png":     {".png"},
	"image/gif":     {".gif"},
	"image/webp":    {".webp"},
	"image/svg+xml": {".svg"},
}

// suffixLen is the random filename suffix length.
const suffixLen = 10

// Store places accepted uploads in a fixed directory and derives their
// public URLs.
type Store struct {
	dir        string
	maxSize    int64
	publicPath string
}

// New creates the upload store and ensures the upload directory exists.
func New(cfg config.Uploads) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &Store{
		dir:        cfg.Dir,
		maxSize:    cfg.MaxSize,
		publicPath: strings.TrimSuffix(cfg.PublicPath, "/"),
	}, nil
}

// Dir returns the upload directory.
func (s *Store) Dir() string {
	return s.dir
}

// Validate checks type and size constraints. It must be called before any
// disk write; a file exactly at the ceiling passes, one byte over does not.
func (s *Store) Validate(originalName, mimeType string, size int64) error {
	exts, ok := allowedTypes[strings.ToLower(mimeType)]
	if !ok {
		return ErrTypeNotAllowed
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	extOK := false
	for _, allowed := range exts {
		if ext == allowed {
			extOK = true
			break
		}
	}
	if !extOK {
		return ErrTypeNotAllowed
	}

	if size > s.maxSize {
		return ErrFileTooLarge
	}

	return nil
}

// StoredName generates a collision-safe filename for an accepted upload:
// the field name, a millisecond timestamp and a random suffix, keeping the
// original extension.
func (s *Store) StoredName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))

	return fmt.Sprintf("file-%d-%s%s", time.Now().UnixMilli(), uniuri.NewLen(suffixLen), ext)
}

// Path returns the on-disk path for a stored filename.
func (s *Store) Path(filename string) string {
	return filepath.Join(s.dir, filename)
}

// PublicURL returns the URL the file is served from.
func (s *Store) PublicURL(filename string) string {
	return s.publicPath + "/" + filename
}

// Remove unlinks the backing file. Failure is logged as a warning only: the
// metadata row removal must proceed even when the file is already gone.
func (s *Store) Remove(filename string) {
	if err := os.Remove(s.Path(filename)); err != nil {
		log.Warn().Err(err).Str("filename", filename).Msg("could not delete physical file")
	}
}
