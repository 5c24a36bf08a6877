// Package login implements the session endpoints of the admin API: local
// login, logout and the current-user lookup.
package login

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/auth"
	"github.com/brightpage/brightpage/internal/config"
	"github.com/brightpage/brightpage/internal/web/handler"
	"github.com/brightpage/brightpage/internal/web/session"
)

const (
	// Path is the local login endpoint.
	Path = "/api/auth/login"
	// LogoutPath is the logout endpoint.
	LogoutPath = "/api/auth/logout"
	// UserPath answers "who is the current user".
	UserPath = "/api/auth/user"
)

// Request declares the login form fields. The TOTP code is only consulted
// for accounts with a second factor enrolled.
type Request struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	TOTPCode string `json:"totpCode"`
}

// Service is the login handler service.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	store     *session.Store
	local     *auth.LocalProvider
	validator *validator.Validate
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, store *session.Store) {
	if app == nil || cfg == nil || db == nil || store == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.store = store
	s.local = auth.NewLocalProvider(db)
	s.validator = validator.New()

	app.Post(Path, s.Post)
	app.Post(LogoutPath, s.Logout)
	app.Get(UserPath, auth.RequireAdmin(), s.User)
}

// Post handles a local login and sets the session cookie on success.
func (s *Service) Post(c *fiber.Ctx) error {
	if !s.cfg.Auth.Local.Enabled {
		return handler.Message(c, fiber.StatusForbidden, "Local login is disabled")
	}

	req := new(Request)
	if err := c.BodyParser(req); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid login data")
	}

	if err := s.validator.Struct(req); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid login data")
	}

	u, err := s.local.Authenticate(req.Username, req.Password, req.TOTPCode)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrTOTPRequired):
			return handler.Message(c, fiber.StatusUnauthorized, "TOTP code required")
		case errors.Is(err, auth.ErrUserNotFound),
			errors.Is(err, auth.ErrInvalidPassword),
			errors.Is(err, auth.ErrInvalidTOTPCode),
			errors.Is(err, auth.ErrUserAccountDisabled):
			return handler.Message(c, fiber.StatusUnauthorized, "Invalid username or password")
		default:
			log.Error().Err(err).Msg("login failed")

			return handler.Message(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")

		return handler.Message(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if err = s.store.Write(sessionID, &session.Data{UserID: u.ID}); err != nil {
		log.Error().Err(err).Msg("failed to write session")

		return handler.Message(c, fiber.StatusInternalServerError, "Internal server error")
	}

	SetSessionCookie(c, s.cfg, sessionID)

	return c.JSON(u)
}

// Logout destroys the session and clears the cookie. Logging out without a
// session is not an error.
func (s *Service) Logout(c *fiber.Ctx) error {
	sessionID := c.Cookies(session.CookieName)
	if sessionID != "" {
		if err := s.store.Destroy(sessionID); err != nil {
			log.Warn().Err(err).Msg("failed to destroy session")
		}
	}

	c.ClearCookie(session.CookieName)

	return c.SendStatus(fiber.StatusNoContent)
}

// User returns the authenticated user.
func (s *Service) User(c *fiber.Ctx) error {
	return c.JSON(auth.CurrentUser(c))
}

// SetSessionCookie sets the session cookie the way every login flow must:
// HTTPOnly always, Secure outside dev mode.
func SetSessionCookie(c *fiber.Ctx, cfg *config.Config, sessionID string) {
	cookie := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		MaxAge:   int(cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if cfg.DevMode {
		cookie.Secure = false
	}

	c.Cookie(cookie)
}
