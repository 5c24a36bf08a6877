// Package oidc implements the browser-facing OIDC login flow. The provider
// owns the User lifecycle: the callback upserts the account before the
// session is created.
package oidc

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/auth"
	"github.com/brightpage/brightpage/internal/config"
	"github.com/brightpage/brightpage/internal/web/handler"
	"github.com/brightpage/brightpage/internal/web/handler/login"
	"github.com/brightpage/brightpage/internal/web/session"
)

const (
	// Path is the OIDC login entry point.
	Path = "/auth/oidc/login"
	// CallbackPath is the provider redirect target.
	CallbackPath = "/auth/oidc/callback"

	// stateCookie carries the CSRF state between redirect and callback.
	stateCookie = "oidc_state"
)

// Service is the OIDC login handler service.
type Service struct {
	cfg      *config.Config
	db       *gorm.DB
	store    *session.Store
	provider *auth.OIDCProvider
}

// Handler is the OIDC login handler.
var Handler = Service{}

// Init initializes the OIDC handler. When OIDC is disabled the routes are
// not registered at all.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, store *session.Store) {
	if app == nil || cfg == nil || db == nil || store == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	if !cfg.Auth.OIDC.Enabled {
		return
	}

	provider, err := auth.NewOIDCProvider(context.Background(), &cfg.Auth.OIDC, db)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize OIDC provider, OIDC login disabled")
		return
	}

	s.cfg = cfg
	s.db = db
	s.store = store
	s.provider = provider

	app.Get(Path, s.Login)
	app.Get(CallbackPath, s.Callback)
}

// Login redirects the browser to the provider's authorization endpoint.
func (s *Service) Login(c *fiber.Ctx) error {
	state, err := auth.GenerateStateToken()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate OIDC state token")

		return handler.Message(c, fiber.StatusInternalServerError, "Internal server error")
	}

	c.Cookie(&fiber.Cookie{
		Name:     stateCookie,
		Value:    state,
		MaxAge:   300,
		Secure:   !s.cfg.DevMode,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Redirect(s.provider.GetAuthURL(state))
}

// Callback verifies state, exchanges the code, upserts the user and starts
// the session.
func (s *Service) Callback(c *fiber.Ctx) error {
	state := c.Cookies(stateCookie)
	if state == "" || state != c.Query("state") {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid OIDC state")
	}

	c.ClearCookie(stateCookie)

	u, err := s.provider.HandleCallback(c.Context(), c.Query("code"))
	if err != nil {
		log.Error().Err(err).Msg("OIDC callback failed")

		return handler.Message(c, fiber.StatusUnauthorized, "Authentication failed")
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

	login.SetSessionCookie(c, s.cfg, sessionID)

	return c.Redirect("/")
}
