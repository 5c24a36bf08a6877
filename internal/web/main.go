// Package web assembles the fiber application: middleware, route
// registration and the server lifecycle.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/auth"
	"github.com/brightpage/brightpage/internal/config"
	fiberlogger "github.com/brightpage/brightpage/internal/logger/adapter/fiber"
	"github.com/brightpage/brightpage/internal/upload"
	admincontact "github.com/brightpage/brightpage/internal/web/handler/admin/contact"
	adminmedia "github.com/brightpage/brightpage/internal/web/handler/admin/media"
	adminsection "github.com/brightpage/brightpage/internal/web/handler/admin/section"
	adminsettings "github.com/brightpage/brightpage/internal/web/handler/admin/settings"
	oidchandler "github.com/brightpage/brightpage/internal/web/handler/auth/oidc"
	"github.com/brightpage/brightpage/internal/web/handler/contact"
	"github.com/brightpage/brightpage/internal/web/handler/content"
	"github.com/brightpage/brightpage/internal/web/handler/login"
	"github.com/brightpage/brightpage/internal/web/handler/settings"
	"github.com/brightpage/brightpage/internal/web/session"
)

// CheckAliveURI is the liveness endpoint used by load balancers.
const CheckAliveURI = "/checkalive"

// MetricsURI exposes the prometheus registry.
const MetricsURI = "/metrics"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	s.alive.Store(true)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown blocks until SIGINT/SIGTERM and then drains the server.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: fail the liveness check first so
	// the LB removes this instance before connections are dropped.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB, store *session.Store) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	if store == nil {
		panic("session store cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			BodyLimit:      int(cfg.Uploads.MaxSize) + 1024*1024, // leave room for multipart overhead
		},
	)

	// access logging first so every request is seen
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAliveURI,
	}))

	// resolve the session cookie once per request
	app.Use(auth.ResolveSession(store, db))

	// uploaded media is served directly from disk
	app.Static(cfg.Uploads.PublicPath, cfg.Uploads.Dir)

	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}

	app.Get(CheckAliveURI, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})

	app.Get(MetricsURI, adaptor.HTTPHandler(promhttp.Handler()))

	uploadStore, err := upload.New(cfg.Uploads)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize upload store")
		return nil
	}

	// init handlers (they register their own routes and auth gates)
	content.Handler.Init(app, cfg, db)
	contact.Handler.Init(app, cfg, db)
	settings.Handler.Init(app, cfg, db)
	login.Handler.Init(app, cfg, db, store)
	oidchandler.Handler.Init(app, cfg, db, store)
	adminsection.Handler.Init(app, cfg, db)
	adminmedia.Handler.Init(app, cfg, db, uploadStore)
	admincontact.Handler.Init(app, cfg, db)
	adminsettings.Handler.Init(app, cfg, db)

	return service
}
