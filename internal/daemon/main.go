// Package daemon wires configuration, database, session storage and the web
// service into a running application.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/storage"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	sessionsqlite "github.com/gofiber/storage/sqlite3/v2"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/config"
	"github.com/brightpage/brightpage/internal/db/dsn"
	"github.com/brightpage/brightpage/internal/db/models"
	"github.com/brightpage/brightpage/internal/web"
	"github.com/brightpage/brightpage/internal/web/session"
)

// sessionTable is the table fiber session storage writes to.
const sessionTable = "sessions"

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
	cfg        *config.Config
}

// Start starts the Daemon's web service and blocks until it stops.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
		return nil
	}

	if err = db.AutoMigrate(
		&models.User{},
		&models.ContentSection{},
		&models.MediaFile{},
		&models.ContactSubmission{},
		&models.SiteSetting{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
		return nil
	}

	seed(cfg, db)

	store := session.NewStore(newSessionStorage(cfg), cfg.Webserver.Session.ExpiryTime)

	return &Daemon{
		webService: web.New(cfg, db, store),
		cfg:        cfg,
	}
}

// openDatabase opens the gorm connection for the configured engine.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.Engine {
	case config.EnginePostgres:
		dialector = gormpostgres.Open(dsn.Create(cfg))
	case config.EngineMySQL:
		dialector = gormmysql.Open(dsn.Create(cfg))
	case config.EngineSQLite, "":
		dialector = sqlite.Open(dsn.Create(cfg))
	default:
		return nil, config.ErrUnknownDBEngine
	}

	return gorm.Open(dialector, &gorm.Config{})
}

// newSessionStorage creates the fiber session storage backend matching the
// configured database engine, so sessions survive restarts alongside the data.
func newSessionStorage(cfg *config.Config) storage.Storage {
	switch cfg.DB.Engine {
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         sessionTable,
		})
	case config.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         sessionTable,
		})
	default:
		return sessionsqlite.New(sessionsqlite.Config{
			Database: dsn.Create(cfg),
			Table:    sessionTable,
		})
	}
}
