// Package daemon wires configuration, storage, sessions and the web
// service into the running application.
package daemon

import (
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/festa-familia/festa-admin/internal/config"
	"github.com/festa-familia/festa-admin/internal/db/dsn"
	"github.com/festa-familia/festa-admin/internal/db/models"
	"github.com/festa-familia/festa-admin/internal/logger"
	"github.com/festa-familia/festa-admin/internal/media"
	"github.com/festa-familia/festa-admin/internal/web"
	"github.com/festa-familia/festa-admin/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService web.Service
	addr       string
}

// Start starts the Daemon's web service.
func (d *Daemon) Start() error {
	return d.webService.Start(d.addr)
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	if err := logger.Init(cfg.Log); err != nil {
		panic(err)
	}

	db, err := gorm.Open(openDialector(cfg), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.User{},
		&models.Setting{},
		&models.Photo{},
		&models.RsvpResponse{},
	); err != nil {
		panic("failed to migrate database")
	}

	seed(cfg, db)

	// Initialize fiber session store matching the configured engine.
	session.Init(sessionStorage(cfg))

	// Media host client, injected into the upload handler.
	mediaClient := media.New(cfg.Media)

	return &Daemon{
		webService: *web.New(cfg, db, mediaClient),
		addr:       web.Addr(cfg),
	}
}

// openDialector selects the gorm driver for the configured engine.
// sqlite is the default and needs no external server.
func openDialector(cfg *config.Config) gorm.Dialector {
	switch cfg.DB.GormEngine {
	case "mysql":
		return gormmysql.Open(dsn.Create(cfg))
	case "postgres":
		return gormpostgres.Open(dsn.CreatePostgres(cfg))
	default:
		return sqlite.Open(dsn.CreateSQLite(cfg))
	}
}

// sessionStorage returns the session backend for the configured engine.
// The sqlite engine keeps sessions in memory, which fits the
// single-administrator usage.
func sessionStorage(cfg *config.Config) fiber.Storage {
	switch cfg.DB.GormEngine {
	case "mysql":
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         "sessions",
		})
	case "postgres":
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.CreatePostgresURI(cfg),
			Table:         "sessions",
		})
	default:
		return nil
	}
}
