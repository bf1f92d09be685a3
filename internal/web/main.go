// Package web implements the festa-admin web service.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/festa-familia/festa-admin/internal/config"
	fiberlogger "github.com/festa-familia/festa-admin/internal/logger/adapter/fiber"
	"github.com/festa-familia/festa-admin/internal/media"
	"github.com/festa-familia/festa-admin/internal/web/handler/login"
	"github.com/festa-familia/festa-admin/internal/web/handler/logout"
	"github.com/festa-familia/festa-admin/internal/web/handler/photos"
	"github.com/festa-familia/festa-admin/internal/web/handler/rsvp"
	"github.com/festa-familia/festa-admin/internal/web/handler/settings"
	"github.com/festa-familia/festa-admin/internal/web/handler/upload"
	"github.com/festa-familia/festa-admin/internal/web/pagecache"
)

const (
	// CheckAlivePath answers load balancer health checks.
	CheckAlivePath = "/checkalive"

	// bodyLimit leaves headroom above the media upload cap so oversized
	// files reach the handler and get a deterministic 400 instead of a 413.
	bodyLimit = media.MaxUploadSize + 1<<20
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	cache        *pagecache.Cache
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go s.WaitShutdown()

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	// Wait interrupt or shutdown request
	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
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
func New(cfg *config.Config, db *gorm.DB, mediaClient *media.Client) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "festa-admin",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			BodyLimit:      bodyLimit,
		},
	)

	// panic recovery, unless disabled for debugging
	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	// access logging
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// cookie encryption for the session cookie
	if cfg.Webserver.CookieEncryptionKey != "" {
		app.Use(encryptcookie.New(encryptcookie.Config{
			Key: cfg.Webserver.CookieEncryptionKey,
		}))
	}

	// admin auth middleware
	app.Use(AuthMiddleware)

	// public page cache signal
	cache := pagecache.New(cfg.Webserver.CacheEnabled)

	// init web service
	service := &Service{
		cfg:   cfg,
		App:   app,
		db:    db,
		cache: cache,
	}
	service.alive.Store(true)

	// init handlers (they register their own routes)
	mustInit(login.Handler.Init(app, cfg, db))
	mustInit(logout.Handler.Init(app, cfg, db))
	mustInit(settings.Handler.Init(app, cfg, db, cache))
	mustInit(photos.Handler.Init(app, cfg, db, cache))
	mustInit(rsvp.Handler.Init(app, cfg, db))
	mustInit(upload.Handler.Init(app, cfg, mediaClient))

	// health check for load balancers
	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})

	return service
}

// Addr builds the listen address from the configuration.
func Addr(cfg *config.Config) string {
	return fmt.Sprintf(":%d", cfg.Webserver.Port)
}

func mustInit(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize web handler")
	}
}
