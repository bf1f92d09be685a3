// Package logout provides the admin logout endpoint.
package logout

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/festa-familia/festa-admin/internal/config"
	"github.com/festa-familia/festa-admin/internal/web/handler"
	"github.com/festa-familia/festa-admin/internal/web/handler/login"
	"github.com/festa-familia/festa-admin/internal/web/session"
)

const (
	// Path is the path of the logout endpoint.
	Path = "/logout"
)

// Service is the logout handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the logout handler.
var Handler = Service{}

// Init initializes the logout handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	// register routes
	app.Post(Path, s.Post)

	return nil
}

// Post clears the admin session.
func (s *Service) Post(c *fiber.Ctx) error {
	if sessionID := c.Cookies(login.CookieName); sessionID != "" {
		_ = session.Delete(sessionID)
	}

	c.ClearCookie(login.CookieName)

	return c.JSON(handler.GlobalErrorHandlerResp{
		Success: true,
		Message: "logged out",
	})
}
