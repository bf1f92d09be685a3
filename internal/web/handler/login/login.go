// Package login provides the admin login endpoint.
//
// The site runs with a single shared credential seeded at first start,
// there are no roles and no other authentication methods.
package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/festa-familia/festa-admin/internal/config"
	"github.com/festa-familia/festa-admin/internal/db/models"
	"github.com/festa-familia/festa-admin/internal/web/handler"
	"github.com/festa-familia/festa-admin/internal/web/session"
)

const (
	// Path is the path of the login endpoint.
	Path = "/login"

	// CookieName is the name of the session cookie.
	CookieName = "session"
)

// Request is the login request body.
type Request struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
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

// Post handles the login submission.
func (s *Service) Post(c *fiber.Ctx) error {
	req := new(Request)

	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(handler.GlobalErrorHandlerResp{
			Success: false,
			Message: ErrInvalidFormData.Error(),
		})
	}

	// find user in db
	var dbUser models.User
	result := s.db.Where("username = ?", req.Username).First(&dbUser)
	if result.Error != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(handler.GlobalErrorHandlerResp{
			Success: false,
			Message: ErrInvalidCredentials.Error(),
		})
	}

	// check if user is active
	if !dbUser.Active {
		return c.Status(fiber.StatusUnauthorized).JSON(handler.GlobalErrorHandlerResp{
			Success: false,
			Message: ErrInvalidCredentials.Error(),
		})
	}

	// check if password matches
	if !dbUser.VerifyPassword(req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(handler.GlobalErrorHandlerResp{
			Success: false,
			Message: ErrInvalidCredentials.Error(),
		})
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")

		return c.Status(fiber.StatusInternalServerError).JSON(handler.GlobalErrorHandlerResp{
			Success: false,
			Message: ErrInternalServerError.Error(),
		})
	}

	userSession := &session.Data{
		User: dbUser,
	}

	if err = userSession.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")

		return c.Status(fiber.StatusInternalServerError).JSON(handler.GlobalErrorHandlerResp{
			Success: false,
			Message: ErrInternalServerError.Error(),
		})
	}

	// set login cookie
	cookieSettings := &fiber.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Domain:   s.cfg.Webserver.Domain,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}

	c.Cookie(cookieSettings)

	log.Info().Str("username", dbUser.Username).Msg("admin logged in")

	return c.JSON(handler.GlobalErrorHandlerResp{
		Success: true,
		Message: "logged in",
	})
}
