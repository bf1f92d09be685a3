package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/festa-familia/festa-admin/internal/web/handler"
	"github.com/festa-familia/festa-admin/internal/web/handler/login"
	"github.com/festa-familia/festa-admin/internal/web/handler/photos"
	"github.com/festa-familia/festa-admin/internal/web/handler/settings"
	"github.com/festa-familia/festa-admin/internal/web/handler/upload"
	"github.com/festa-familia/festa-admin/internal/web/session"
)

// AuthMiddleware is a Fiber middleware guarding the admin operations.
// Public reads, RSVP submissions and the login flow pass through,
// everything that mutates site content requires a valid session.
func AuthMiddleware(c *fiber.Ctx) error {
	if !requiresAuth(c) {
		return c.Next()
	}

	// get session cookie
	loginCookie := c.Cookies(login.CookieName)

	if loginCookie == "" {
		return unauthorized(c)
	}

	// check session validity
	sessData := new(session.Data)
	_ = sessData.Read(loginCookie)

	if sessData.User.ID == 0 {
		return unauthorized(c)
	}

	return c.Next()
}

// requiresAuth reports whether the request targets an admin operation.
// GET on settings and photos stays public, the renderer reads those.
func requiresAuth(c *fiber.Ctx) bool {
	path := strings.ToLower(c.Path())

	if strings.HasPrefix(path, upload.Path) {
		return true
	}

	if strings.HasPrefix(path, settings.Path) || strings.HasPrefix(path, photos.Path) {
		return c.Method() != fiber.MethodGet
	}

	return false
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(handler.GlobalErrorHandlerResp{
		Success: false,
		Message: "authentication required",
	})
}
