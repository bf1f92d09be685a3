// Package settings provides the JSON API for the site copy settings,
// including the hero background image managed through its own operation.
package settings

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/festa-familia/festa-admin/internal/config"
	"github.com/festa-familia/festa-admin/internal/db/controller/setting"
	"github.com/festa-familia/festa-admin/internal/web/handler"
	"github.com/festa-familia/festa-admin/internal/web/pagecache"
)

const (
	// Path is the path of the settings endpoints.
	Path = "/settings"

	// HeroImagePath is the path of the hero image endpoint.
	HeroImagePath = Path + "/hero-image"
)

// HeroImageRequest is the body of the hero image update.
type HeroImageRequest struct {
	ImageURL string `json:"imageUrl" validate:"required,url"`
}

// Service is the settings handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	cache     *pagecache.Cache
	validator handler.XValidator
}

// Handler is the settings handler.
var Handler = Service{}

// Init initializes the settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, cache *pagecache.Cache) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg
	s.cache = cache

	// register routes
	app.Get(Path, cache.Middleware(), s.Get)
	app.Put(Path, s.Put)
	app.Put(HeroImagePath, s.PutHeroImage)

	return nil
}

// Get returns the general settings mapping. The hero image key is excluded
// unless the caller overrides the exclusion list through the query string.
func (s *Service) Get(c *fiber.Ctx) error {
	excluding := []string{setting.KeyHeroBackgroundImage}

	if raw := c.Query("exclude"); raw != "" {
		excluding = strings.Split(raw, ",")
	}

	values, err := setting.GetAll(s.db, excluding...)
	if err != nil {
		log.Error().Err(err).Msg("failed to load settings")

		return c.Status(fiber.StatusInternalServerError).JSON(handler.GlobalErrorHandlerResp{
			Success: false,
			Message: "failed to load settings",
		})
	}

	return c.JSON(values)
}

// Put applies a partial settings mapping as one all-or-nothing write.
func (s *Service) Put(c *fiber.Ctx) error {
	values := map[string]string{}
	if err := c.BodyParser(&values); err != nil {
		log.Error().Err(err).Msg("failed to parse settings body")

		return c.Status(fiber.StatusBadRequest).JSON(handler.GlobalErrorHandlerResp{
			Success: false,
			Message: "invalid request body",
		})
	}

	if err := setting.SetMany(s.db, values); err != nil {
		if errors.Is(err, setting.ErrSettingKeyEmpty) {
			return c.Status(fiber.StatusBadRequest).JSON(handler.ValidationErrorsResp{
				Success: false,
				Errors: []handler.ErrorResponse{
					{Field: "key", Tag: "required"},
				},
			})
		}

		log.Error().Err(err).Msg("failed to save settings")

		return c.Status(fiber.StatusInternalServerError).JSON(handler.GlobalErrorHandlerResp{
			Success: false,
			Message: "failed to save settings",
		})
	}

	s.cache.Invalidate()

	log.Info().Int("keys", len(values)).Msg("settings saved")

	return c.JSON(handler.GlobalErrorHandlerResp{
		Success: true,
		Message: "settings saved",
	})
}

// PutHeroImage updates the hero background image URL.
func (s *Service) PutHeroImage(c *fiber.Ctx) error {
	req := new(HeroImageRequest)
	if err := c.BodyParser(req); err != nil {
		log.Error().Err(err).Msg("failed to parse hero image body")

		return c.Status(fiber.StatusBadRequest).JSON(handler.GlobalErrorHandlerResp{
			Success: false,
			Message: "invalid request body",
		})
	}

	if validationErrors := s.validator.Validate(req); len(validationErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(handler.ValidationErrorsResp{
			Success: false,
			Errors:  validationErrors,
		})
	}

	saved, err := setting.Set(s.db, setting.KeyHeroBackgroundImage, req.ImageURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to save hero image setting")

		return c.Status(fiber.StatusInternalServerError).JSON(handler.GlobalErrorHandlerResp{
			Success: false,
			Message: "failed to save hero image",
		})
	}

	s.cache.Invalidate()

	log.Info().Str("imageUrl", saved.Value).Msg("hero image saved")

	return c.JSON(fiber.Map{
		"key":   saved.Key,
		"value": saved.Value,
	})
}
