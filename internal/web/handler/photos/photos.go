// Package photos provides the JSON API for the gallery photo records.
package photos

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/festa-familia/festa-admin/internal/config"
	"github.com/festa-familia/festa-admin/internal/db/controller/photo"
	"github.com/festa-familia/festa-admin/internal/web/handler"
	"github.com/festa-familia/festa-admin/internal/web/pagecache"
)

const (
	// Path is the path of the photo collection endpoints.
	Path = "/photos"
)

// CreateRequest is the body of a photo creation.
type CreateRequest struct {
	Src         string `json:"src"         validate:"required,url"`
	Alt         string `json:"alt"         validate:"required,min=1"`
	Description string `json:"description"`
	Hint        string `json:"hint"`
	IsVisible   *bool  `json:"isVisible"`
}

// UpdateRequest is the merge-patch body of a photo update. Only fields
// present in the request are validated and overwritten.
type UpdateRequest struct {
	Src         *string `json:"src"         validate:"omitempty,url"`
	Alt         *string `json:"alt"         validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Hint        *string `json:"hint"`
	IsVisible   *bool   `json:"isVisible"`
}

// Service is the photos handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	cache     *pagecache.Cache
	validator handler.XValidator
}

// Handler is the photos handler.
var Handler = Service{}

// Init initializes the photos handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, cache *pagecache.Cache) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg
	s.cache = cache

	// register routes
	app.Get(Path, cache.Middleware(), s.List)
	app.Post(Path, s.Post)
	app.Put(Path+"/:id", s.Put)
	app.Delete(Path+"/:id", s.Delete)

	return nil
}

// List returns every photo in ascending creation order, hidden ones
// included. The public renderer filters on isVisible itself.
func (s *Service) List(c *fiber.Ctx) error {
	photos, err := photo.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list photos")

		return c.Status(fiber.StatusInternalServerError).JSON(handler.GlobalErrorHandlerResp{
			Success: false,
			Message: "failed to list photos",
		})
	}

	return c.JSON(photos)
}

// Post creates a new photo record.
func (s *Service) Post(c *fiber.Ctx) error {
	req := new(CreateRequest)
	if err := c.BodyParser(req); err != nil {
		log.Error().Err(err).Msg("failed to parse photo body")

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

	created, err := photo.Create(s.db, photo.CreateInput{
		Src:         req.Src,
		Alt:         req.Alt,
		Description: req.Description,
		Hint:        req.Hint,
		IsVisible:   req.IsVisible,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create photo")

		return c.Status(fiber.StatusInternalServerError).JSON(handler.GlobalErrorHandlerResp{
			Success: false,
			Message: "failed to create photo",
		})
	}

	s.cache.Invalidate()

	log.Info().Str("id", created.ID).Str("src", created.Src).Msg("photo created")

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Put merges the supplied fields into an existing photo.
func (s *Service) Put(c *fiber.Ctx) error {
	id := c.Params("id")

	req := new(UpdateRequest)
	if err := c.BodyParser(req); err != nil {
		log.Error().Err(err).Msg("failed to parse photo patch body")

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

	updated, err := photo.Update(s.db, id, photo.UpdateInput{
		Src:         req.Src,
		Alt:         req.Alt,
		Description: req.Description,
		Hint:        req.Hint,
		IsVisible:   req.IsVisible,
	})
	if err != nil {
		if errors.Is(err, photo.ErrPhotoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(handler.GlobalErrorHandlerResp{
				Success: false,
				Message: "photo not found",
			})
		}

		log.Error().Err(err).Str("id", id).Msg("failed to update photo")

		return c.Status(fiber.StatusInternalServerError).JSON(handler.GlobalErrorHandlerResp{
			Success: false,
			Message: "failed to update photo",
		})
	}

	s.cache.Invalidate()

	return c.JSON(updated)
}

// Delete removes a photo. A repeated delete on the same id reports
// not found, it never succeeds silently.
func (s *Service) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := photo.Delete(s.db, id); err != nil {
		if errors.Is(err, photo.ErrPhotoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(handler.GlobalErrorHandlerResp{
				Success: false,
				Message: "photo not found",
			})
		}

		log.Error().Err(err).Str("id", id).Msg("failed to delete photo")

		return c.Status(fiber.StatusInternalServerError).JSON(handler.GlobalErrorHandlerResp{
			Success: false,
			Message: "failed to delete photo",
		})
	}

	s.cache.Invalidate()

	log.Info().Str("id", id).Msg("photo deleted")

	return c.JSON(handler.GlobalErrorHandlerResp{
		Success: true,
		Message: "photo deleted",
	})
}
