// Package upload provides the endpoint delegating image uploads to the
// external media host.
package upload

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/festa-familia/festa-admin/internal/config"
	"github.com/festa-familia/festa-admin/internal/media"
	"github.com/festa-familia/festa-admin/internal/web/handler"
)

const (
	// Path is the path of the upload endpoint.
	Path = "/upload"

	// FileField is the multipart form field carrying the file.
	FileField = "file"
)

// Service is the upload handler service.
type Service struct {
	handler.Service
	cfg    *config.Config
	client *media.Client
}

// Handler is the upload handler.
var Handler = Service{}

// Init initializes the upload handler with the media client.
func (s *Service) Init(app *fiber.App, cfg *config.Config, client *media.Client) error {
	if app == nil || cfg == nil || client == nil {
		return errors.New("app, cfg or media client is nil")
	}

	s.cfg = cfg
	s.client = client

	// register routes
	app.Post(Path, s.Post)

	return nil
}

// Post forwards the uploaded file to the media host and returns the
// stable public URL. Files over the size limit are rejected before any
// network call.
func (s *Service) Post(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile(FileField)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(handler.GlobalErrorHandlerResp{
			Success: false,
			Message: "no file uploaded",
		})
	}

	// size gate before the file is even opened
	if fileHeader.Size > media.MaxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(handler.GlobalErrorHandlerResp{
			Success: false,
			Message: media.ErrFileTooLarge.Error(),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Msg("failed to open uploaded file")

		return c.Status(fiber.StatusInternalServerError).JSON(handler.GlobalErrorHandlerResp{
			Success: false,
			Message: "failed to read uploaded file",
		})
	}
	defer func() {
		_ = file.Close()
	}()

	url, err := s.client.Upload(c.Context(), fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrFileTooLarge), errors.Is(err, media.ErrEmptyFile):
			return c.Status(fiber.StatusBadRequest).JSON(handler.GlobalErrorHandlerResp{
				Success: false,
				Message: err.Error(),
			})
		default:
			log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("media upload failed")

			return c.Status(fiber.StatusInternalServerError).JSON(handler.GlobalErrorHandlerResp{
				Success: false,
				Message: "failed to upload image",
			})
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"url":     url,
	})
}
