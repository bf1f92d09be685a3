// Package rsvp provides the public RSVP submission endpoint.
package rsvp

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/festa-familia/festa-admin/internal/config"
	rsvpcontroller "github.com/festa-familia/festa-admin/internal/db/controller/rsvp"
	"github.com/festa-familia/festa-admin/internal/web/handler"
)

const (
	// Path is the path of the RSVP endpoint.
	Path = "/rsvp"

	attendingYes = "yes"
)

// SubmitRequest is the body of an RSVP submission.
type SubmitRequest struct {
	Name      string `json:"name"      validate:"required,min=2"`
	Attending string `json:"attending" validate:"required,oneof=yes no"`
}

// SubmitResponse echoes the normalized pair back for the confirmation message.
type SubmitResponse struct {
	Success bool       `json:"success"`
	Data    SubmitData `json:"data"`
}

// SubmitData is the normalized name and attendance flag.
type SubmitData struct {
	Name      string `json:"name"`
	Attending bool   `json:"attending"`
}

// Service is the RSVP handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator handler.XValidator
}

// Handler is the RSVP handler.
var Handler = Service{}

// Init initializes the RSVP handler.
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

// Post validates and records a guest attendance response.
// Validation runs before any persistence attempt; a failed name or choice
// never reaches the database.
func (s *Service) Post(c *fiber.Ctx) error {
	req := new(SubmitRequest)
	if err := c.BodyParser(req); err != nil {
		log.Error().Err(err).Msg("failed to parse rsvp body")

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

	attending := req.Attending == attendingYes

	saved, err := rsvpcontroller.Create(s.db, req.Name, attending)
	if err != nil {
		log.Error().Err(err).Msg("failed to save rsvp response")

		return c.Status(fiber.StatusInternalServerError).JSON(handler.GlobalErrorHandlerResp{
			Success: false,
			Message: "could not save your response, please try again",
		})
	}

	log.Info().Str("name", saved.Name).Bool("attending", saved.Attending).Msg("rsvp recorded")

	return c.JSON(SubmitResponse{
		Success: true,
		Data: SubmitData{
			Name:      saved.Name,
			Attending: saved.Attending,
		},
	})
}
