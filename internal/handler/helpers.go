package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/tritiya141-ux/project-ai-interview-system/internal/middleware"
	"github.com/tritiya141-ux/project-ai-interview-system/internal/service"
	"github.com/tritiya141-ux/project-ai-interview-system/internal/utils"
)

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

// validationMessage flattens validator errors into a short client message.
func validationMessage(err error, fallback string) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fallback
	}
	return "invalid field: " + validationErrors[0].Field()
}

// sendServiceError maps store-level sentinel errors onto HTTP responses. Not
// found and invalid input never reach here with a partially mutated store.
func sendServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrPositionNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrQuestionNotFound):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmptyInput),
		errors.Is(err, service.ErrInvalidStage),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidReorder):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		return utils.SendError(c, fiber.StatusInternalServerError, "internal error")
	}
}
