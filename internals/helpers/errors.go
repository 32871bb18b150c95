package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"youthcentre_backend/internals/logger"
)

// FromError turns any error coming out of a service into the JSON envelope:
//   - *fiber.Error        → its own status/message (403, 404, 422, ...)
//   - FieldErrors         → 422 with per-field messages
//   - gorm not found      → 404
//   - postgres errors     → mapped by MapPGError
//   - anything else       → 500 with the error message
func FromError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}

	var ve FieldErrors
	if errors.As(err, &ve) {
		return JsonValidationError(c, ve)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return JsonError(c, fiber.StatusNotFound, "resource not found")
	}

	if status, msg, ok := MapPGError(err); ok {
		return JsonError(c, status, msg)
	}

	logger.Named("http").Errorw("unhandled error", "path", c.Path(), "method", c.Method(), "err", err)
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}

// ErrorHandler is installed as fiber.Config.ErrorHandler so errors returned
// by middlewares end up in the same envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromError(c, err)
}

// Shorthands used by services.
func Forbidden(msg string) error { return fiber.NewError(fiber.StatusForbidden, msg) }

func NotFound(msg string) error { return fiber.NewError(fiber.StatusNotFound, msg) }

func Unprocessable(msg string) error { return fiber.NewError(fiber.StatusUnprocessableEntity, msg) }
