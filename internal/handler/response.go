package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/pulsar1812/code-hunt/internal/apperror"
	"github.com/pulsar1812/code-hunt/internal/middleware"
)

// respondError maps the error taxonomy onto HTTP statuses. Anything outside
// the taxonomy is a 500 with a generic message.
func respondError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, apperror.ErrValidation):
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", err.Error())
	case errors.Is(err, apperror.ErrStoreUnavailable):
		return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Persistence layer unavailable")
	default:
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
