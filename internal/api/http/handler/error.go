package handler

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"

	"github.com/MTomala-IT/storeapi/internal/logger"
	"github.com/MTomala-IT/storeapi/internal/model"
)

const internalErrorDetail = "Internal server error"

// errBadBody is returned when a request body cannot be decoded.
var errBadBody = fiber.NewError(fiber.StatusUnprocessableEntity, "Invalid request body")

// NewErrorHandler returns the application error handler. Every error leaving a
// handler or middleware is turned into a {"detail": ...} response here.
func NewErrorHandler(lg *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, detail := resolveError(err)

		if status == fiber.StatusUnauthorized {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		}
		if status >= fiber.StatusInternalServerError {
			lg.Ctx(c.UserContext()).Error("HTTP: request failed",
				"method", c.Method(),
				"path", c.Path(),
				"error", err.Error())
		}

		return c.Status(status).JSON(fiber.Map{"detail": detail})
	}
}

func resolveError(err error) (int, string) {
	var (
		validationErrs validation.Errors
		fiberErr       *fiber.Error
	)

	switch {
	case errors.As(err, &validationErrs):
		return fiber.StatusUnprocessableEntity, validationErrs.Error()
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	case errors.Is(err, model.ErrDuplicateUser):
		return fiber.StatusBadRequest, detailOf(err, model.ErrDuplicateUser)
	case errors.Is(err, model.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, detailOf(err, model.ErrInvalidCredentials)
	case errors.Is(err, model.ErrUnconfirmedAccount):
		return fiber.StatusUnauthorized, detailOf(err, model.ErrUnconfirmedAccount)
	case errors.Is(err, model.ErrInvalidToken):
		return fiber.StatusUnauthorized, detailOf(err, model.ErrInvalidToken)
	case errors.Is(err, model.ErrExpiredToken):
		return fiber.StatusUnauthorized, detailOf(err, model.ErrExpiredToken)
	case errors.Is(err, model.ErrPostNotFound):
		return fiber.StatusNotFound, detailOf(err, model.ErrPostNotFound)
	case errors.Is(err, model.ErrNotFound):
		return fiber.StatusNotFound, "Not found"
	default:
		return fiber.StatusInternalServerError, internalErrorDetail
	}
}

// detailOf returns the message of a DetailError in the chain, otherwise the kind's own text.
// Wrapping context added by lower layers is never exposed to clients.
func detailOf(err, kind error) string {
	var detailErr *model.DetailError
	if errors.As(err, &detailErr) {
		return detailErr.Detail
	}
	return kind.Error()
}
