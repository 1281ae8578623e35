package handlers

import (
	"errors"
	"fmt"
	"log"

	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// writeServiceError is the single place a service error becomes an HTTP
// status. Typed errors map to 4xx; everything else is logged and hidden
// behind a generic 500 body so internals never leak to clients.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrAlreadyExists), errors.Is(err, services.ErrAlreadyReviewed):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": err.Error(),
		})
	case errors.Is(err, services.ErrForbidden), errors.Is(err, services.ErrWrongPassword):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"msg": err.Error(),
		})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"msg": "Not found",
		})
	default:
		log.Printf("Unexpected error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "An unknown error",
		})
	}
}

// writeValidationError renders schema validation failures as a 400 with
// per-field reasons.
func writeValidationError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"error":   err.Error(),
	})
}

// writeBodyParseError renders malformed request bodies as a 400.
func writeBodyParseError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}
