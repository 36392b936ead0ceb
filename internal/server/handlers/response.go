package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kosdesign/game-center/internal/apperr"
)

// Envelope is the wire shape of every response.
type Envelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

func ok(c *fiber.Ctx, status int, data interface{}, message string) error {
	return c.Status(status).JSON(Envelope{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func fail(c *fiber.Ctx, status int, label, message string) error {
	return c.Status(status).JSON(Envelope{
		Success:   false,
		Error:     label,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// failErr maps a typed domain error onto the envelope.
func failErr(c *fiber.Ctx, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return fail(c, fiber.StatusBadRequest, "Validation Error", err.Error())
	case apperr.KindUnauthorized:
		return fail(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
	case apperr.KindForbidden:
		return fail(c, fiber.StatusForbidden, "Forbidden", err.Error())
	case apperr.KindNotFound:
		return fail(c, fiber.StatusNotFound, "Not Found", err.Error())
	case apperr.KindConflict:
		return fail(c, fiber.StatusConflict, "Conflict", err.Error())
	default:
		return fail(c, fiber.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred")
	}
}
