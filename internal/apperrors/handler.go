package apperrors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every error escaping a handler as a {"detail": ...}
// body: structured validation errors carry their location-tagged object,
// everything else the bare message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(fiber.Map{"detail": appErr.Body()})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"detail": fiberErr.Message})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal Server Error"})
}
