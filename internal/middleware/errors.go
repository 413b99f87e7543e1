package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gobodhi/tour-cms/internal/types"
)

// ErrorHandler maps every error to the uniform {error: message} body
// with its status code. Unrecognized errors become a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var custom *types.CustomError
	var fiberErr *fiber.Error
	if errors.As(err, &custom) {
		code = custom.Code
		message = custom.Message
	} else if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}
