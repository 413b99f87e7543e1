package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse sends the uniform {error: message} body with the given status.
func ErrorResponse(c *fiber.Ctx, message string, status int) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// NotFoundResponse sends a 404 with the uniform error body.
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, message, fiber.StatusNotFound)
}

// UnauthorizedResponse sends the uniform authorization-failure response.
func UnauthorizedResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, "Unauthorized", fiber.StatusUnauthorized)
}

// SuccessResponse sends {success: true} for mutations with no body to return.
func SuccessResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Error string `json:"error"`
}

// SuccessResponseStruct defines the schema for bare mutation success responses
type SuccessResponseStruct struct {
	Success bool `json:"success"`
}
