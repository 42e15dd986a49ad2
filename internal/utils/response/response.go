// Package response holds the plain-text response helpers. Bodies are fixed
// strings so automated callers can match rejection causes.
package response

import (
	"github.com/gofiber/fiber/v2"
)

func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).SendString(message)
}

func Unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).SendString("not authorized")
}

func ServerError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).SendString("internal error")
}
