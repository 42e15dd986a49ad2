// Package routes defines the API routing configuration.
package routes

import (
	"time"

	"ledgerwriter/internal/handlers"
	"ledgerwriter/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// SetupRoutes registers all endpoints on the app. POST /transactions is
// rate limited per client IP and requires a verified bearer token.
func SetupRoutes(app *fiber.App, authMW *middleware.AuthMiddleware, txHandler *handlers.TransactionHandler, health *handlers.HealthHandler) {
	app.Get("/version", health.Version)
	app.Get("/ready", health.Ready)
	app.Get("/healthy", health.Healthy)

	app.Post("/transactions",
		limiter.New(limiter.Config{
			Max:        60,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).SendString("too many requests")
			},
		}),
		authMW.Handler,
		txHandler.Submit,
	)
}
