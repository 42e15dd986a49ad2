package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// HealthHandler exposes the version, readiness, and liveness endpoints.
type HealthHandler struct {
	version string
	db      *gorm.DB
	redis   *redis.Client
}

func NewHealthHandler(version string, db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{version: version, db: db, redis: redisClient}
}

// Version returns the service version string.
func (h *HealthHandler) Version(c *fiber.Ctx) error {
	return c.SendString(h.version)
}

// Ready reports whether the server is accepting requests.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	return c.SendString("ok")
}

// Healthy pings the backing stores.
func (h *HealthHandler) Healthy(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy", "ledger": err.Error(),
			})
		}
	}
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy", "database": err.Error(),
			})
		}
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
