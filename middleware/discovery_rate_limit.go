package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"truleadai/config"
	"truleadai/models"
	"truleadai/utils"
)

// DiscoveryRateLimiter throttles discovery requests per user. This is
// presentation pacing on top of the daily quota, not part of it: the quota
// still bounds the total leads per day regardless of request rate.
func DiscoveryRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        config.AppConfig.RateLimitDiscovery,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			user := c.Locals("user").(*models.User)
			return "rl:discover:" + user.ID
		},
		LimitReached: func(c *fiber.Ctx) error {
			user := c.Locals("user").(*models.User)
			utils.LogEvent("rate_limit_hit", map[string]interface{}{
				"user_id":  user.ID,
				"endpoint": c.Path(),
				"ip":       c.IP(),
			})

			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       "Too many discovery requests. Please wait before discovering again.",
				"retry_after": "1 minute",
			})
		},
		Storage: rateLimitStorage(),
	})
}

// rateLimitStorage backs the limiter with Redis when available so limits
// survive restarts; fiber falls back to its in-memory storage on nil.
func rateLimitStorage() fiber.Storage {
	if config.AppConfig.Redis.Enabled {
		return NewFiberRedisStorage(config.AppConfig.Redis)
	}
	return nil
}
