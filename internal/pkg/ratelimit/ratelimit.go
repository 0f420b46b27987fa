package ratelimit

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/campfirehq/campfire/internal/pkg/cache"
	"github.com/gofiber/fiber/v2"
)

// New returns a Fiber middleware that throttles requests per client IP with
// a shared Redis counter, so the limit holds across service instances. When
// Redis is unreachable the middleware fails open: dropping legitimate
// payment deliveries is worse than letting a burst through.
func New(prefix string, limit int64, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := fmt.Sprintf("ratelimit:%s:%s", prefix, c.IP())
		ctx := context.Background()

		rdb := cache.GetClient()
		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("ratelimit: counter unavailable, allowing request: %v", err)
			return c.Next()
		}
		if count == 1 {
			if err := rdb.Expire(ctx, key, window).Err(); err != nil {
				log.Printf("ratelimit: failed to set window on %s: %v", key, err)
			}
		}

		if count > limit {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded",
			})
		}
		return c.Next()
	}
}
