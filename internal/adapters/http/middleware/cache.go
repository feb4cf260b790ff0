package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CacheControl sets cache headers for successful GET responses
func CacheControl(maxAge time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if c.Method() == fiber.MethodGet && c.Response().StatusCode() == fiber.StatusOK {
			c.Set("Cache-Control", "public, max-age="+strconv.Itoa(int(maxAge.Seconds())))
		}

		return err
	}
}

// LandingCache returns cache middleware for public landing content.
// Short TTL: the in-process cache already keeps reads cheap, so this
// only shields the server from bursts while staying close to fresh
// after an admin edit.
func LandingCache() fiber.Handler {
	return CacheControl(1 * time.Minute)
}

// LookupCache returns cache middleware for static lookup data (1 hour)
func LookupCache() fiber.Handler {
	return CacheControl(1 * time.Hour)
}
