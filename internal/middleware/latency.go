package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

// SimulatedLatency delays each request by d before passing it on, so clients
// can exercise their loading states. The wait ends early with 503 when the
// request context is done. A non-positive d disables the delay.
func SimulatedLatency(d time.Duration) fiber.Handler {
	return func(c fiber.Ctx) error {
		if d <= 0 {
			return c.Next()
		}

		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
			return c.Next()
		case <-c.Context().Done():
			return fiber.NewError(fiber.StatusServiceUnavailable, "request cancelled")
		}
	}
}

// NoStore marks responses as uncacheable. Lookup answers and transcripts are
// per-request and per-session.
func NoStore(c fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Next()
}
