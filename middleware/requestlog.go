package middleware

import (
	"time"

	"aircnc-booking/logger"
	"aircnc-booking/types"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger records method, path, status and latency for every request
// through the async logger.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		asyncLogger.Log(types.LogEntry{
			Method:     c.Method(),
			Path:       c.OriginalURL(),
			IP:         c.IP(),
			StatusCode: c.Response().StatusCode(),
			LatencyMS:  time.Since(start).Milliseconds(),
			CreatedAt:  start,
		})

		return err
	}
}
