package requestlog

import (
	"time"

	"social-network/core/apierror"
	"social-network/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New logs every request with its RayID, status and duration.
func New(l *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		log := logger.WithRayID(l, c)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = apierror.StatusOf(err)
		}
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
		}
		if status >= fiber.StatusInternalServerError {
			log.Error("Request failed", append(fields, zap.Error(err))...)
		} else {
			log.Info("Request completed", fields...)
		}
		return err
	}
}
