package headers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Header names.
const (
	APIVersion  = "X-API-Version"
	ProcessTime = "X-Process-Time"
)

// DefaultAPIVersion is echoed when the client sends no X-API-Version.
const DefaultAPIVersion = "1.0"

// VersionLocalKey holds the requested API version in Fiber locals.
const VersionLocalKey = "api_version"

// Version echoes the requested X-API-Version back on the response.
func Version() fiber.Handler {
	return func(c *fiber.Ctx) error {
		v := c.Get(APIVersion, DefaultAPIVersion)
		c.Locals(VersionLocalKey, v)
		err := c.Next()
		c.Set(APIVersion, v)
		return err
	}
}

// Timing reports the handler duration in seconds as X-Process-Time.
func Timing() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		c.Set(ProcessTime, strconv.FormatFloat(time.Since(start).Seconds(), 'f', -1, 64))
		return err
	}
}

// CacheControl sets Cache-Control: max-age on GET responses. A zero maxAge
// disables the header.
func CacheControl(maxAge time.Duration) fiber.Handler {
	value := fmt.Sprintf("max-age=%d", int(maxAge.Seconds()))
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if maxAge > 0 && c.Method() == fiber.MethodGet {
			c.Set(fiber.HeaderCacheControl, value)
		}
		return err
	}
}
