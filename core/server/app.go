package server

import (
	"strings"
	"time"

	"social-network/core/apierror"
	"social-network/core/metrics"
	"social-network/core/middleware/auth"
	"social-network/core/middleware/headers"
	"social-network/core/middleware/rayid"
	"social-network/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

// Options configures NewApp.
type Options struct {
	Server Config
	Logger *zap.Logger
	// CacheMaxAge is sent as Cache-Control max-age on GET responses. Zero disables it.
	CacheMaxAge time.Duration
	// CompressionEnabled turns on gzip, deflate and brotli responses.
	CompressionEnabled bool
	// CompressionLevel is one of the fiber compress levels.
	CompressionLevel int
	// Metrics, when set, records request metrics and serves them at MetricsPath.
	Metrics     *metrics.Collector
	MetricsPath string
	// BodyLimit caps request bodies in bytes. Zero keeps fiber's default.
	BodyLimit int
}

// exposedHeaders are readable by browser clients.
var exposedHeaders = []string{"X-Total-Count", "X-Page", "X-Limit", rayid.Header, headers.APIVersion, headers.ProcessTime}

// NewApp builds the Fiber application with the error envelope handler and the
// global middleware stack installed.
func NewApp(opts Options) *fiber.App {
	l := opts.Logger
	if l == nil {
		l = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               opts.Server.Title,
		DisableStartupMessage: true,
		ErrorHandler:          apierror.Handler(l),
		BodyLimit:             opts.BodyLimit,
	})

	app.Use(rayid.New())
	if opts.Metrics != nil {
		app.Use(opts.Metrics.Middleware())
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, opts.Metrics.Handler())
	}
	app.Use(requestlog.New(l))
	app.Use(headers.Version())
	app.Use(headers.Timing())
	app.Use(headers.CacheControl(opts.CacheMaxAge))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(opts.Server.AllowedOrigins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "*",
		AllowCredentials: !allowsAnyOrigin(opts.Server.AllowedOrigins),
		ExposeHeaders:    strings.Join(exposedHeaders, ","),
	}))

	if opts.CompressionEnabled {
		app.Use(compress.New(compress.Config{Level: compress.Level(opts.CompressionLevel)}))
	}

	app.Use(auth.New(auth.Config{ApiKey: opts.Server.ApiKey}))

	return app
}

// fiber panics when credentials are combined with a wildcard origin.
func allowsAnyOrigin(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	for _, o := range origins {
		if strings.TrimSpace(o) == "*" {
			return true
		}
	}
	return false
}
