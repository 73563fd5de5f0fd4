package server_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"social-network/core/apierror"
	"social-network/core/metrics"
	"social-network/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(apiKey string) *fiber.App {
	app := server.NewApp(server.Options{
		Server: server.Config{
			Title:          "Social Network API",
			ApiKey:         apiKey,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		CacheMaxAge:        5 * time.Minute,
		CompressionEnabled: true,
		Metrics:            metrics.NewCollector(),
	})
	api := app.Group("/api/v1")
	api.Get("/users", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": strings.Repeat("user ", 400)})
	})
	api.Post("/users", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	api.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("kaput")
	})
	return app
}

func TestNewApp_Headers(t *testing.T) {
	app := newTestApp("")

	req := httptest.NewRequest("GET", "/api/v1/users", nil)
	req.Header.Set("X-API-Version", "2.0")
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Accept-Encoding", "gzip")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "2.0", resp.Header.Get("X-API-Version"))
	assert.NotEmpty(t, resp.Header.Get("X-Process-Time"))
	assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))
	assert.Equal(t, "max-age=300", resp.Header.Get("Cache-Control"))
	assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, resp.Header.Get("Access-Control-Expose-Headers"), "X-Total-Count")
}

func TestNewApp_Errors(t *testing.T) {
	app := newTestApp("")

	t.Run("UnknownPath", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/nope", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		var env apierror.Envelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		assert.Equal(t, apierror.CodePathNotFound, env.Error.Code)
	})

	t.Run("Unhandled", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/boom", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)

		var env apierror.Envelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		assert.Equal(t, apierror.CodeServerError, env.Error.Code)
	})
}

func TestNewApp_Auth(t *testing.T) {
	app := newTestApp("secret")

	resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/users", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	req := httptest.NewRequest("POST", "/api/v1/users", nil)
	req.Header.Set("X-API-Key", "secret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/users", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestNewApp_Metrics(t *testing.T) {
	app := newTestApp("")

	_, err := app.Test(httptest.NewRequest("GET", "/api/v1/users", nil))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/api/v1/users",status="200"} 1`)
}
