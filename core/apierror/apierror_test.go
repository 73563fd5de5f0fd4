package apierror_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"social-network/core/apierror"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apierror.Handler(zap.NewNop())})
	app.Get("/api/v1/things/:id", func(c *fiber.Ctx) error {
		switch c.Params("id") {
		case "bad":
			return apierror.InvalidID("id", "bad")
		case "missing":
			return apierror.NotFound("Thing", "missing")
		case "body":
			return apierror.BodyField("name", "x", "String should have at least 2 characters")
		case "teapot":
			return fiber.NewError(fiber.StatusTeapot, "short and stout")
		case "boom":
			return errors.New("database exploded")
		}
		return c.SendString("ok")
	})
	app.Post("/api/v1/things", func(c *fiber.Ctx) error { return nil })
	return app
}

func decode(t *testing.T, app *fiber.App, method, path string) (int, apierror.Body) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil))
	require.NoError(t, err)
	var env apierror.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env.Error
}

func TestHandler(t *testing.T) {
	app := newApp()

	t.Run("ParamsNotValid", func(t *testing.T) {
		status, body := decode(t, app, "GET", "/api/v1/things/bad")
		assert.Equal(t, 400, status)
		assert.Equal(t, apierror.CodeParamsNotValid, body.Code)
		assert.Equal(t, 400, body.StatusCode)
		assert.Equal(t, "/api/v1/things/bad", body.Path)
		assert.Equal(t, "GET", body.Method)
		assert.NotEmpty(t, body.Timestamp)
	})

	t.Run("ResourceNotFound", func(t *testing.T) {
		status, body := decode(t, app, "GET", "/api/v1/things/missing")
		assert.Equal(t, 404, status)
		assert.Equal(t, apierror.CodeResourceNotFound, body.Code)
		assert.Equal(t, "Thing not found", body.Message)
		details := body.Details.(map[string]any)
		assert.Equal(t, "missing", details["identifier"])
	})

	t.Run("BodyNotValid", func(t *testing.T) {
		status, body := decode(t, app, "GET", "/api/v1/things/body")
		assert.Equal(t, 400, status)
		assert.Equal(t, apierror.CodeBodyNotValid, body.Code)
		details := body.Details.([]any)
		require.Len(t, details, 1)
		assert.Equal(t, "name", details[0].(map[string]any)["field"])
	})

	t.Run("HTTPError", func(t *testing.T) {
		status, body := decode(t, app, "GET", "/api/v1/things/teapot")
		assert.Equal(t, fiber.StatusTeapot, status)
		assert.Equal(t, apierror.CodeHTTPError, body.Code)
		assert.Equal(t, "short and stout", body.Message)
	})

	t.Run("ServerError", func(t *testing.T) {
		status, body := decode(t, app, "GET", "/api/v1/things/boom")
		assert.Equal(t, 500, status)
		assert.Equal(t, apierror.CodeServerError, body.Code)
		details := body.Details.(map[string]any)
		assert.NotEmpty(t, details["errorId"])
		assert.NotContains(t, body.Message, "exploded")
	})

	t.Run("PathNotFound", func(t *testing.T) {
		status, body := decode(t, app, "GET", "/nowhere")
		assert.Equal(t, 404, status)
		assert.Equal(t, apierror.CodePathNotFound, body.Code)
		details := body.Details.(map[string]any)
		endpoints := details["availableEndpoints"].([]any)
		assert.Contains(t, endpoints, "GET /api/v1/things/:id")
		assert.Contains(t, endpoints, "POST /api/v1/things")
	})
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, 404, apierror.StatusOf(apierror.NotFound("User", "1")))
	assert.Equal(t, 418, apierror.StatusOf(fiber.NewError(418, "tea")))
	assert.Equal(t, 500, apierror.StatusOf(errors.New("plain")))
}
