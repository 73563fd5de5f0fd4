// Package testutil holds helpers shared by package tests: throwaway database
// handles and a thin HTTP client over fiber's app.Test.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"social-network/core/database"
	"social-network/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// MongoImage is the image used for MongoDB-backed tests.
const MongoImage = "mongo:7"

// SQLite opens an in-memory sqlite handle that is closed with the test.
func SQLite(t *testing.T) *database.Handle {
	t.Helper()
	h, err := database.Open(context.Background(), database.Config{Driver: database.DriverSQLite, Name: ":memory:"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close(context.Background()) })
	return h
}

// DockerAvailable reports whether testcontainers can reach a Docker provider.
func DockerAvailable() (available bool) {
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	provider, err := testcontainers.ProviderDocker.GetProvider()
	if err != nil {
		return false
	}
	defer provider.Close()
	return true
}

// RequireDocker skips the test in short mode or without Docker.
func RequireDocker(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	if !DockerAvailable() {
		t.Skip("skipping container test: docker provider not available")
	}
}

// Mongo starts a MongoDB container and returns a handle on a fresh database.
func Mongo(t *testing.T) *database.Handle {
	t.Helper()
	RequireDocker(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        MongoImage,
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp"),
		},
		Started: true,
	})
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017/tcp")
	require.NoError(t, err)

	h, err := database.Open(ctx, database.Config{
		Driver:         database.DriverMongoDB,
		URL:            fmt.Sprintf("mongodb://%s:%s", host, port.Port()),
		Name:           "test_" + uuid.NewString()[:8],
		TimeoutSeconds: 10,
		ConnectRetries: 3,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close(context.Background()) })
	return h
}

// NewApp returns an app with the production error handler and middleware.
func NewApp() *fiber.App {
	return server.NewApp(server.Options{Server: server.Config{Title: "test", AllowedOrigins: []string{"*"}}})
}

// Request sends a request through app.Test. A non-nil body is JSON encoded.
func Request(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Decode reads a JSON response body into out.
func Decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
