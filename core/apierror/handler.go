package apierror

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"social-network/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Body is the error envelope payload.
type Body struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Method     string `json:"method"`
	Details    any    `json:"details"`
}

// Envelope wraps Body under the "error" key.
type Envelope struct {
	Error Body `json:"error"`
}

// Handler returns a Fiber ErrorHandler rendering every error into the envelope.
func Handler(l *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		body := Body{
			Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
			Path:      c.Path(),
			Method:    c.Method(),
		}

		var apiErr *Error
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &apiErr):
			body.Code = apiErr.Code
			body.Message = apiErr.Message
			body.StatusCode = apiErr.Status
			body.Details = apiErr.Details
		case errors.As(err, &fiberErr) && fiberErr.Code == http.StatusNotFound:
			body.Code = CodePathNotFound
			body.Message = "The requested endpoint does not exist"
			body.StatusCode = http.StatusNotFound
			body.Details = fiber.Map{"availableEndpoints": AvailableEndpoints(c.App())}
		case errors.As(err, &fiberErr):
			body.Code = CodeHTTPError
			body.Message = fiberErr.Message
			body.StatusCode = fiberErr.Code
		default:
			errorID := uuid.NewString()
			logger.WithRayID(l, c).Error("Unhandled server error",
				zap.String("error_id", errorID),
				zap.Error(err),
			)
			body.Code = CodeServerError
			body.Message = "An internal server error occurred"
			body.StatusCode = http.StatusInternalServerError
			body.Details = fiber.Map{
				"errorId": errorID,
				"message": "Please try again later or contact support if the issue persists",
			}
		}

		return c.Status(body.StatusCode).JSON(Envelope{Error: body})
	}
}

// AvailableEndpoints lists the public API routes as "METHOD /path".
func AvailableEndpoints(app *fiber.App) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, r := range app.GetRoutes(true) {
		if r.Method == fiber.MethodHead || r.Method == fiber.MethodOptions {
			continue
		}
		if !strings.HasPrefix(r.Path, "/api/") {
			continue
		}
		entry := r.Method + " " + r.Path
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		out = append(out, entry)
	}
	return out
}
