package status

import (
	"social-network/core/hateoas"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the root document and the health endpoints.
type Handler struct {
	service *Service
	version string
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, version string) *Handler {
	return &Handler{service: service, version: version}
}

// RegisterRoutes registers /api/v1 on api and the health routes on app.
func (h *Handler) RegisterRoutes(app fiber.Router, api fiber.Router) {
	api.Get("", h.HandleRoot)
	app.Get("/health", h.HandleHealth)
	app.Get("/health/ready", h.HandleReady)
}

// HandleRoot returns the API entry point.
// @Summary API root
// @Tags root
// @Produce json
// @Success 200 {object} Root
// @Router /api/v1 [get]
func (h *Handler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(Root{
		Message: "Welcome to Social Network API",
		Version: h.version,
		Links: hateoas.Links{
			"self":     {Href: "/api/v1"},
			"users":    {Href: "/api/v1/users"},
			"posts":    {Href: "/api/v1/posts"},
			"comments": {Href: "/api/v1/comments"},
			"tags":     {Href: "/api/v1/tags"},
			"docs":     {Href: "/api/v1/docs"},
		},
	})
}

// HandleHealth reports liveness.
// @Summary Liveness
// @Tags health
// @Produce json
// @Success 200 {object} Health
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(h.service.Health())
}

// HandleReady reports readiness.
// @Summary Readiness
// @Tags health
// @Produce json
// @Success 200 {object} Readiness
// @Failure 503 {object} Readiness
// @Router /health/ready [get]
func (h *Handler) HandleReady(c *fiber.Ctx) error {
	r := h.service.Ready(c.UserContext())
	if r.Status != statusHealthy {
		c.Status(fiber.StatusServiceUnavailable)
	}
	return c.JSON(r)
}
