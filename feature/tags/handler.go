package tags

import (
	"net/url"

	"social-network/core/hateoas"

	"github.com/gofiber/fiber/v2"
)

// Tag is one entry of the tag list.
type Tag struct {
	Tag   string        `json:"tag"`
	Links hateoas.Links `json:"_links"`
}

// Response is the body of GET /tags.
type Response struct {
	Data  []Tag         `json:"data"`
	Total int           `json:"total"`
	Links hateoas.Links `json:"_links"`
}

// Handler serves the tag list.
type Handler struct {
	source Source
}

// NewHandler creates a tag handler reading from source.
func NewHandler(source Source) *Handler {
	return &Handler{source: source}
}

// RegisterRoutes registers the tag routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/tags", h.HandleList)
}

// HandleList returns every tag in use, sorted.
// @Summary List tags
// @Tags tags
// @Produce json
// @Success 200 {object} Response
// @Router /api/v1/tags [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	found, err := h.source.Tags(c.UserContext())
	if err != nil {
		return err
	}

	base := hateoas.BaseURL(c)
	data := make([]Tag, len(found))
	for i, tag := range found {
		data[i] = Tag{
			Tag: tag,
			Links: hateoas.Links{
				"self":  hateoas.Href(base, "/api/v1/tags"),
				"posts": hateoas.Href(base, "/api/v1/posts/tag/%s", url.PathEscape(tag)),
			},
		}
	}
	return c.JSON(Response{
		Data:  data,
		Total: len(data),
		Links: hateoas.Links{"self": hateoas.Href(base, "/api/v1/tags")},
	})
}
