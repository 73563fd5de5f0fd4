package tags

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates the tags feature over source, which may be a *Cache.
func NewFeature(source Source) *Feature {
	return &Feature{handler: NewHandler(source)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "tags"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
