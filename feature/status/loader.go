package status

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface. Health routes are mounted
// on root, outside the versioned API group.
type Feature struct {
	handler *Handler
	root    fiber.Router
}

// NewFeature creates the status feature.
func NewFeature(service *Service, version string, root fiber.Router) *Feature {
	return &Feature{handler: NewHandler(service, version), root: root}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "status"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the API root on api and the health routes on the root router.
func (f *Feature) Load(api fiber.Router) error {
	f.handler.RegisterRoutes(f.root, api)
	return nil
}
