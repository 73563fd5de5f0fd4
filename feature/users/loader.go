package users

import (
	"context"

	"social-network/core/pagination"

	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the users feature.
func NewFeature(service *Service, page pagination.Options) *Feature {
	return &Feature{service: service, handler: NewHandler(service, page)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "users"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Init migrates the users table or creates the collection indexes.
func (f *Feature) Init(ctx context.Context) error {
	return f.service.Init(ctx)
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
