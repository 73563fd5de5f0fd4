// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which defines its lifecycle hooks
// and route registration logic.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Features that need to migrate tables or create indexes also implement Initializer.
//
// # Manager
//
// The Manager holds the registry of features:
//   - Register adds a feature
//   - InitAll prepares storage for enabled features
//   - LoadAll registers the routes of enabled features
package loader
