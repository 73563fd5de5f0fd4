// Package metrics exposes Prometheus request metrics for the API.
//
// Each Collector owns a registry, so tests and multiple apps in one process never
// collide on registration. Routes are labelled by their pattern (/api/v1/users/:id),
// not by the concrete path.
package metrics
