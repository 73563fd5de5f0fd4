package status

import "social-network/core/hateoas"

// Root is the body of GET /api/v1.
type Root struct {
	Message string        `json:"message"`
	Version string        `json:"version"`
	Links   hateoas.Links `json:"_links"`
}

// Health is the body of GET /health.
type Health struct {
	Status    string  `json:"status"`
	Timestamp float64 `json:"timestamp"`
}

// Check is the outcome of one readiness check.
type Check struct {
	Status string   `json:"status"`
	Error  string   `json:"error,omitempty"`
	Tables []string `json:"missingTables,omitempty"`
}

// Process holds resource usage of the running server.
type Process struct {
	PID           int32   `json:"pid"`
	Goroutines    int     `json:"goroutines"`
	RSSBytes      uint64  `json:"rssBytes"`
	CPUPercent    float64 `json:"cpuPercent"`
	MemoryPercent float64 `json:"systemMemoryPercent"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
}

// Readiness is the body of GET /health/ready.
type Readiness struct {
	Status    string           `json:"status"`
	Timestamp float64          `json:"timestamp"`
	Checks    map[string]Check `json:"checks"`
	Process   *Process         `json:"process,omitempty"`
}

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	checkOK         = "ok"
	checkFailed     = "error"
)
