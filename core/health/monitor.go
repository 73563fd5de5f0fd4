package health

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Status is the health state of a monitored target.
type Status string

const (
	StatusStarting  Status = "starting"
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// Monitor probes a target periodically and tracks its health like a container
// runtime does: nothing happens during the start period, any success marks the
// target healthy, and Retries consecutive failures mark it unhealthy.
type Monitor struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger

	// OnChange is called on every status transition.
	OnChange func(from, to Status)

	mu       sync.RWMutex
	status   Status
	failures int
}

// NewMonitor creates a monitor in the starting state.
func NewMonitor(cfg Config, client *http.Client, logger *zap.Logger) *Monitor {
	if client == nil {
		client = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Retries < 1 {
		cfg.Retries = 1
	}
	return &Monitor{cfg: cfg, client: client, logger: logger, status: StatusStarting}
}

// Status returns the current status.
func (m *Monitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Failures returns the current consecutive failure count.
func (m *Monitor) Failures() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.failures
}

// Run probes until ctx is done. The first probe fires one interval after the
// start period. An invalid Config is returned as an error before any wait.
func (m *Monitor) Run(ctx context.Context) error {
	if err := m.cfg.Validate(); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(m.cfg.StartPeriod):
	}

	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

// Check runs a single probe and updates the status.
func (m *Monitor) Check(ctx context.Context) Status {
	err := Probe(ctx, m.client, m.cfg.URL, m.cfg.Timeout)

	m.mu.Lock()
	from := m.status
	if err == nil {
		m.failures = 0
		m.status = StatusHealthy
	} else {
		m.failures++
		m.logger.Warn("Health probe failed",
			zap.String("url", m.cfg.URL),
			zap.Int("failures", m.failures),
			zap.Error(err),
		)
		if m.failures >= m.cfg.Retries {
			m.status = StatusUnhealthy
		}
	}
	to := m.status
	m.mu.Unlock()

	if from != to {
		m.logger.Info("Health status changed", zap.String("from", string(from)), zap.String("to", string(to)))
		if m.OnChange != nil {
			m.OnChange(from, to)
		}
	}
	return to
}
