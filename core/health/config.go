package health

import (
	"fmt"
	"time"
)

// Config holds the liveness probe settings. The defaults match the image
// HEALTHCHECK instruction.
type Config struct {
	// URL is the probe target.
	URL string `mapstructure:"url" default:"http://localhost:8000/health"`
	// Timeout bounds a single attempt.
	Timeout time.Duration `mapstructure:"timeout" default:"3s"`
	// Interval is the delay between attempts.
	Interval time.Duration `mapstructure:"interval" default:"30s"`
	// StartPeriod is the grace period before the first attempt.
	StartPeriod time.Duration `mapstructure:"start_period" default:"5s"`
	// Retries is the number of consecutive failures that mark the target unhealthy.
	Retries int `mapstructure:"retries" default:"3"`
}

// Validate rejects settings the monitor cannot run with.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("probe interval must be positive, got %s", c.Interval)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("probe timeout must be positive, got %s", c.Timeout)
	}
	if c.StartPeriod < 0 {
		return fmt.Errorf("probe start period must not be negative, got %s", c.StartPeriod)
	}
	return nil
}
