package server

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to.
	Host string `mapstructure:"host" default:"0.0.0.0"`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8000"`
	// ApiKey, when set, is required on mutating requests.
	ApiKey string `mapstructure:"api_key" default:""`
	// Title is the public API name reported by the root endpoint.
	Title string `mapstructure:"title" default:"Social Network API"`
	// Version is the public API version reported by the root endpoint.
	Version string `mapstructure:"version" default:"1.0.0"`
	// AllowedOrigins lists the CORS origins allowed to call the API.
	AllowedOrigins []string `mapstructure:"allowed_origins" default:"http://localhost:3000,http://localhost:8080,https://yourdomain.com"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" default:"10s"`
}

// DefaultPort is the port the image exposes and the probe targets.
const DefaultPort = "8000"

// Validate checks that the bind address is usable.
func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("server host must not be empty")
	}
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("server port %q is not a number", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("server port %d out of range", port)
	}
	return nil
}

// Address returns the host:port pair to listen on.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}
