package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"social-network/core/database"
	"social-network/core/health"
	"social-network/core/logger"
	"social-network/core/metrics"
	"social-network/core/server"
	"social-network/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Storage holds configuration for the object storage used by media uploads.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Cache holds configuration for response caching headers and the tag cache.
	Cache CacheConfig `mapstructure:"cache"`
	// Compression holds configuration for response compression.
	Compression CompressionConfig `mapstructure:"compression"`
	// Pagination holds page size limits for list endpoints.
	Pagination PaginationConfig `mapstructure:"pagination"`
	// Probe holds configuration for the liveness probe.
	Probe health.Config `mapstructure:"probe"`
	// Metrics holds configuration for the Prometheus endpoint.
	Metrics metrics.Config `mapstructure:"metrics"`
}

// CacheConfig controls Cache-Control headers and in-process caches.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled" default:"true"`
	TTL     time.Duration `mapstructure:"ttl" default:"5m"`
	// MaxEntries bounds the in-process LRU caches.
	MaxEntries int `mapstructure:"max_entries" default:"128"`
}

// CompressionConfig controls response compression.
type CompressionConfig struct {
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Level is one of -1 (disabled), 0 (default), 1 (best speed), 2 (best compression).
	Level int `mapstructure:"level" default:"0"`
}

// PaginationConfig bounds list endpoints.
type PaginationConfig struct {
	DefaultPageSize int `mapstructure:"default_page_size" default:"20"`
	MaxPageSize     int `mapstructure:"max_page_size" default:"100"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// time.Duration is an int64, only real structs are sections
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
