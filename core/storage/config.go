package storage

// Config holds configuration for the storage provider.
type Config struct {
	// Enabled turns on the media feature.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds uploaded media.
	Bucket string `mapstructure:"bucket" default:"social-network"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// PublicURL, when set, is used as the base of returned object URLs instead
	// of the API download route.
	PublicURL string `mapstructure:"public_url" default:""`
	// MaxUploadBytes caps a single upload.
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes" default:"5242880"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
