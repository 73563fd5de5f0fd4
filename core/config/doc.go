// Package config provides configuration management for the Social Network API.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults live next to each field as `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: bind host and port, API version, CORS origins, optional API key
//   - Database: driver (sqlite, mysql, mongodb) and connection details
//   - Storage: S3/MinIO credentials for media uploads
//   - Log: logging level and format
//   - Cache, Compression, Pagination: HTTP behaviour
//   - Probe: liveness probe target and timing
//   - Metrics: Prometheus endpoint
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Address())
package config
