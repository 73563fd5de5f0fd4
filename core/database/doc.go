// Package database opens the persistence backend and inspects its schema.
//
// Three drivers are supported: sqlite and mysql through GORM, and mongodb through
// the official driver. Open hides the choice behind a Handle and retries the first
// connection with exponential backoff, which matters when the database container
// starts alongside the API.
//
// # Usage
//
//	h, err := database.Open(ctx, cfg.Database, log)
//	if err != nil {
//	    log.Fatal("Database connection failed", zap.Error(err))
//	}
//	defer h.Close(ctx)
//
// # Schema Inspection
//
// GetTableColumns reads column definitions (PRAGMA table_info on sqlite, SHOW
// COLUMNS on mysql). CheckSchema uses it to report missing tables for the
// readiness endpoint and the ping command.
package database
