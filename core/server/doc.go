// Package server holds the HTTP server configuration and assembles the Fiber application.
//
// The entry point (cmd start) loads a Config, validates it, and asks NewApp for a
// Fiber app with the error envelope handler and the global middleware stack already
// installed. Features register their routes on top of it.
//
// # Configuration
//
// Host and Port come from SERVER_HOST and SERVER_PORT and default to 0.0.0.0:8000,
// the port the container image exposes. Validate rejects unusable bind addresses so a
// misconfigured container fails at start instead of serving on the wrong port.
//
// # Middleware order
//
//  1. rayid, so every later log line carries the request id
//  2. metrics and request logging
//  3. version, timing and cache headers
//  4. CORS and compression
//  5. API key auth on mutating methods (when configured)
package server
