// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - rayid: generates a RayID per request (X-Ray-ID) for log correlation.
//   - requestlog: logs method, path, status and duration through zap.
//   - headers: X-API-Version echo, X-Process-Time, Cache-Control on GET.
//   - auth: optional API key check on mutating methods.
//
// CORS and compression come from Fiber's own middleware and are wired in core/server.
package middleware
