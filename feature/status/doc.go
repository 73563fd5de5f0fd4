// Package status serves the API root document, liveness at /health and
// readiness at /health/ready.
//
// Liveness never touches the database so the container probe only reflects
// whether the process serves HTTP. Readiness pings the database, checks the
// SQL schema and reports process resource usage gathered with gopsutil.
package status
