// Package health implements the liveness probe used by the container HEALTHCHECK
// and a periodic monitor with the same semantics.
//
// Probe performs a single GET and treats any status below 400 as healthy. Monitor
// waits StartPeriod, then probes every Interval with a Timeout per attempt. It turns
// healthy on the first success and unhealthy after Retries consecutive failures.
// With the defaults (5s, 30s, 3s, 3) a live server reports healthy 35s after start
// and a dead one reports unhealthy after 95s.
//
// The probe only confirms that the HTTP listener answers. It has no view of the
// application's internal state.
package health
