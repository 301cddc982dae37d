// Package server provides the dedicated observability listener for the
// taskdeck application.
//
// The interactive TUI owns stdin and stdout, so operational surfaces live
// on their own port: a Prometheus /metrics endpoint backed by the
// OpenTelemetry prometheus exporter, plus /healthz, /readyz and
// /healthz/detailed probe endpoints.
//
// MetricsServer binds the listener and wires everything onto one mux.
// HealthChecker tracks readiness and shutdown state; Shutdown flips the
// readiness probes before the HTTP server drains.
package server
