// Package instrumentation provides comprehensive OpenTelemetry instrumentation
// for the taskdeck application.
//
// This package enables production-grade observability through:
//   - OpenTelemetry metrics for task store operations, sign-ins, and UI actions
//   - Distributed tracing for store and identity-provider calls
//   - Prometheus metrics export via /metrics endpoint on dedicated port
//   - OTLP export support for modern observability platforms
//
// # Metrics
//
// The package exposes the following metric categories:
//
// Store Metrics:
//   - store_operations_total: Counter of task store operations by store, operation, status
//   - store_operation_duration_seconds: Histogram of task store operation durations
//
// Task Metrics:
//   - tasks_loaded: Gauge of tasks in the loaded list
//   - tasks_completed: Gauge of completed tasks in the loaded list
//
// Identity Metrics:
//   - sign_in_total: Counter of sign-in attempts by result
//   - active_sessions: Gauge of active user sessions
//
// UI Metrics:
//   - ui_actions_total: Counter of UI actions by action name and status
//
// # Tracing
//
// Distributed tracing spans are created for:
//   - Task store operations (store.<operation>)
//   - Identity-provider operations (auth.<operation>)
//
// # Configuration
//
// Instrumentation can be configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable instrumentation (default: true)
//   - METRICS_EXPORTER: Metrics exporter type (prometheus, otlp, stdout, default: prometheus)
//   - TRACING_EXPORTER: Tracing exporter type (otlp, stdout, none, default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for traces/metrics
//   - OTEL_TRACES_SAMPLER_ARG: Sampling rate (0.0 to 1.0, default: 0.1)
//   - OTEL_SERVICE_NAME: Service name (default: taskdeck)
//
// # Example Usage
//
//	// Initialize instrumentation
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.Config{
//		ServiceName:    "taskdeck",
//		ServiceVersion: "0.1.0",
//		Enabled:        true,
//	})
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	// Get metrics recorder
//	recorder := provider.Metrics()
//	recorder.SetStoreName("firestore")
//
//	// Record a store operation
//	recorder.RecordStoreOperation(ctx, "list", "success", time.Since(start))
//
//	// Record a sign-in attempt
//	recorder.RecordSignIn(ctx, "success")
package instrumentation
