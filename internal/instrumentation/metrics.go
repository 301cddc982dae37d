package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys - using constants for consistency and DRY
const (
	// Common attributes (reused across metrics)
	attrStatus    = "status"
	attrOperation = "operation"
	attrStore     = "store"
	attrResult    = "result"
	attrAction    = "action"
	attrDomain    = "user_domain"
)

// Metrics provides methods for recording observability metrics.
type Metrics struct {
	// Store metrics
	storeOperationsTotal   metric.Int64Counter
	storeOperationDuration metric.Float64Histogram

	// Task metrics
	tasksLoaded    metric.Int64Gauge
	tasksCompleted metric.Int64Gauge

	// Identity metrics
	signInTotal    metric.Int64Counter
	activeSessions metric.Int64UpDownCounter

	// UI metrics
	uiActionsTotal metric.Int64Counter

	// Configuration
	// detailedLabels controls whether high-cardinality labels are included
	detailedLabels bool

	// store backend name attached to store metrics
	storeName string
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
// The detailedLabels parameter controls whether high-cardinality labels are included.
func NewMetrics(meter metric.Meter, detailedLabels bool) (*Metrics, error) {
	m := &Metrics{
		detailedLabels: detailedLabels,
		storeName:      StatusUnknown,
	}

	var err error

	// Store Metrics
	m.storeOperationsTotal, err = meter.Int64Counter(
		"store_operations_total",
		metric.WithDescription("Total number of task store operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create store_operations_total counter: %w", err)
	}

	m.storeOperationDuration, err = meter.Float64Histogram(
		"store_operation_duration_seconds",
		metric.WithDescription("Task store operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create store_operation_duration_seconds histogram: %w", err)
	}

	// Task Metrics
	m.tasksLoaded, err = meter.Int64Gauge(
		"tasks_loaded",
		metric.WithDescription("Number of tasks in the loaded list"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks_loaded gauge: %w", err)
	}

	m.tasksCompleted, err = meter.Int64Gauge(
		"tasks_completed",
		metric.WithDescription("Number of completed tasks in the loaded list"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks_completed gauge: %w", err)
	}

	// Identity Metrics
	m.signInTotal, err = meter.Int64Counter(
		"sign_in_total",
		metric.WithDescription("Total number of sign-in attempts"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sign_in_total counter: %w", err)
	}

	m.activeSessions, err = meter.Int64UpDownCounter(
		"active_sessions",
		metric.WithDescription("Number of active user sessions"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create active_sessions gauge: %w", err)
	}

	// UI Metrics
	m.uiActionsTotal, err = meter.Int64Counter(
		"ui_actions_total",
		metric.WithDescription("Total number of UI actions"),
		metric.WithUnit("{action}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ui_actions_total counter: %w", err)
	}

	return m, nil
}

// SetStoreName sets the backend name attached to store operation metrics
// (e.g. "firestore", "memory").
func (m *Metrics) SetStoreName(name string) {
	if name != "" {
		m.storeName = name
	}
}

// RecordStoreOperation records a task store operation with operation type,
// status, and duration.
//
// Parameters:
//   - operation: Operation type (create, update, delete, list)
//   - status: Result status ("success" or "error")
//   - duration: Time taken for the operation
func (m *Metrics) RecordStoreOperation(ctx context.Context, operation, status string, duration time.Duration) {
	if m.storeOperationsTotal == nil || m.storeOperationDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrStore, m.storeName),
		attribute.String(attrOperation, operation),
		attribute.String(attrStatus, status),
	}

	m.storeOperationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.storeOperationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordTaskCounts records the size and completion state of the loaded
// task list after a refresh.
func (m *Metrics) RecordTaskCounts(ctx context.Context, total, completed int) {
	if m.tasksLoaded == nil || m.tasksCompleted == nil {
		return // Instrumentation not initialized
	}

	m.tasksLoaded.Record(ctx, int64(total))
	m.tasksCompleted.Record(ctx, int64(completed))
}

// RecordSignIn records a sign-in attempt with result.
// Result should be one of: "success", "failure"
func (m *Metrics) RecordSignIn(ctx context.Context, result string) {
	if m.signInTotal == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrResult, result),
	}

	m.signInTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordUIAction records a UI action with action name and status.
//
// Parameters:
//   - action: Action name (e.g. "task_toggle", "calendar_next_month")
//   - status: Result status ("success" or "error")
func (m *Metrics) RecordUIAction(ctx context.Context, action, status string) {
	if m.uiActionsTotal == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrAction, action),
		attribute.String(attrStatus, status),
	}

	m.uiActionsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordSignInWithDomain records a sign-in attempt with the user's email
// domain. The domain label is only attached when detailedLabels is enabled.
func (m *Metrics) RecordSignInWithDomain(ctx context.Context, result, email string) {
	if m.signInTotal == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrResult, result),
	}

	// Only add high-cardinality labels if explicitly enabled
	if m.detailedLabels && email != "" {
		attrs = append(attrs, attribute.String(attrDomain, ExtractUserDomain(email)))
	}

	m.signInTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// IncrementActiveSessions increments the active sessions counter.
func (m *Metrics) IncrementActiveSessions(ctx context.Context) {
	if m.activeSessions == nil {
		return // Instrumentation not initialized
	}

	m.activeSessions.Add(ctx, 1)
}

// DecrementActiveSessions decrements the active sessions counter.
func (m *Metrics) DecrementActiveSessions(ctx context.Context) {
	if m.activeSessions == nil {
		return // Instrumentation not initialized
	}

	m.activeSessions.Add(ctx, -1)
}
