package instrumentation

import (
	"context"
	"testing"
	"time"
)

func newTestProvider(t *testing.T, ctx context.Context, detailedLabels bool) *Provider {
	t.Helper()

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
		DetailedLabels:  detailedLabels,
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })
	return provider
}

func TestMetrics_RecordStoreOperation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider := newTestProvider(t, ctx, false)

	metrics := provider.Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil")
	}
	metrics.SetStoreName(StoreMemory)

	// Should not panic
	metrics.RecordStoreOperation(ctx, OperationList, StatusSuccess, 100*time.Millisecond)
	metrics.RecordStoreOperation(ctx, OperationCreate, StatusError, 50*time.Millisecond)
	metrics.RecordStoreOperation(ctx, OperationDelete, StatusSuccess, 10*time.Millisecond)
}

func TestMetrics_RecordTaskCounts(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider := newTestProvider(t, ctx, false)
	metrics := provider.Metrics()

	// Should not panic
	metrics.RecordTaskCounts(ctx, 10, 4)
	metrics.RecordTaskCounts(ctx, 0, 0)
}

func TestMetrics_RecordSignIn(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider := newTestProvider(t, ctx, false)
	metrics := provider.Metrics()

	// Should not panic
	metrics.RecordSignIn(ctx, SignInResultSuccess)
	metrics.RecordSignIn(ctx, SignInResultFailure)
}

func TestMetrics_RecordSignInWithDomain(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Without detailed labels, the domain label is dropped
	provider := newTestProvider(t, ctx, false)
	metrics := provider.Metrics()

	// Should not panic - domain should be ignored
	metrics.RecordSignInWithDomain(ctx, SignInResultSuccess, "user@example.com")
}

func TestMetrics_RecordSignInWithDomain_DetailedLabels(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider := newTestProvider(t, ctx, true)
	metrics := provider.Metrics()

	// Should not panic - domain should be included
	metrics.RecordSignInWithDomain(ctx, SignInResultSuccess, "user@example.com")
}

func TestMetrics_RecordUIAction(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider := newTestProvider(t, ctx, false)
	metrics := provider.Metrics()

	// Should not panic
	metrics.RecordUIAction(ctx, "task_toggle", StatusSuccess)
	metrics.RecordUIAction(ctx, "calendar_next_month", StatusSuccess)
	metrics.RecordUIAction(ctx, "task_create", StatusError)
}

func TestMetrics_ActiveSessions(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider := newTestProvider(t, ctx, false)
	metrics := provider.Metrics()

	// Should not panic
	metrics.IncrementActiveSessions(ctx)
	metrics.IncrementActiveSessions(ctx)
	metrics.DecrementActiveSessions(ctx)
}

func TestMetrics_NoOp_WhenDisabled(t *testing.T) {
	ctx := context.Background()

	provider, err := NewProvider(ctx, Config{
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
		Enabled:        false,
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}

	metrics := provider.Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil even when disabled")
	}

	// All these should not panic even with nil underlying metrics
	metrics.RecordStoreOperation(ctx, OperationList, StatusSuccess, 200*time.Millisecond)
	metrics.RecordTaskCounts(ctx, 3, 1)
	metrics.RecordSignIn(ctx, SignInResultSuccess)
	metrics.RecordSignInWithDomain(ctx, SignInResultFailure, "user@example.com")
	metrics.RecordUIAction(ctx, "task_toggle", StatusSuccess)
	metrics.IncrementActiveSessions(ctx)
	metrics.DecrementActiveSessions(ctx)
}
