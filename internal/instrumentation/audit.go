package instrumentation

import (
	"context"
	"log/slog"
	"time"
)

// Mutation captures all information about a task mutation for audit logging.
// This provides an audit trail for every write against the task store.
//
// # Privacy Considerations
//
// The UserEmail field contains PII. When logging, consider:
//   - Using UserDomain() to get only the domain for metrics/general logs
//   - Only logging full email in audit-specific log streams
//   - Ensuring audit logs have appropriate access controls
type Mutation struct {
	// Operation type (create, update, delete, toggle)
	Operation string

	// User identity
	UserEmail string

	// Target information
	Store  string // Store backend (firestore, memory)
	TaskID string // Task document identifier

	// Execution details
	StartTime time.Time
	Duration  time.Duration
	Success   bool
	Error     string

	// Tracing context
	TraceID string
	SpanID  string
}

// UserDomain returns the domain portion of the user's email for lower-cardinality logging.
func (m *Mutation) UserDomain() string {
	return ExtractUserDomain(m.UserEmail)
}

// Status returns "success" or "error" based on the Success field.
func (m *Mutation) Status() string {
	if m.Success {
		return StatusSuccess
	}
	return StatusError
}

// LogAttrs returns slog attributes for structured logging.
// This provides a consistent set of fields for all mutation logs.
//
// # Cardinality
//
// This function uses cardinality-controlled values (user_domain)
// for metrics-compatible logging. For full audit logging, use LogAuditAttrs.
func (m *Mutation) LogAttrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("operation", m.Operation),
		slog.String("user_domain", m.UserDomain()),
		slog.Duration("duration", m.Duration),
		slog.Bool("success", m.Success),
	}

	// Add optional fields only if present
	if m.Store != "" {
		attrs = append(attrs, slog.String("store", m.Store))
	}
	if m.TaskID != "" {
		attrs = append(attrs, slog.String("task_id", m.TaskID))
	}
	if m.TraceID != "" {
		attrs = append(attrs, slog.String("trace_id", m.TraceID))
	}
	if m.Error != "" {
		attrs = append(attrs, slog.String("error", m.Error))
	}

	return attrs
}

// LogAuditAttrs returns slog attributes for full audit logging.
// This includes the full user email for compliance/audit purposes.
//
// # Security Warning
//
// This method includes PII (full email). Ensure audit logs are:
//   - Stored securely with appropriate access controls
//   - Not exposed to general monitoring dashboards
//   - Retained according to compliance requirements
func (m *Mutation) LogAuditAttrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("operation", m.Operation),
		slog.String("user", m.UserEmail),
		slog.Duration("duration", m.Duration),
		slog.Bool("success", m.Success),
	}

	// Add all optional fields
	if m.Store != "" {
		attrs = append(attrs, slog.String("store", m.Store))
	}
	if m.TaskID != "" {
		attrs = append(attrs, slog.String("task_id", m.TaskID))
	}
	if m.TraceID != "" {
		attrs = append(attrs, slog.String("trace_id", m.TraceID))
	}
	if m.SpanID != "" {
		attrs = append(attrs, slog.String("span_id", m.SpanID))
	}
	if m.Error != "" {
		attrs = append(attrs, slog.String("error", m.Error))
	}

	return attrs
}

// NewMutation creates a new Mutation with timing started.
// Call Complete() when the store operation finishes.
func NewMutation(operation string) *Mutation {
	return &Mutation{
		Operation: operation,
		StartTime: time.Now(),
	}
}

// WithUser sets the user identity information.
func (m *Mutation) WithUser(email string) *Mutation {
	m.UserEmail = email
	return m
}

// WithStore sets the store backend name.
func (m *Mutation) WithStore(store string) *Mutation {
	m.Store = store
	return m
}

// WithTaskID sets the task identifier.
func (m *Mutation) WithTaskID(id string) *Mutation {
	m.TaskID = id
	return m
}

// WithSpanContext extracts trace context from the current span.
func (m *Mutation) WithSpanContext(ctx context.Context) *Mutation {
	m.TraceID = GetTraceID(ctx)
	m.SpanID = GetSpanID(ctx)
	return m
}

// Complete marks the mutation as completed and calculates duration.
// Returns the same Mutation for method chaining.
func (m *Mutation) Complete(success bool, err error) *Mutation {
	m.Duration = time.Since(m.StartTime)
	m.Success = success
	if err != nil {
		m.Error = err.Error()
	}
	return m
}

// CompleteWithError marks the mutation as failed with the given error.
func (m *Mutation) CompleteWithError(err error) *Mutation {
	return m.Complete(false, err)
}

// CompleteSuccess marks the mutation as successful.
func (m *Mutation) CompleteSuccess() *Mutation {
	return m.Complete(true, nil)
}

// AuditLogger provides structured audit logging for task mutations and
// identity events. It wraps slog.Logger with convenience methods.
type AuditLogger struct {
	logger     *slog.Logger
	includePII bool
	enabled    bool
}

// NewAuditLogger creates a new AuditLogger with the given slog.Logger.
// By default, PII is not included in logs (anonymized identifiers are used instead).
func NewAuditLogger(logger *slog.Logger) *AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger:     logger,
		includePII: false,
		enabled:    true,
	}
}

// NewAuditLoggerWithConfig creates a new AuditLogger with the given configuration.
func NewAuditLoggerWithConfig(logger *slog.Logger, config AuditLoggingConfig) *AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger:     logger,
		includePII: config.IncludePII,
		enabled:    config.Enabled,
	}
}

// SetIncludePII sets whether to include full email addresses in audit logs.
func (al *AuditLogger) SetIncludePII(include bool) {
	al.includePII = include
}

// SetEnabled sets whether audit logging is enabled.
func (al *AuditLogger) SetEnabled(enabled bool) {
	al.enabled = enabled
}

// LogMutation logs a task mutation using the standard log attributes.
// This is suitable for general operational logging with cardinality controls.
// If the logger is configured with IncludePII, full user emails are logged;
// otherwise, only domain-based anonymized identifiers are used.
func (al *AuditLogger) LogMutation(m *Mutation) {
	if !al.enabled {
		return
	}

	// Choose between PII and anonymized logging based on configuration
	var attrs []slog.Attr
	if al.includePII {
		attrs = m.LogAuditAttrs()
	} else {
		attrs = m.LogAttrs()
	}

	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}

	if m.Success {
		al.logger.Info("task_mutation", args...)
	} else {
		al.logger.Warn("task_mutation_failed", args...)
	}
}

// LogAuthEvent logs a sign-in or sign-out event.
// Event should be one of "sign_in", "sign_out".
func (al *AuditLogger) LogAuthEvent(event, email string, success bool) {
	if !al.enabled {
		return
	}

	args := []any{
		slog.Bool("success", success),
	}
	if al.includePII {
		args = append(args, slog.String("user", email))
	} else {
		args = append(args, slog.String("user_domain", ExtractUserDomain(email)))
	}

	if success {
		al.logger.Info(event, args...)
	} else {
		al.logger.Warn(event, args...)
	}
}
