package store

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/instrumentation"
	"github.com/taskdeck/taskdeck/internal/task"
)

// Operation names, shared by metrics, spans and audit records.
const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
	opList   = "list"
)

// Recorder receives timing observations and task gauges from the
// instrumented store. *instrumentation.Metrics satisfies it.
type Recorder interface {
	RecordStoreOperation(ctx context.Context, operation, status string, duration time.Duration)
	RecordTaskCounts(ctx context.Context, total, completed int)
}

// InstrumentConfig configures WithInstrumentation.
type InstrumentConfig struct {
	// Store is the backend name carried on spans and audit records.
	Store string

	// UserEmail identifies the session owner in audit records. Spans
	// carry only its domain.
	UserEmail string

	// Recorder receives metrics. Nil disables metric recording.
	Recorder Recorder

	// Audit receives a record for every mutation. Nil disables
	// audit logging.
	Audit *instrumentation.AuditLogger
}

// WithInstrumentation wraps a TaskStore so every operation runs inside
// a span and is timed through the recorder, and every mutation leaves
// an audit record. With neither a recorder nor an audit logger the
// store is returned unwrapped.
func WithInstrumentation(s TaskStore, cfg InstrumentConfig) TaskStore {
	if cfg.Recorder == nil && cfg.Audit == nil {
		return s
	}
	return &instrumented{next: s, cfg: cfg}
}

type instrumented struct {
	next TaskStore
	cfg  InstrumentConfig
}

// spanAttrs builds the common span attributes. The task id is omitted
// when not yet known.
func (i *instrumented) spanAttrs(taskID string) []attribute.KeyValue {
	return instrumentation.NewSpanAttributeBuilder().
		WithUserDomain(i.cfg.UserEmail).
		WithTaskID(taskID).
		Build()
}

func (i *instrumented) newMutation(ctx context.Context, op string) *instrumentation.Mutation {
	return instrumentation.NewMutation(op).
		WithUser(i.cfg.UserEmail).
		WithStore(i.cfg.Store).
		WithSpanContext(ctx)
}

// finish closes out an operation: span status, metrics, audit record.
func (i *instrumented) finish(ctx context.Context, span trace.Span, op string, m *instrumentation.Mutation, err error) {
	m.Complete(err == nil, err)
	if err != nil {
		instrumentation.SetSpanError(span, err)
	} else {
		instrumentation.SetSpanSuccess(span)
	}
	if i.cfg.Recorder != nil {
		i.cfg.Recorder.RecordStoreOperation(ctx, op, m.Status(), m.Duration)
	}
	if i.cfg.Audit != nil {
		i.cfg.Audit.LogMutation(m)
	}
}

func (i *instrumented) CreateTask(ctx context.Context, sess auth.Session, in task.Input) (task.Task, error) {
	ctx, span := instrumentation.StartStoreSpan(ctx, i.cfg.Store, opCreate, i.spanAttrs("")...)
	defer span.End()

	m := i.newMutation(ctx, opCreate)
	created, err := i.next.CreateTask(ctx, sess, in)
	if err == nil {
		m.WithTaskID(created.ID)
		instrumentation.AddSpanEvent(span, "task.created",
			attribute.String(instrumentation.SpanAttrTaskID, created.ID))
	}
	i.finish(ctx, span, opCreate, m, err)
	return created, err
}

func (i *instrumented) UpdateTask(ctx context.Context, sess auth.Session, id string, ch task.Changes) (task.Task, error) {
	ctx, span := instrumentation.StartStoreSpan(ctx, i.cfg.Store, opUpdate, i.spanAttrs(id)...)
	defer span.End()

	m := i.newMutation(ctx, opUpdate).WithTaskID(id)
	updated, err := i.next.UpdateTask(ctx, sess, id, ch)
	i.finish(ctx, span, opUpdate, m, err)
	return updated, err
}

func (i *instrumented) DeleteTask(ctx context.Context, sess auth.Session, id string) error {
	ctx, span := instrumentation.StartStoreSpan(ctx, i.cfg.Store, opDelete, i.spanAttrs(id)...)
	defer span.End()

	m := i.newMutation(ctx, opDelete).WithTaskID(id)
	err := i.next.DeleteTask(ctx, sess, id)
	i.finish(ctx, span, opDelete, m, err)
	return err
}

// ListTasks is a read, so it is traced and timed but leaves no audit
// record. A successful list refreshes the task gauges.
func (i *instrumented) ListTasks(ctx context.Context, sess auth.Session) ([]task.Task, error) {
	ctx, span := instrumentation.StartStoreSpan(ctx, i.cfg.Store, opList, i.spanAttrs("")...)
	defer span.End()

	start := time.Now()
	tasks, err := i.next.ListTasks(ctx, sess)

	status := instrumentation.StatusSuccess
	if err != nil {
		status = instrumentation.StatusError
		instrumentation.SetSpanError(span, err)
	} else {
		instrumentation.SetSpanSuccess(span)
		instrumentation.AddSpanEvent(span, "tasks.loaded",
			attribute.Int("count", len(tasks)))
	}

	if i.cfg.Recorder != nil {
		i.cfg.Recorder.RecordStoreOperation(ctx, opList, status, time.Since(start))
		if err == nil {
			completed := 0
			for _, t := range tasks {
				if t.Completed() {
					completed++
				}
			}
			i.cfg.Recorder.RecordTaskCounts(ctx, len(tasks), completed)
		}
	}
	return tasks, err
}
