package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/task"
)

var (
	// ErrNotFound is reported when a task id does not exist.
	ErrNotFound = errors.New("task not found")

	// ErrPermission is reported when a task exists but belongs to a
	// different user than the session.
	ErrPermission = errors.New("task owned by another user")
)

// Error wraps a backend failure with the operation that hit it.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// TaskStore is the persistence contract. Implementations must scope every
// operation to the session's user: listing returns only that user's tasks,
// and mutating another user's task fails with ErrPermission.
type TaskStore interface {
	// CreateTask validates and persists a new task, returning it with
	// id and timestamps assigned.
	CreateTask(ctx context.Context, sess auth.Session, in task.Input) (task.Task, error)

	// UpdateTask applies the given changes to an existing task and
	// returns the updated record.
	UpdateTask(ctx context.Context, sess auth.Session, id string, ch task.Changes) (task.Task, error)

	// DeleteTask removes a task permanently.
	DeleteTask(ctx context.Context, sess auth.Session, id string) error

	// ListTasks returns the session user's tasks, newest first.
	ListTasks(ctx context.Context, sess auth.Session) ([]task.Task, error)
}
