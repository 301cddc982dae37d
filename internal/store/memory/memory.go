// Package memory implements store.TaskStore in process. It backs demo
// mode and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/task"
)

type record struct {
	task task.Task
	seq  int
}

// Store keeps tasks in a map guarded by a mutex. Returned tasks are
// copies; callers cannot mutate stored state through them.
type Store struct {
	mu    sync.Mutex
	tasks map[string]record
	seq   int
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New returns an empty in-memory store.
func New(opts ...Option) *Store {
	s := &Store{
		tasks: make(map[string]record),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) CreateTask(ctx context.Context, sess auth.Session, in task.Input) (task.Task, error) {
	if err := in.Validate(); err != nil {
		return task.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	t := task.Task{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
		OwnerID:     sess.UID,
	}
	s.seq++
	s.tasks[t.ID] = record{task: t, seq: s.seq}
	return t, nil
}

func (s *Store) UpdateTask(ctx context.Context, sess auth.Session, id string, ch task.Changes) (task.Task, error) {
	if err := ch.Validate(); err != nil {
		return task.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.owned(sess, id, "update")
	if err != nil {
		return task.Task{}, err
	}

	t := rec.task
	if ch.Title != nil {
		t.Title = *ch.Title
	}
	if ch.Description != nil {
		t.Description = *ch.Description
	}
	if ch.Status != nil {
		t.Status = *ch.Status
	}
	if ch.ClearDueDate {
		t.DueDate = nil
		t.DueDateRaw = ""
	} else if ch.DueDate != nil {
		t.DueDate = ch.DueDate
		t.DueDateRaw = ""
	}
	t.UpdatedAt = s.now()
	if t.UpdatedAt.Before(t.CreatedAt) {
		t.UpdatedAt = t.CreatedAt
	}

	rec.task = t
	s.tasks[id] = rec
	return t, nil
}

func (s *Store) DeleteTask(ctx context.Context, sess auth.Session, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.owned(sess, id, "delete"); err != nil {
		return err
	}
	delete(s.tasks, id)
	return nil
}

func (s *Store) ListTasks(ctx context.Context, sess auth.Session) ([]task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := make([]record, 0, len(s.tasks))
	for _, rec := range s.tasks {
		if rec.task.OwnerID == sess.UID {
			recs = append(recs, rec)
		}
	}
	// newest first; insertion order breaks creation-time ties
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].task.CreatedAt.Equal(recs[j].task.CreatedAt) {
			return recs[i].task.CreatedAt.After(recs[j].task.CreatedAt)
		}
		return recs[i].seq > recs[j].seq
	})

	out := make([]task.Task, len(recs))
	for i, rec := range recs {
		out[i] = rec.task
	}
	return out, nil
}

// owned looks a task up and checks session ownership. The caller holds the
// lock.
func (s *Store) owned(sess auth.Session, id, op string) (record, error) {
	rec, ok := s.tasks[id]
	if !ok {
		return record{}, &store.Error{Op: op, Err: store.ErrNotFound}
	}
	if rec.task.OwnerID != sess.UID {
		return record{}, &store.Error{Op: op, Err: store.ErrPermission}
	}
	return rec, nil
}
