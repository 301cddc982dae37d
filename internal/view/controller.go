// Package view holds the presentation-agnostic state machine between the
// store and a UI: the loaded task list, the active filters, and the
// derived list, stats and calendar views.
package view

import (
	"context"
	"errors"
	"time"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/engine"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/task"
)

// ErrBusy is returned when a mutation is requested while another store
// call is still in flight.
var ErrBusy = errors.New("operation already in progress")

// Mode selects which derived view the UI renders.
type Mode int

const (
	ModeList Mode = iota
	ModeCalendar
)

// Controller owns the loaded tasks and view state for one session. Its
// methods are not safe for concurrent use; UIs drive it from a single
// event loop.
type Controller struct {
	store store.TaskStore
	sess  auth.Session
	now   func() time.Time

	tasks []task.Task
	err   error
	busy  bool

	mode   Mode
	status engine.StatusFilter
	day    *time.Time
	month  engine.Month
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// New builds a controller for the session. Call Refresh to perform the
// initial load.
func New(s store.TaskStore, sess auth.Session, opts ...Option) *Controller {
	c := &Controller{
		store:  s,
		sess:   sess,
		now:    time.Now,
		status: engine.FilterAll,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.month = engine.MonthOf(c.now())
	return c
}

// Refresh reloads the task list from the store. On failure the previous
// list is kept and the error is retained for display.
func (c *Controller) Refresh(ctx context.Context) error {
	tasks, err := c.store.ListTasks(ctx, c.sess)
	if err != nil {
		c.err = err
		return err
	}
	c.tasks = tasks
	c.err = nil
	return nil
}

// mutate guards a store mutation with the in-flight flag and reloads the
// list afterwards so derived views reflect persisted state.
func (c *Controller) mutate(ctx context.Context, op func(context.Context) error) error {
	if c.busy {
		return ErrBusy
	}
	c.busy = true
	defer func() { c.busy = false }()

	if err := op(ctx); err != nil {
		c.err = err
		return err
	}
	return c.Refresh(ctx)
}

// Create persists a new task and reloads.
func (c *Controller) Create(ctx context.Context, in task.Input) error {
	return c.mutate(ctx, func(ctx context.Context) error {
		_, err := c.store.CreateTask(ctx, c.sess, in)
		return err
	})
}

// Update applies changes to a task and reloads.
func (c *Controller) Update(ctx context.Context, id string, ch task.Changes) error {
	return c.mutate(ctx, func(ctx context.Context) error {
		_, err := c.store.UpdateTask(ctx, c.sess, id, ch)
		return err
	})
}

// Delete removes a task and reloads.
func (c *Controller) Delete(ctx context.Context, id string) error {
	return c.mutate(ctx, func(ctx context.Context) error {
		return c.store.DeleteTask(ctx, c.sess, id)
	})
}

// Toggle flips a task between pending and completed.
func (c *Controller) Toggle(ctx context.Context, id string) error {
	t, ok := c.Task(id)
	if !ok {
		return &store.Error{Op: "toggle", Err: store.ErrNotFound}
	}
	toggled := t.Status.Toggle()
	return c.Update(ctx, id, task.Changes{Status: &toggled})
}

// Task finds a loaded task by id.
func (c *Controller) Task(id string) (task.Task, bool) {
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

// Tasks returns the full loaded list, unfiltered.
func (c *Controller) Tasks() []task.Task {
	return c.tasks
}

// Visible applies the active status and day filters to the loaded list.
func (c *Controller) Visible() []task.Task {
	return engine.Filter(c.tasks, c.status, c.day)
}

// Stats summarizes the full loaded list. Filters do not change the
// figures shown in the header.
func (c *Controller) Stats() engine.Stats {
	return engine.ComputeStats(c.tasks)
}

// Grid lays the loaded tasks out over the focused month.
func (c *Controller) Grid() []engine.Cell {
	return engine.Grid(c.tasks, c.month)
}

// Err returns the most recent store failure, or nil. A successful refresh
// clears it.
func (c *Controller) Err() error {
	return c.err
}

// Busy reports whether a mutation is in flight.
func (c *Controller) Busy() bool {
	return c.busy
}

// Mode returns the active view mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// SetMode switches between list and calendar. Leaving the calendar keeps
// any day selection until ClearDay is called.
func (c *Controller) SetMode(m Mode) {
	c.mode = m
}

// StatusFilter returns the active status filter.
func (c *Controller) StatusFilter() engine.StatusFilter {
	return c.status
}

// CycleStatus advances the status filter all -> pending -> completed.
func (c *Controller) CycleStatus() {
	c.status = c.status.Cycle()
}

// Day returns the selected day filter, or nil.
func (c *Controller) Day() *time.Time {
	return c.day
}

// SelectDay filters the list to one calendar day and switches to list
// mode so the matching tasks are shown.
func (c *Controller) SelectDay(day time.Time) {
	d := day
	c.day = &d
	c.mode = ModeList
}

// ClearDay removes the day filter.
func (c *Controller) ClearDay() {
	c.day = nil
}

// Month returns the calendar month in focus.
func (c *Controller) Month() engine.Month {
	return c.month
}

// NextMonth moves the calendar focus forward.
func (c *Controller) NextMonth() {
	c.month = c.month.Next()
}

// PrevMonth moves the calendar focus back.
func (c *Controller) PrevMonth() {
	c.month = c.month.Prev()
}
