package task

import "time"

// Status is the completion state of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Toggle returns the opposite completion state.
func (s Status) Toggle() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// Task represents a user-owned unit of work.
type Task struct {
	// ID is the store-assigned document ID. Immutable and unique.
	ID string

	// Title is never empty after validation.
	Title string

	// Description is optional and may be empty.
	Description string

	// Status defaults to StatusPending.
	Status Status

	// DueDate is optional; tasks without one never appear on calendar views.
	DueDate *time.Time

	// DueDateRaw holds the stored due value when it could not be parsed.
	// Display layers render such tasks with an "Invalid date" marker.
	DueDateRaw string

	// CreatedAt is set once at creation; UpdatedAt is refreshed on every
	// mutation. CreatedAt <= UpdatedAt always.
	CreatedAt time.Time
	UpdatedAt time.Time

	// OwnerID scopes every read and write to the authenticated user.
	OwnerID string
}

// Completed reports whether the task has been marked done.
func (t Task) Completed() bool {
	return t.Status == StatusCompleted
}

// Input is the set of fields accepted when creating a task.
type Input struct {
	Title       string
	Description string
	DueDate     *time.Time
	Status      Status
}

// Changes describes a partial update. Nil fields are left untouched.
// ClearDueDate removes an existing due date; it takes precedence over DueDate.
type Changes struct {
	Title        *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
	Status       *Status
}

// Empty reports whether the change set would leave the task untouched.
func (ch Changes) Empty() bool {
	return ch.Title == nil && ch.Description == nil && ch.DueDate == nil &&
		!ch.ClearDueDate && ch.Status == nil
}
