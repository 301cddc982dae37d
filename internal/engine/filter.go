package engine

import (
	"time"

	"github.com/taskdeck/taskdeck/internal/task"
)

// StatusFilter selects which completion states pass Filter.
type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterPending   StatusFilter = "pending"
	FilterCompleted StatusFilter = "completed"
)

// Valid reports whether f is one of the known filters.
func (f StatusFilter) Valid() bool {
	return f == FilterAll || f == FilterPending || f == FilterCompleted
}

// Cycle returns the next filter in the all -> pending -> completed rotation.
func (f StatusFilter) Cycle() StatusFilter {
	switch f {
	case FilterAll:
		return FilterPending
	case FilterPending:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// SameDay reports whether a and b fall on the same calendar day. Only the
// year, month, and day fields are compared; time of day is ignored, so
// 23:00 on one day and 01:00 on the next are different days even though
// they are two hours apart.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Filter returns the tasks matching the status filter and, when day is
// non-nil, due on the same calendar day. The two predicates are ANDed; a
// task without a due date never matches a day filter. The input slice is
// not mutated and the relative order of matching tasks is preserved.
func Filter(tasks []task.Task, status StatusFilter, day *time.Time) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if status != FilterAll && t.Status != task.Status(status) {
			continue
		}
		if day != nil {
			if t.DueDate == nil || !SameDay(*t.DueDate, *day) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
