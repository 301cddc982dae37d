package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/taskdeck/taskdeck/internal/task"
)

// InvalidDateText is shown wherever a task carries a due value that could
// not be parsed into a time.
const InvalidDateText = "Invalid date"

// DescribeDue renders a task's due date relative to now. The distance is
// rounded up to whole days, so a task a few hours past due still reads
// "Due today" and one due later today reads "Due tomorrow". Dates more
// than a week out fall back to the absolute timestamp.
func DescribeDue(t task.Task, now time.Time) string {
	if t.DueDateRaw != "" {
		return InvalidDateText
	}
	if t.DueDate == nil {
		return ""
	}
	due := *t.DueDate
	days := int(math.Ceil(due.Sub(now).Hours() / 24))
	switch {
	case days < 0:
		n := -days
		if n == 1 {
			return "Overdue by 1 day"
		}
		return fmt.Sprintf("Overdue by %d days", n)
	case days == 0:
		return "Due today"
	case days == 1:
		return "Due tomorrow"
	case days <= 7:
		return fmt.Sprintf("Due in %d days", days)
	default:
		return due.Format("Jan 2, 2006 3:04 PM")
	}
}

// PriorityLevel grades how pressing a due date is. It uses fractional-day
// distances and therefore draws its lines differently from DescribeDue;
// the two are independent policies and must not be merged.
type PriorityLevel int

const (
	// PriorityNone applies to tasks without a due date.
	PriorityNone PriorityLevel = iota
	PriorityNormal
	PrioritySoon
	PriorityUrgent
	PriorityOverdue
)

// String returns the lower-case level name.
func (p PriorityLevel) String() string {
	switch p {
	case PriorityNone:
		return "none"
	case PriorityNormal:
		return "normal"
	case PrioritySoon:
		return "soon"
	case PriorityUrgent:
		return "urgent"
	case PriorityOverdue:
		return "overdue"
	default:
		return "unknown"
	}
}

// Priority grades a task's due date against now. A task due exactly at now
// is urgent, not overdue.
func Priority(t task.Task, now time.Time) PriorityLevel {
	if t.DueDate == nil {
		return PriorityNone
	}
	days := t.DueDate.Sub(now).Hours() / 24
	switch {
	case days < 0:
		return PriorityOverdue
	case days <= 1:
		return PriorityUrgent
	case days <= 3:
		return PrioritySoon
	default:
		return PriorityNormal
	}
}
