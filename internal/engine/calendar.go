package engine

import (
	"time"

	"github.com/taskdeck/taskdeck/internal/task"
)

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// First returns midnight on the first day of the month, in local time.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	// Day zero of the following month is the last day of this one.
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// Next returns the following calendar month.
func (m Month) Next() Month {
	return MonthOf(m.First().AddDate(0, 1, 0))
}

// Prev returns the preceding calendar month.
func (m Month) Prev() Month {
	return MonthOf(m.First().AddDate(0, -1, 0))
}

// Contains reports whether t falls within the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// String renders the month as "January 2026".
func (m Month) String() string {
	return m.First().Format("January 2006")
}

// BinByDay assigns each task with a due date in the month to the day it is
// due on, keyed by day of month. Tasks without a due date never appear in
// any bin. Each bin holds the full task list for that day; any
// "first N then +M more" truncation is a display concern and happens later.
func BinByDay(tasks []task.Task, m Month) map[int][]task.Task {
	bins := make(map[int][]task.Task)
	for _, t := range tasks {
		if t.DueDate == nil || !m.Contains(*t.DueDate) {
			continue
		}
		day := t.DueDate.Day()
		bins[day] = append(bins[day], t)
	}
	return bins
}

// Cell is one slot in the 7-wide month grid. Padding cells have Day == 0
// and carry no task data; they exist only to keep the grid weekday-aligned.
type Cell struct {
	Day       int
	Date      time.Time
	Tasks     []task.Task
	Completed int
}

// Padding reports whether the cell is a weekday-alignment filler.
func (c Cell) Padding() bool {
	return c.Day == 0
}

// Pending returns the count of not-yet-completed tasks in the cell.
func (c Cell) Pending() int {
	return len(c.Tasks) - c.Completed
}

// Grid lays the month out as a Sunday-first sequence of cells: leading
// padding up to the weekday of day 1, one cell per day of the month, then
// trailing padding so the total length is a multiple of 7. An empty task
// list produces a complete grid of zero-count cells, not an error.
func Grid(tasks []task.Task, m Month) []Cell {
	bins := BinByDay(tasks, m)
	first := m.First()

	lead := int(first.Weekday())
	cells := make([]Cell, 0, lead+m.Days()+6)
	for i := 0; i < lead; i++ {
		cells = append(cells, Cell{})
	}

	for day := 1; day <= m.Days(); day++ {
		cell := Cell{
			Day:   day,
			Date:  time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.Local),
			Tasks: bins[day],
		}
		for _, t := range cell.Tasks {
			if t.Status == task.StatusCompleted {
				cell.Completed++
			}
		}
		cells = append(cells, cell)
	}

	for len(cells)%7 != 0 {
		cells = append(cells, Cell{})
	}
	return cells
}
