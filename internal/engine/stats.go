package engine

import "github.com/taskdeck/taskdeck/internal/task"

// Stats holds aggregate counts over the full, unfiltered task collection.
type Stats struct {
	Total     int
	Completed int
	Pending   int
}

// ComputeStats counts tasks in a single pass. Pending is derived as
// Total - Completed so the three counts are always consistent.
func ComputeStats(tasks []task.Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Status == task.StatusCompleted {
			s.Completed++
		}
	}
	s.Pending = s.Total - s.Completed
	return s
}
