package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskdeck/taskdeck/internal/task"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name  string
		tasks []task.Task
		want  Stats
	}{
		{
			name: "empty",
			want: Stats{},
		},
		{
			name: "mixed statuses",
			tasks: []task.Task{
				{Status: task.StatusPending},
				{Status: task.StatusCompleted},
				{Status: task.StatusCompleted},
			},
			want: Stats{Total: 3, Completed: 2, Pending: 1},
		},
		{
			name: "all completed",
			tasks: []task.Task{
				{Status: task.StatusCompleted},
				{Status: task.StatusCompleted},
			},
			want: Stats{Total: 2, Completed: 2, Pending: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStats(tt.tasks)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.Total, got.Completed+got.Pending)
		})
	}
}
