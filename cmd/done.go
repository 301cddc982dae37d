package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/task"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task between pending and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDone(args[0])
		},
	}
	return cmd
}

func runDone(id string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	ctrl := a.controller()
	if err := ctrl.Refresh(ctx); err != nil {
		return err
	}
	if err := ctrl.Toggle(ctx, id); err != nil {
		return err
	}

	t, ok := ctrl.Task(id)
	if !ok {
		return fmt.Errorf("task %s disappeared during toggle", id)
	}
	if t.Status == task.StatusCompleted {
		fmt.Printf("Completed %s: %s\n", t.ID, t.Title)
	} else {
		fmt.Printf("Reopened %s: %s\n", t.ID, t.Title)
	}
	return nil
}
