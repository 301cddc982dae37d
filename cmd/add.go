package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/task"
)

func newAddCmd() *cobra.Command {
	var (
		description string
		due         string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate, err := parseDueFlag(due)
			if err != nil {
				return err
			}
			return runAdd(task.Input{
				Title:       strings.Join(args, " "),
				Description: description,
				DueDate:     dueDate,
			})
		},
	}

	cmd.Flags().StringVarP(&description, "description", "m", "", "Task description")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD or YYYY-MM-DD HH:MM)")
	return cmd
}

func runAdd(in task.Input) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	created, err := a.store.CreateTask(ctx, a.sess, in)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s: %s\n", created.ID, created.Title)
	return nil
}
