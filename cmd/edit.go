package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/task"
)

func newEditCmd() *cobra.Command {
	var (
		title       string
		description string
		due         string
		clearDue    bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Edit a task's title, description or due date. Only the fields given
as flags change; the rest keep their values. --clear-due removes the
due date.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ch task.Changes
			if cmd.Flags().Changed("title") {
				ch.Title = &title
			}
			if cmd.Flags().Changed("description") {
				ch.Description = &description
			}
			if cmd.Flags().Changed("due") {
				dueDate, err := parseDueFlag(due)
				if err != nil {
					return err
				}
				if dueDate == nil {
					ch.ClearDueDate = true
				} else {
					ch.DueDate = dueDate
				}
			}
			if clearDue {
				ch.DueDate = nil
				ch.ClearDueDate = true
			}
			return runEdit(args[0], ch)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&description, "description", "m", "", "New description")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD or YYYY-MM-DD HH:MM)")
	cmd.Flags().BoolVar(&clearDue, "clear-due", false, "Remove the due date")
	return cmd
}

func runEdit(id string, ch task.Changes) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	updated, err := a.store.UpdateTask(ctx, a.sess, id, ch)
	if err != nil {
		return err
	}

	fmt.Printf("Updated %s: %s\n", updated.ID, updated.Title)
	return nil
}
