package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/engine"
	"github.com/taskdeck/taskdeck/internal/task"
)

func newListCmd() *cobra.Command {
	var (
		status string
		date   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print your tasks",
		Long: `Print your tasks, newest first. Use --status to restrict the list to
pending or completed tasks and --date to show only tasks due on one day.
The two filters combine.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := engine.StatusFilter(status)
			if !filter.Valid() {
				return fmt.Errorf("unknown status %q (expected all, pending or completed)", status)
			}
			day, err := parseDayFlag(date)
			if err != nil {
				return err
			}
			return runList(filter, day)
		},
	}

	cmd.Flags().StringVar(&status, "status", "all", "Filter by status: all, pending or completed")
	cmd.Flags().StringVar(&date, "date", "", "Only tasks due on this day (YYYY-MM-DD)")
	return cmd
}

func runList(filter engine.StatusFilter, day *time.Time) error {
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

	tasks := engine.Filter(ctrl.Tasks(), filter, day)
	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, t := range tasks {
		box := "[ ]"
		if t.Status == task.StatusCompleted {
			box = "[x]"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", box, t.ID, t.Title, engine.DescribeDue(t, now))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	stats := ctrl.Stats()
	fmt.Printf("\n%d total, %d completed, %d pending\n", stats.Total, stats.Completed, stats.Pending)
	return nil
}
