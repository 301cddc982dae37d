package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/engine"
)

func newCalendarCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print a month of tasks as a grid",
		Long: `Print the tasks of one month laid out as a Sunday-first calendar grid.
Each day shows how many tasks are due; the days with tasks are listed
below the grid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor, err := parseMonthFlag(month, time.Now())
			if err != nil {
				return err
			}
			return runCalendar(engine.MonthOf(anchor))
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show (YYYY-MM, default: current)")
	return cmd
}

func runCalendar(month engine.Month) error {
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

	cells := engine.Grid(ctrl.Tasks(), month)

	fmt.Println(month.String())
	fmt.Println("Sun   Mon   Tue   Wed   Thu   Fri   Sat")

	for row := 0; row < len(cells)/7; row++ {
		var line strings.Builder
		for col := 0; col < 7; col++ {
			cell := cells[row*7+col]
			switch {
			case cell.Padding():
				line.WriteString("      ")
			case len(cell.Tasks) > 0:
				line.WriteString(fmt.Sprintf("%2d(%d) ", cell.Day, len(cell.Tasks)))
			default:
				line.WriteString(fmt.Sprintf("%2d    ", cell.Day))
			}
		}
		fmt.Println(strings.TrimRight(line.String(), " "))
	}

	// List the days that hold tasks
	printed := false
	for _, cell := range cells {
		if cell.Padding() || len(cell.Tasks) == 0 {
			continue
		}
		if !printed {
			fmt.Println()
			printed = true
		}
		var titles []string
		for i, t := range cell.Tasks {
			if i == 2 {
				titles = append(titles, fmt.Sprintf("+%d more", len(cell.Tasks)-2))
				break
			}
			titles = append(titles, t.Title)
		}
		fmt.Printf("%s: %s\n", cell.Date.Format("Jan 2"), strings.Join(titles, ", "))
	}
	return nil
}
