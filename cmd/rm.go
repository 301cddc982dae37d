package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newRmCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRm(args[0], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking for confirmation")
	return cmd
}

func runRm(id string, yes bool) error {
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

	t, ok := ctrl.Task(id)
	if !ok {
		return fmt.Errorf("no task with id %s", id)
	}

	if !yes {
		fmt.Printf("Delete task '%s'? [y/N] ", t.Title)
		answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return err
		}
		if s := strings.ToLower(strings.TrimSpace(answer)); s != "y" && s != "yes" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := a.store.DeleteTask(ctx, a.sess, id); err != nil {
		return err
	}
	fmt.Printf("Deleted %s: %s\n", t.ID, t.Title)
	return nil
}
