package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newWhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami()
		},
	}
	return cmd
}

func runWhoami() error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	fmt.Printf("User ID: %s\n", a.user.ID)
	if a.user.DisplayName != "" {
		fmt.Printf("Name:    %s\n", a.user.DisplayName)
	}
	if a.user.Email != "" {
		fmt.Printf("Email:   %s\n", a.user.Email)
	}
	return nil
}
