package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/instrumentation"
)

func newSignoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signout",
		Short: "Sign out and revoke the session",
		Long: `Sign out the current user. Against Firebase this revokes the user's
refresh tokens, so existing ID tokens stop working once they expire.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSignout()
		},
	}
	return cmd
}

func runSignout() error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	if err := signOut(ctx, a.identity, a.user.Email, a.audit); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

// signOut ends the session and records the event.
func signOut(ctx context.Context, identity auth.Identity, email string, audit *instrumentation.AuditLogger) error {
	ctx, span := instrumentation.StartAuthSpan(ctx, "sign_out")
	defer span.End()

	if err := identity.SignOut(ctx); err != nil {
		instrumentation.SetSpanError(span, err)
		audit.LogAuthEvent("sign_out", email, false)
		return fmt.Errorf("signing out: %w", err)
	}
	instrumentation.SetSpanSuccess(span)
	audit.LogAuthEvent("sign_out", email, true)
	return nil
}
