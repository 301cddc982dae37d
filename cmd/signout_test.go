package cmd

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/instrumentation"
)

func TestSignOutEndsSessionAndAudits(t *testing.T) {
	ident := auth.NewStatic(auth.User{ID: "u1", Email: "alice@example.com"})

	var buf bytes.Buffer
	audit := instrumentation.NewAuditLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	if err := signOut(context.Background(), ident, "alice@example.com", audit); err != nil {
		t.Fatalf("signOut: %v", err)
	}

	if _, err := ident.CurrentUser(context.Background()); !errors.Is(err, auth.ErrNoSession) {
		t.Errorf("expected no active session after sign-out, got %v", err)
	}

	logged := buf.String()
	if !strings.Contains(logged, "sign_out") {
		t.Errorf("expected a sign_out audit record, got %q", logged)
	}
	if !strings.Contains(logged, "user_domain=example.com") {
		t.Errorf("expected the user domain in the audit record, got %q", logged)
	}
}

func TestSignOutTwiceIsNotAnError(t *testing.T) {
	ident := auth.NewStatic(auth.User{ID: "u1", Email: "alice@example.com"})
	audit := instrumentation.NewAuditLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	ctx := context.Background()
	if err := signOut(ctx, ident, "alice@example.com", audit); err != nil {
		t.Fatalf("first signOut: %v", err)
	}
	if err := signOut(ctx, ident, "alice@example.com", audit); err != nil {
		t.Fatalf("second signOut: %v", err)
	}
}
