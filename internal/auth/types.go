package auth

import (
	"context"
	"fmt"
)

// User holds the profile details of a signed-in user.
type User struct {
	ID          string
	DisplayName string
	Email       string
	PhotoURL    string
}

// Session scopes store operations to one user. It is passed explicitly to
// every task operation rather than read from package state.
type Session struct {
	UID string
}

// Valid reports whether the session identifies a user.
func (s Session) Valid() bool {
	return s.UID != ""
}

// Session derives the store-facing session for the user.
func (u User) Session() Session {
	return Session{UID: u.ID}
}

// Error wraps identity-provider failures with the operation that hit them.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("auth: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Identity is implemented by identity providers. The zero value of a
// provider is not usable; construct one with its New function.
type Identity interface {
	// CurrentUser returns the signed-in user, or an *Error when no
	// session is active.
	CurrentUser(ctx context.Context) (User, error)

	// SignIn exchanges a provider credential for a session.
	SignIn(ctx context.Context, idToken string) (User, error)

	// SignOut ends the active session. Signing out twice is not an error.
	SignOut(ctx context.Context) error
}
