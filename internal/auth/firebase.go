package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
)

// ErrNoSession is returned by CurrentUser when nobody is signed in.
var ErrNoSession = errors.New("no active session")

// Verifier is a Firebase-backed Identity. It verifies ID tokens minted by
// a Firebase client SDK and revokes refresh tokens on sign-out.
type Verifier struct {
	client *fbauth.Client

	mu   sync.Mutex
	user *User
}

// NewVerifier builds a Verifier from an initialized Firebase app.
func NewVerifier(ctx context.Context, app *firebase.App) (*Verifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, &Error{Op: "init", Err: fmt.Errorf("obtaining auth client: %w", err)}
	}
	return &Verifier{client: client}, nil
}

// CurrentUser returns the user established by the last successful SignIn.
func (v *Verifier) CurrentUser(ctx context.Context) (User, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.user == nil {
		return User{}, &Error{Op: "current-user", Err: ErrNoSession}
	}
	return *v.user, nil
}

// SignIn verifies a Firebase ID token and records the resulting user as
// the active session.
func (v *Verifier) SignIn(ctx context.Context, idToken string) (User, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return User{}, &Error{Op: "sign-in", Err: fmt.Errorf("verifying token: %w", err)}
	}

	user := User{ID: token.UID}
	if name, ok := token.Claims["name"].(string); ok {
		user.DisplayName = name
	}
	if email, ok := token.Claims["email"].(string); ok {
		user.Email = email
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		user.PhotoURL = picture
	}

	v.mu.Lock()
	v.user = &user
	v.mu.Unlock()
	return user, nil
}

// SignOut revokes the user's refresh tokens and clears the session.
// Without an active session it is a no-op.
func (v *Verifier) SignOut(ctx context.Context) error {
	v.mu.Lock()
	user := v.user
	v.user = nil
	v.mu.Unlock()

	if user == nil {
		return nil
	}
	if err := v.client.RevokeRefreshTokens(ctx, user.ID); err != nil {
		return &Error{Op: "sign-out", Err: fmt.Errorf("revoking refresh tokens: %w", err)}
	}
	return nil
}
