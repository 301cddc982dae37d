package auth

import "context"

// Static is an Identity that always reports one fixed user. It backs demo
// mode and tests, where no external provider is reachable.
type Static struct {
	User User

	signedOut bool
}

// NewStatic returns a Static identity for the given user.
func NewStatic(user User) *Static {
	return &Static{User: user}
}

func (s *Static) CurrentUser(ctx context.Context) (User, error) {
	if s.signedOut {
		return User{}, &Error{Op: "current-user", Err: ErrNoSession}
	}
	return s.User, nil
}

func (s *Static) SignIn(ctx context.Context, idToken string) (User, error) {
	s.signedOut = false
	return s.User, nil
}

func (s *Static) SignOut(ctx context.Context) error {
	s.signedOut = true
	return nil
}
