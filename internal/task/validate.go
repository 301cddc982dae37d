package task

import (
	"fmt"
	"strings"
)

// ValidationError reports input rejected before any store call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate normalizes the input in place and checks it. Titles and
// descriptions are trimmed; a missing status defaults to pending.
func (in *Input) Validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	if in.Title == "" {
		return &ValidationError{Field: "title", Reason: "title is required"}
	}
	if in.Status == "" {
		in.Status = StatusPending
	}
	if !in.Status.Valid() {
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", in.Status)}
	}
	return nil
}

// Validate normalizes and checks a change set. A title set to whitespace is
// rejected rather than allowed to blank out the task.
func (ch *Changes) Validate() error {
	if ch.Title != nil {
		trimmed := strings.TrimSpace(*ch.Title)
		if trimmed == "" {
			return &ValidationError{Field: "title", Reason: "title is required"}
		}
		ch.Title = &trimmed
	}
	if ch.Description != nil {
		trimmed := strings.TrimSpace(*ch.Description)
		ch.Description = &trimmed
	}
	if ch.Status != nil && !ch.Status.Valid() {
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", *ch.Status)}
	}
	return nil
}
