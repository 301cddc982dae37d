// Package task defines the task domain model.
//
// A Task is a user-owned unit of work with a title, an optional description
// and due date, and a completion status. Tasks are created through an Input
// and mutated through a Changes value; both are validated before any store
// call so that a task title is never empty once persisted.
//
// Timestamps follow two invariants: CreatedAt is set once at creation and is
// immutable afterwards, and UpdatedAt is refreshed on every mutation so that
// CreatedAt <= UpdatedAt always holds.
package task
