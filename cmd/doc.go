// Package cmd implements the command-line interface for taskdeck.
//
// This package provides the following commands:
//   - tui: Open the interactive terminal interface (the default)
//   - list: Print tasks, optionally filtered by status or due day
//   - calendar: Print a month of tasks as a grid
//   - stats: Print completion totals
//   - add, edit, done, rm: One-shot task mutations
//   - whoami: Show the signed-in user
//   - version: Display version information
//
// The tui command is the default command when no subcommand is specified.
package cmd
