package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoForm is returned by Run without a form.
	ErrNoForm = errors.New("tui: form is required")
)
