package tui

import "errors"

var (
	// ErrAborted signals the user aborted the session (e.g., Ctrl+C or
	// declining the final confirmation).
	ErrAborted = errors.New("tui: aborted")
)
