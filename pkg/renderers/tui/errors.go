package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNilRoot is returned when Fill or Render receive no fieldset.
	ErrNilRoot = errors.New("tui: root fieldset is nil")
)
