package game

import "errors"

var (
	// ErrInvalidAction is returned by Step for actions outside the enumeration.
	ErrInvalidAction = errors.New("invalid action")
	// ErrInvalidRenderMode is returned by Render for unknown modes.
	ErrInvalidRenderMode = errors.New("invalid render mode")
	// ErrNoDisplay is returned by Render("human") when no display is attached.
	ErrNoDisplay = errors.New("no display attached")
)
