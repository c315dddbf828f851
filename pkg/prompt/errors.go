// Package prompt provides interactive prompt functionality for IM.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrInvalidConfirmationInput = errors.New("invalid input: please enter 'y' or 'n'")
	ErrInvalidProjectNumber     = errors.New("invalid project number")
	ErrNoChoices                = errors.New("no choices available")
	ErrSelectionCancelled       = errors.New("selection cancelled")
)
