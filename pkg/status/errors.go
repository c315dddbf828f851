package status

import "errors"

// Error definitions for status package.
var (
	ErrIdeaNotFound            = errors.New("idea not found in status file")
	ErrEmptyID                 = errors.New("idea record must carry an ID")
	ErrStatusFileNotConfigured = errors.New("status file path is not configured")
)
