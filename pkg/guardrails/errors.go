package guardrails

import "errors"

// Error definitions for guardrails package.
var (
	ErrUnknownCheck = errors.New("unknown check")
)
