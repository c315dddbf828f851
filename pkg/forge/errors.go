package forge

import "errors"

// Forge-specific errors.
var (
	ErrUnsupportedForge = errors.New("unsupported forge")
	ErrNotFound         = errors.New("resource not found on forge")
	ErrUnauthorized     = errors.New("unauthorized access to forge API")
	ErrRateLimited      = errors.New("rate limited by forge API")
	ErrIssueClosed      = errors.New("issue is closed")
	ErrInvalidRemote    = errors.New("origin remote is not a supported forge URL")
)
