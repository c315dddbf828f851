package reconcile

import "errors"

// Error definitions for reconcile package.
var (
	ErrProjectNotConfigured = errors.New("no project board configured: set project_owner and project_number")
)
