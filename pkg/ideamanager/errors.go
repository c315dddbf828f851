package ideamanager

import "errors"

// Error definitions for ideamanager package.
var (
	ErrIdeaNotFound      = errors.New("idea not found")
	ErrIdeaAlreadyExists = errors.New("idea file already exists")
	ErrEmptyTitle        = errors.New("idea title cannot be empty")
	ErrNoIssue           = errors.New("idea has no tracking issue: run 'im ticket' first")
	ErrNoBranch          = errors.New("idea has no branch: run 'im branch' first")
	ErrBranchAlreadyOpen = errors.New("idea already has an open branch")
	ErrNotMerged         = errors.New("idea is not merged: use --force to archive anyway")
	ErrDriftFound        = errors.New("status drift found, not applied")
)
