// Package git provides Git operations and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrBranchNotFound     = errors.New("branch not found")
	ErrBranchExists       = errors.New("branch already exists")
	ErrRepositoryNotClean = errors.New("repository is not clean")
	ErrNotARepository     = errors.New("not a git repository")
)
