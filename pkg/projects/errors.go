package projects

import "errors"

// Error definitions for projects package.
var (
	ErrProjectNotFound = errors.New("project not found for owner")
	ErrFieldNotFound   = errors.New("project field not found")
	ErrOptionNotFound  = errors.New("project field option not found")
	ErrItemNotFound    = errors.New("project item not found for issue")
	ErrGraphQL         = errors.New("gh api graphql failed")
)
