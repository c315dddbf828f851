package idea

import "errors"

// Error definitions for idea package.
var (
	// Filename and identity errors.
	ErrInvalidFilename = errors.New("idea filename does not match <TYPE>-<NNN>-<slug>.md")
	ErrInvalidType     = errors.New("invalid idea type")

	// Frontmatter errors.
	ErrMissingFrontmatter = errors.New("idea file has no YAML frontmatter")
	ErrFrontmatterParse   = errors.New("failed to parse idea frontmatter")
	ErrInvalidStatus      = errors.New("invalid idea status")
	ErrInvalidLane        = errors.New("lane must be a single uppercase letter")

	// Body errors.
	ErrMissingTitle   = errors.New("idea file has no top-level title")
	ErrMissingSection = errors.New("idea file is missing a required section")

	// Lifecycle errors.
	ErrInvalidTransition = errors.New("invalid status transition")
)
