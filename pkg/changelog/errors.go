package changelog

import "errors"

// Error definitions for changelog package.
var (
	ErrOrphanSection         = errors.New("section heading outside a version entry")
	ErrContentOutsideSection = errors.New("entry content outside a section")
	ErrVersionsOutOfOrder    = errors.New("changelog versions are not in descending order")
	ErrInvalidDate           = errors.New("changelog entry has an invalid date")
)
