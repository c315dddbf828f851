package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrIdeasDirEmpty      = errors.New("ideas_dir cannot be empty")
	ErrStatusFileEmpty    = errors.New("status_file cannot be empty")
	ErrChangelogFileEmpty = errors.New("changelog_file cannot be empty")
	ErrInvalidProject     = errors.New("invalid project configuration")
	ErrInvalidLane        = errors.New("lanes must be keyed by a single uppercase letter")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("IM configuration not found. Run 'im init' to initialize")
)
