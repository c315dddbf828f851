// Package config provides configuration management functionality for the IM application.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Config represents the application configuration.
type Config struct {
	// IdeasDir is the directory containing idea markdown files.
	IdeasDir string `yaml:"ideas_dir"`
	// ArchiveDir is the directory archived idea files are moved to.
	ArchiveDir string `yaml:"archive_dir"`
	// ChangelogFile is the path to the changelog merged by `im changelog merge`.
	ChangelogFile string `yaml:"changelog_file"`
	// StatusFile is the path to the local status index.
	StatusFile string `yaml:"status_file"`
	// BaseBranch is the branch pull requests target.
	BaseBranch string `yaml:"base_branch"`
	// ProjectOwner is the GitHub user or organization owning the project board.
	ProjectOwner string `yaml:"project_owner"`
	// ProjectNumber is the GitHub Projects v2 board number.
	ProjectNumber int `yaml:"project_number"`
	// Lanes maps lane letters to owning team names.
	Lanes map[string]string `yaml:"lanes"`
	// CommitPrefixes are the plain subject prefixes accepted beside idea IDs.
	CommitPrefixes []string `yaml:"commit_prefixes"`
	// CommitWindow is how many recent commits guardrails inspect.
	CommitWindow int `yaml:"commit_window"`
	// BranchAllowlist are branch names exempt from the idea branch grammar.
	BranchAllowlist []string `yaml:"branch_allowlist"`
	// ReadmeDirs are directories required to carry a README.md.
	ReadmeDirs []string `yaml:"readme_dirs"`
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.IdeasDir == "" {
		return ErrIdeasDirEmpty
	}
	if c.StatusFile == "" {
		return ErrStatusFileEmpty
	}
	if c.ChangelogFile == "" {
		return ErrChangelogFileEmpty
	}
	if c.ProjectOwner != "" && c.ProjectNumber <= 0 {
		return fmt.Errorf("%w: project_number must be positive when project_owner is set", ErrInvalidProject)
	}
	for lane := range c.Lanes {
		if len(lane) != 1 || lane < "A" || lane > "Z" {
			return fmt.Errorf("%w: %q", ErrInvalidLane, lane)
		}
	}
	return nil
}

// expandTildes expands leading tildes in configured paths to the home directory.
func (c *Config) expandTildes(homeDir string) {
	expand := func(path string) string {
		if path == "~" {
			return homeDir
		}
		if strings.HasPrefix(path, "~/") {
			return filepath.Join(homeDir, path[2:])
		}
		return path
	}

	c.IdeasDir = expand(c.IdeasDir)
	c.ArchiveDir = expand(c.ArchiveDir)
	c.ChangelogFile = expand(c.ChangelogFile)
	c.StatusFile = expand(c.StatusFile)
}
