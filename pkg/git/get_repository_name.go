package git

import (
	"fmt"
	"path/filepath"
	"strings"
)

// GetRepositoryName gets the repository name from remote origin URL with fallback to local path.
func (g *realGit) GetRepositoryName(repoPath string) (string, error) {
	originURL, err := g.ConfigGet(repoPath, "remote.origin.url")
	if err == nil {
		if repoName := extractRepoNameFromURL(strings.TrimSpace(originURL)); repoName != "" {
			return repoName, nil
		}
	}

	// Fallback to local repository path
	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	return strings.TrimSuffix(filepath.Base(absPath), ".git"), nil
}
