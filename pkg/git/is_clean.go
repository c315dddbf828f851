package git

import (
	"strings"
)

// IsClean checks if the repository has no uncommitted changes.
func (g *realGit) IsClean(repoPath string) (bool, error) {
	output, err := g.Status(repoPath)
	if err != nil {
		return false, err
	}

	return strings.TrimSpace(output) == "", nil
}
