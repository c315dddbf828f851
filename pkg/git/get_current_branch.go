package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// GetCurrentBranch gets the current branch name.
func (g *realGit) GetCurrentBranch(repoPath string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git rev-parse failed: %w (command: git rev-parse --abbrev-ref HEAD, output: %s)",
			err, string(output))
	}

	return strings.TrimSpace(string(output)), nil
}
