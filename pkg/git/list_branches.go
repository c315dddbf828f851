package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// ListBranches lists local branch names matching a pattern.
func (g *realGit) ListBranches(repoPath, pattern string) ([]string, error) {
	args := []string{"branch", "--list", "--format", "%(refname:short)"}
	if pattern != "" {
		args = append(args, pattern)
	}
	cmd := exec.Command("git", args...)
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git branch --list failed: %w (command: git %s, output: %s)",
			err, strings.Join(args, " "), string(output))
	}

	var branches []string
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			branches = append(branches, line)
		}
	}
	return branches, nil
}
