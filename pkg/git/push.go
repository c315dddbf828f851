package git

import (
	"fmt"
	"os/exec"
)

// Push pushes a branch to origin, setting the upstream.
func (g *realGit) Push(repoPath, branch string) error {
	cmd := exec.Command("git", "push", "-u", "origin", branch)
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git push failed: %w (command: git push -u origin %s, output: %s)",
			err, branch, string(output))
	}

	return nil
}
