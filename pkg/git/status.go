package git

import (
	"fmt"
	"os/exec"
)

// Status returns the porcelain status of the work tree, one line per change.
func (g *realGit) Status(workDir string) (string, error) {
	cmd := exec.Command("git", "status", "--porcelain")
	cmd.Dir = workDir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git status --porcelain failed: %w (output: %s)", err, string(output))
	}

	return string(output), nil
}
