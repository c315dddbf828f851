package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// ConfigGet executes `git config --get <key>` in specified directory.
func (g *realGit) ConfigGet(workDir, key string) (string, error) {
	cmd := exec.Command("git", "config", "--get", key)
	cmd.Dir = workDir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git config --get failed: %w (command: git config --get %s, output: %s)",
			err, key, string(output))
	}

	return strings.TrimSpace(string(output)), nil
}
