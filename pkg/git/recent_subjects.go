package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// RecentSubjects returns the subjects of the last count commits, newest first.
func (g *realGit) RecentSubjects(repoPath string, count int) ([]string, error) {
	cmd := exec.Command("git", "log", fmt.Sprintf("-%d", count), "--pretty=format:%s")
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git log failed: %w (command: git log -%d --pretty=format:%%s, output: %s)",
			err, count, string(output))
	}

	var subjects []string
	for _, line := range strings.Split(string(output), "\n") {
		if line != "" {
			subjects = append(subjects, line)
		}
	}
	return subjects, nil
}
