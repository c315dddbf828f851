package guardrails

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mgoudin/idea-manager/pkg/config"
	"github.com/mgoudin/idea-manager/pkg/fs"
)

// readmePresenceCheck verifies that configured directories carry a README.md.
type readmePresenceCheck struct {
	cfg config.Config
	fs  fs.FS
}

func newReadmePresenceCheck(cfg config.Config, fs fs.FS) Check {
	return &readmePresenceCheck{cfg: cfg, fs: fs}
}

// Name returns the check name.
func (c *readmePresenceCheck) Name() string {
	return "readme-presence"
}

// Run executes the check against repoPath.
func (c *readmePresenceCheck) Run(_ context.Context, repoPath string) (Result, error) {
	result := Result{Check: c.Name()}

	for _, dir := range c.cfg.ReadmeDirs {
		readme := filepath.Join(repoPath, dir, "README.md")
		exists, err := c.fs.Exists(readme)
		if err != nil {
			return Result{}, fmt.Errorf("failed to check %s: %w", readme, err)
		}
		if !exists {
			result.Problems = append(result.Problems,
				fmt.Sprintf("%s has no README.md", dir))
		}
	}
	return result, nil
}
