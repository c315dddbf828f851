package guardrails

import (
	"context"
	"fmt"

	"github.com/mgoudin/idea-manager/pkg/changelog"
	"github.com/mgoudin/idea-manager/pkg/config"
	"github.com/mgoudin/idea-manager/pkg/fs"
)

// changelogCheck verifies that the changelog parses with valid dates and
// strictly descending versions.
type changelogCheck struct {
	cfg config.Config
	fs  fs.FS
}

func newChangelogCheck(cfg config.Config, fs fs.FS) Check {
	return &changelogCheck{cfg: cfg, fs: fs}
}

// Name returns the check name.
func (c *changelogCheck) Name() string {
	return "changelog"
}

// Run executes the check against repoPath.
func (c *changelogCheck) Run(_ context.Context, _ string) (Result, error) {
	result := Result{Check: c.Name()}

	content, err := c.fs.ReadFile(c.cfg.ChangelogFile)
	if err != nil {
		if c.fs.IsNotExist(err) {
			result.Problems = append(result.Problems,
				fmt.Sprintf("%s does not exist", c.cfg.ChangelogFile))
			return result, nil
		}
		return Result{}, fmt.Errorf("failed to read changelog: %w", err)
	}

	parsed, err := changelog.Parse(content)
	if err != nil {
		result.Problems = append(result.Problems,
			fmt.Sprintf("%s does not parse: %v", c.cfg.ChangelogFile, err))
		return result, nil
	}

	if err := parsed.Validate(); err != nil {
		result.Problems = append(result.Problems,
			fmt.Sprintf("%s is invalid: %v", c.cfg.ChangelogFile, err))
	}
	return result, nil
}
