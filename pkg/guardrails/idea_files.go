package guardrails

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgoudin/idea-manager/pkg/config"
	"github.com/mgoudin/idea-manager/pkg/fs"
	"github.com/mgoudin/idea-manager/pkg/idea"
)

// ideaFilesCheck verifies that every file in the ideas directory matches the
// filename grammar, parses and carries the required sections and a known lane.
type ideaFilesCheck struct {
	cfg config.Config
	fs  fs.FS
}

func newIdeaFilesCheck(cfg config.Config, fs fs.FS) Check {
	return &ideaFilesCheck{cfg: cfg, fs: fs}
}

// Name returns the check name.
func (c *ideaFilesCheck) Name() string {
	return "idea-files"
}

// Run executes the check against repoPath.
func (c *ideaFilesCheck) Run(_ context.Context, _ string) (Result, error) {
	result := Result{Check: c.Name()}

	entries, err := c.fs.ReadDir(c.cfg.IdeasDir)
	if err != nil {
		if c.fs.IsNotExist(err) {
			result.Problems = append(result.Problems,
				fmt.Sprintf("ideas directory %s does not exist", c.cfg.IdeasDir))
			return result, nil
		}
		return Result{}, fmt.Errorf("failed to read ideas directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		result.Problems = append(result.Problems, c.checkFile(entry.Name())...)
	}
	return result, nil
}

// checkFile validates a single idea file and returns its problems.
func (c *ideaFilesCheck) checkFile(name string) []string {
	if !idea.ValidFilename(name) {
		return []string{fmt.Sprintf("%s: filename does not match the idea grammar", name)}
	}

	content, err := c.fs.ReadFile(filepath.Join(c.cfg.IdeasDir, name))
	if err != nil {
		return []string{fmt.Sprintf("%s: failed to read: %v", name, err)}
	}

	parsed, err := idea.Parse(name, content)
	if err != nil {
		return []string{fmt.Sprintf("%s: failed to parse: %v", name, err)}
	}

	var problems []string
	for _, section := range parsed.MissingSections() {
		problems = append(problems, fmt.Sprintf("%s: missing section %q", name, section))
	}
	if parsed.Lane != "" && len(c.cfg.Lanes) > 0 {
		if _, ok := c.cfg.Lanes[parsed.Lane]; !ok {
			problems = append(problems, fmt.Sprintf("%s: unknown lane %q", name, parsed.Lane))
		}
	}
	return problems
}
