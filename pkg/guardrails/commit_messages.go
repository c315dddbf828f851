package guardrails

import (
	"context"
	"fmt"
	"strings"

	"github.com/mgoudin/idea-manager/pkg/config"
	"github.com/mgoudin/idea-manager/pkg/git"
	"github.com/mgoudin/idea-manager/pkg/idea"
)

const defaultCommitWindow = 20

// commitMessagesCheck verifies that recent commit subjects carry an idea ID
// or an allowed plain prefix.
type commitMessagesCheck struct {
	cfg config.Config
	git git.Git
}

func newCommitMessagesCheck(cfg config.Config, git git.Git) Check {
	return &commitMessagesCheck{cfg: cfg, git: git}
}

// Name returns the check name.
func (c *commitMessagesCheck) Name() string {
	return "commit-messages"
}

// Run executes the check against repoPath.
func (c *commitMessagesCheck) Run(_ context.Context, repoPath string) (Result, error) {
	result := Result{Check: c.Name()}

	window := c.cfg.CommitWindow
	if window <= 0 {
		window = defaultCommitWindow
	}

	subjects, err := c.git.RecentSubjects(repoPath, window)
	if err != nil {
		return Result{}, fmt.Errorf("failed to list recent commit subjects: %w", err)
	}

	for _, subject := range subjects {
		if c.subjectAllowed(subject) {
			continue
		}
		result.Problems = append(result.Problems,
			fmt.Sprintf("commit subject %q has no idea ID and no allowed prefix", subject))
	}
	return result, nil
}

// subjectAllowed reports whether a commit subject passes the convention.
func (c *commitMessagesCheck) subjectAllowed(subject string) bool {
	if idea.ValidCommitSubject(subject) {
		return true
	}
	// Merge commits are produced by the forge, not by authors.
	if strings.HasPrefix(subject, "Merge ") {
		return true
	}
	for _, prefix := range c.cfg.CommitPrefixes {
		if strings.HasPrefix(subject, prefix+":") {
			return true
		}
	}
	return false
}
