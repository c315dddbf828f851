package guardrails

import (
	"context"
	"fmt"

	"github.com/mgoudin/idea-manager/pkg/config"
	"github.com/mgoudin/idea-manager/pkg/git"
	"github.com/mgoudin/idea-manager/pkg/idea"
)

// branchNameCheck verifies that the current branch matches the idea branch
// grammar or the configured allowlist.
type branchNameCheck struct {
	cfg config.Config
	git git.Git
}

func newBranchNameCheck(cfg config.Config, git git.Git) Check {
	return &branchNameCheck{cfg: cfg, git: git}
}

// Name returns the check name.
func (c *branchNameCheck) Name() string {
	return "branch-name"
}

// Run executes the check against repoPath.
func (c *branchNameCheck) Run(_ context.Context, repoPath string) (Result, error) {
	result := Result{Check: c.Name()}

	branch, err := c.git.GetCurrentBranch(repoPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to get current branch: %w", err)
	}

	for _, allowed := range c.cfg.BranchAllowlist {
		if branch == allowed {
			return result, nil
		}
	}

	if !idea.ValidBranchName(branch) {
		result.Problems = append(result.Problems,
			fmt.Sprintf("branch %q matches neither the idea branch grammar nor the allowlist", branch))
	}
	return result, nil
}
