package guardrails

import (
	"context"
	"fmt"
	"sort"

	"github.com/mgoudin/idea-manager/pkg/git"
	"github.com/mgoudin/idea-manager/pkg/idea"
	"github.com/mgoudin/idea-manager/pkg/status"
)

// uniqueIDsCheck verifies that each idea ID maps to at most one branch and
// one pull request.
type uniqueIDsCheck struct {
	git           git.Git
	statusManager status.Manager
}

func newUniqueIDsCheck(git git.Git, statusManager status.Manager) Check {
	return &uniqueIDsCheck{git: git, statusManager: statusManager}
}

// Name returns the check name.
func (c *uniqueIDsCheck) Name() string {
	return "unique-ids"
}

// Run executes the check against repoPath.
func (c *uniqueIDsCheck) Run(_ context.Context, repoPath string) (Result, error) {
	result := Result{Check: c.Name()}

	branches, err := c.git.ListBranches(repoPath, "")
	if err != nil {
		return Result{}, fmt.Errorf("failed to list branches: %w", err)
	}

	branchesByID := make(map[string][]string)
	for _, branch := range branches {
		if id, ok := idea.IDFromBranch(branch); ok {
			branchesByID[id] = append(branchesByID[id], branch)
		}
	}

	ids := make([]string, 0, len(branchesByID))
	for id := range branchesByID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if len(branchesByID[id]) > 1 {
			result.Problems = append(result.Problems,
				fmt.Sprintf("idea %s has %d branches: %v", id, len(branchesByID[id]), branchesByID[id]))
		}
	}

	records, err := c.statusManager.ListIdeas()
	if err != nil {
		return Result{}, fmt.Errorf("failed to list tracked ideas: %w", err)
	}

	prOwners := make(map[int]string)
	for _, record := range records {
		if record.PR == 0 {
			continue
		}
		if other, ok := prOwners[record.PR]; ok {
			result.Problems = append(result.Problems,
				fmt.Sprintf("ideas %s and %s both reference PR #%d", other, record.ID, record.PR))
			continue
		}
		prOwners[record.PR] = record.ID
	}
	return result, nil
}
