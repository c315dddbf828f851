package ideamanager

import (
	"fmt"

	"github.com/mgoudin/idea-manager/pkg/idea"
)

// CreateBranch creates and checks out the working branch for an idea. Each
// idea has at most one branch; a second branch for the same ID is refused.
func (im *realIdeaManager) CreateBranch(id string) error {
	id, err := im.resolveID(id)
	if err != nil {
		return err
	}
	return im.executeWithHooks(OpCreateBranch, map[string]interface{}{
		"id": id,
	}, func() error {
		return im.createBranch(id)
	})
}

func (im *realIdeaManager) createBranch(id string) error {
	cfg, err := im.getConfig()
	if err != nil {
		return err
	}

	parsed, err := im.loadIdea(cfg, id)
	if err != nil {
		return err
	}
	if parsed.Issue == 0 {
		return fmt.Errorf("%w: %s", ErrNoIssue, id)
	}

	existing, err := im.deps.Git.ListBranches(currentRepoPath, id+"-*")
	if err != nil {
		return fmt.Errorf("failed to list branches: %w", err)
	}
	if len(existing) > 0 {
		return fmt.Errorf("%w: %s", ErrBranchAlreadyOpen, existing[0])
	}

	branch := parsed.BranchName()
	if err := im.deps.Git.CreateBranch(currentRepoPath, branch); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", branch, err)
	}
	if err := im.deps.Git.CheckoutBranch(currentRepoPath, branch); err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branch, err)
	}
	im.VerbosePrint("Created and checked out %s", branch)

	next, err := parsed.Status.Transition(idea.StatusBranched)
	if err != nil {
		return err
	}
	parsed.Status = next
	parsed.Branch = branch

	itemID := im.itemIDFor(parsed.ID)
	if err := im.setBoardStatus(cfg, itemID, parsed.Status); err != nil {
		return err
	}

	return im.saveIdea(cfg, parsed, itemID)
}

// itemIDFor returns the board item ID recorded for an idea, if any.
func (im *realIdeaManager) itemIDFor(id string) string {
	record, err := im.deps.StatusManager.GetIdea(id)
	if err != nil {
		return ""
	}
	return record.ItemID
}
