package ideamanager

import (
	"fmt"

	"github.com/mgoudin/idea-manager/pkg/forge"
	"github.com/mgoudin/idea-manager/pkg/idea"
)

// OpenPROpts contains optional parameters for the OpenPR operation.
type OpenPROpts struct {
	Draft bool
}

// OpenPR opens the pull request for an idea's branch. An already-open pull
// request for the branch is reused.
func (im *realIdeaManager) OpenPR(id string, opts ...OpenPROpts) error {
	id, err := im.resolveID(id)
	if err != nil {
		return err
	}
	return im.executeWithHooks(OpOpenPR, map[string]interface{}{
		"id": id,
	}, func() error {
		return im.openPR(id, opts...)
	})
}

func (im *realIdeaManager) openPR(id string, opts ...OpenPROpts) error {
	cfg, err := im.getConfig()
	if err != nil {
		return err
	}

	parsed, err := im.loadIdea(cfg, id)
	if err != nil {
		return err
	}
	if parsed.Branch == "" {
		return fmt.Errorf("%w: %s", ErrNoBranch, id)
	}

	f, ref, err := im.forgeForRepo()
	if err != nil {
		return err
	}

	if err := im.deps.Git.Push(currentRepoPath, parsed.Branch); err != nil {
		return fmt.Errorf("failed to push %s: %w", parsed.Branch, err)
	}

	pr, err := im.ensurePullRequest(f, ref, cfg.BaseBranch, parsed, opts...)
	if err != nil {
		return err
	}
	parsed.PR = pr.Number

	next, err := parsed.Status.Transition(idea.StatusPROpen)
	if err != nil {
		return err
	}
	parsed.Status = next

	itemID := im.itemIDFor(parsed.ID)
	if err := im.setBoardStatus(cfg, itemID, parsed.Status); err != nil {
		return err
	}

	return im.saveIdea(cfg, parsed, itemID)
}

// ensurePullRequest returns the open pull request for the idea's branch,
// creating one when missing.
func (im *realIdeaManager) ensurePullRequest(
	f forge.Forge, ref forge.RepoRef, base string, parsed *idea.Idea, opts ...OpenPROpts,
) (*forge.PullRequestInfo, error) {
	existing, err := f.FindOpenPullRequest(ref, parsed.Branch)
	if err != nil {
		return nil, fmt.Errorf("failed to look up pull requests for %s: %w", parsed.Branch, err)
	}
	if existing != nil {
		im.VerbosePrint("%s already has open PR #%d", parsed.ID, existing.Number)
		return existing, nil
	}

	body, err := forge.BuildPRBody(parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to build PR body: %w", err)
	}

	draft := false
	if len(opts) > 0 {
		draft = opts[0].Draft
	}

	pr, err := f.CreatePullRequest(ref, forge.CreatePullRequestParams{
		Head:  parsed.Branch,
		Base:  base,
		Title: forge.BuildPRTitle(parsed),
		Body:  body,
		Draft: draft,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pull request: %w", err)
	}
	im.VerbosePrint("Opened PR #%d for %s", pr.Number, parsed.ID)
	return pr, nil
}
