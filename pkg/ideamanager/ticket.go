package ideamanager

import (
	"fmt"

	"github.com/mgoudin/idea-manager/pkg/config"
	"github.com/mgoudin/idea-manager/pkg/forge"
	"github.com/mgoudin/idea-manager/pkg/idea"
)

// Ticket creates the tracking issue for an idea and puts it on the board.
// The operation is idempotent: an existing issue is reused and re-adding an
// issue to the board returns the existing item.
func (im *realIdeaManager) Ticket(id string) error {
	id, err := im.resolveID(id)
	if err != nil {
		return err
	}
	return im.executeWithHooks(OpTicket, map[string]interface{}{
		"id": id,
	}, func() error {
		return im.ticket(id)
	})
}

func (im *realIdeaManager) ticket(id string) error {
	cfg, err := im.getConfig()
	if err != nil {
		return err
	}

	parsed, err := im.loadIdea(cfg, id)
	if err != nil {
		return err
	}

	f, ref, err := im.forgeForRepo()
	if err != nil {
		return err
	}

	issue, err := im.ensureIssue(f, ref, parsed)
	if err != nil {
		return err
	}
	parsed.Issue = issue.Number

	itemID, err := im.ensureBoardItem(cfg, issue)
	if err != nil {
		return err
	}
	if itemID == "" {
		itemID = im.itemIDFor(parsed.ID)
	}

	if parsed.Status == idea.StatusDraft {
		next, err := parsed.Status.Transition(idea.StatusTicketed)
		if err != nil {
			return err
		}
		parsed.Status = next
	}

	if err := im.setBoardStatus(cfg, itemID, parsed.Status); err != nil {
		return err
	}

	return im.saveIdea(cfg, parsed, itemID)
}

// ensureIssue returns the idea's tracking issue, creating it when missing.
func (im *realIdeaManager) ensureIssue(f forge.Forge, ref forge.RepoRef, parsed *idea.Idea) (*forge.IssueInfo, error) {
	if parsed.Issue != 0 {
		im.VerbosePrint("%s already has issue #%d", parsed.ID, parsed.Issue)
		issue, err := f.GetIssue(ref, parsed.Issue)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch issue #%d: %w", parsed.Issue, err)
		}
		return issue, nil
	}

	title := forge.BuildIssueTitle(parsed)
	body, err := forge.BuildIssueBody(parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to build issue body: %w", err)
	}

	var labels []string
	if parsed.Lane != "" {
		labels = append(labels, "lane-"+parsed.Lane)
	}

	issue, err := f.CreateIssue(ref, title, body, labels)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}
	im.VerbosePrint("Created issue #%d for %s", issue.Number, parsed.ID)
	return issue, nil
}

// ensureBoardItem adds the issue to the board and waits for the item to be
// visible. Returns an empty item ID when no board is configured.
func (im *realIdeaManager) ensureBoardItem(cfg config.Config, issue *forge.IssueInfo) (string, error) {
	if cfg.ProjectOwner == "" {
		return "", nil
	}

	projectID, err := im.deps.Projects.ResolveProject(cfg.ProjectOwner, cfg.ProjectNumber)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project: %w", err)
	}

	itemID, err := im.deps.Projects.UpsertItem(projectID, issue.NodeID)
	if err != nil {
		return "", fmt.Errorf("failed to add issue #%d to the board: %w", issue.Number, err)
	}

	// The board is eventually consistent after an upsert.
	if _, err := im.deps.Projects.WaitForItem(projectID, issue.Number); err != nil {
		return "", fmt.Errorf("board item for issue #%d did not appear: %w", issue.Number, err)
	}
	return itemID, nil
}
