package ideamanager

import (
	"fmt"
	"path/filepath"

	"github.com/mgoudin/idea-manager/pkg/config"
	"github.com/mgoudin/idea-manager/pkg/idea"
	"github.com/mgoudin/idea-manager/pkg/status"
)

// Archive moves a merged idea into the archive directory and marks it
// Archived everywhere. Non-merged ideas require force.
func (im *realIdeaManager) Archive(id string, force bool) error {
	id, err := im.resolveID(id)
	if err != nil {
		return err
	}
	return im.executeWithHooks(OpArchive, map[string]interface{}{
		"id":    id,
		"force": force,
	}, func() error {
		return im.archive(id, force)
	})
}

func (im *realIdeaManager) archive(id string, force bool) error {
	cfg, err := im.getConfig()
	if err != nil {
		return err
	}

	parsed, err := im.loadIdea(cfg, id)
	if err != nil {
		return err
	}
	if parsed.Status != idea.StatusMerged && !force {
		return fmt.Errorf("%w: %s is %s", ErrNotMerged, id, parsed.Status)
	}

	archiveDir := cfg.ArchiveDir
	if archiveDir == "" {
		archiveDir = filepath.Join(cfg.IdeasDir, "archive")
	}
	if err := im.deps.FS.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	oldPath := filepath.Join(cfg.IdeasDir, parsed.File)
	newPath := filepath.Join(archiveDir, parsed.File)
	if err := im.deps.FS.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("failed to move %s to archive: %w", parsed.File, err)
	}

	parsed.Status = idea.StatusArchived
	rendered, err := parsed.Render()
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", parsed.ID, err)
	}
	if err := im.deps.FS.WriteFileAtomic(newPath, rendered, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", newPath, err)
	}

	itemID := im.itemIDFor(parsed.ID)
	if err := im.setBoardStatus(cfg, itemID, parsed.Status); err != nil {
		return err
	}

	if err := im.updateArchivedRecord(cfg, parsed, archiveDir, itemID); err != nil {
		return err
	}

	im.VerbosePrint("Archived %s to %s", parsed.ID, newPath)
	return nil
}

// updateArchivedRecord rewrites the index record to point at the archived file.
func (im *realIdeaManager) updateArchivedRecord(
	_ config.Config, parsed *idea.Idea, archiveDir, itemID string,
) error {
	record := status.Record{
		ID:     parsed.ID,
		File:   filepath.Join(archiveDir, parsed.File),
		Status: string(parsed.Status),
		Issue:  parsed.Issue,
		Branch: parsed.Branch,
		PR:     parsed.PR,
		ItemID: itemID,
	}
	if err := im.deps.StatusManager.UpsertIdea(record); err != nil {
		return fmt.Errorf("failed to update status index for %s: %w", parsed.ID, err)
	}
	return nil
}
