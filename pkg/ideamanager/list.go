package ideamanager

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mgoudin/idea-manager/pkg/idea"
)

// IdeaInfo is a listing row for one idea.
type IdeaInfo struct {
	ID             string
	Title          string
	Status         idea.Status
	Lane           string
	Owner          string
	Issue          int
	Branch         string
	PR             int
	File           string
	ChecklistDone  int
	ChecklistTotal int
}

// ListIdeasOpts contains optional filters for the ListIdeas operation.
type ListIdeasOpts struct {
	// Status keeps only ideas in the given lifecycle status.
	Status string
	// Type keeps only ideas of the given type prefix.
	Type string
	// Lane keeps only ideas in the given lane.
	Lane string
}

// ListIdeas lists ideas from the ideas directory, optionally filtered.
func (im *realIdeaManager) ListIdeas(opts ...ListIdeasOpts) ([]IdeaInfo, error) {
	var infos []IdeaInfo

	err := im.executeWithHooks(OpListIdeas, map[string]interface{}{}, func() error {
		var err error
		infos, err = im.listIdeas(opts...)
		return err
	})
	return infos, err
}

func (im *realIdeaManager) listIdeas(opts ...ListIdeasOpts) ([]IdeaInfo, error) {
	cfg, err := im.getConfig()
	if err != nil {
		return nil, err
	}

	var filter ListIdeasOpts
	if len(opts) > 0 {
		filter = opts[0]
	}

	entries, err := im.deps.FS.ReadDir(cfg.IdeasDir)
	if err != nil {
		if im.deps.FS.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read ideas directory: %w", err)
	}

	var infos []IdeaInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") || !idea.ValidFilename(name) {
			continue
		}

		content, err := im.deps.FS.ReadFile(filepath.Join(cfg.IdeasDir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		parsed, err := idea.Parse(name, content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}

		if !matchesFilter(parsed, filter) {
			continue
		}

		done, total := parsed.ChecklistDone()
		infos = append(infos, IdeaInfo{
			ID:             parsed.ID,
			Title:          parsed.Title,
			Status:         parsed.Status,
			Lane:           parsed.Lane,
			Owner:          parsed.Owner,
			Issue:          parsed.Issue,
			Branch:         parsed.Branch,
			PR:             parsed.PR,
			File:           parsed.File,
			ChecklistDone:  done,
			ChecklistTotal: total,
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos, nil
}

// matchesFilter reports whether an idea passes the listing filters.
func matchesFilter(parsed *idea.Idea, filter ListIdeasOpts) bool {
	if filter.Status != "" {
		wanted, err := idea.ParseStatus(filter.Status)
		if err != nil || parsed.Status != wanted {
			return false
		}
	}
	if filter.Type != "" && string(parsed.Type) != filter.Type {
		return false
	}
	if filter.Lane != "" && parsed.Lane != filter.Lane {
		return false
	}
	return true
}
