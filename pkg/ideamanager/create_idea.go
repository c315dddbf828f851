package ideamanager

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mgoudin/idea-manager/pkg/config"
	"github.com/mgoudin/idea-manager/pkg/idea"
	"github.com/mgoudin/idea-manager/pkg/status"
)

// CreateIdeaParams contains parameters for the CreateIdea operation.
type CreateIdeaParams struct {
	Type     idea.Type
	Title    string
	Slug     string
	Lane     string
	Owner    string
	Priority string
}

// slugCleanRegexp strips everything that cannot appear in a slug.
var slugCleanRegexp = regexp.MustCompile(`[^a-z0-9]+`)

// CreateIdea creates a new idea file in Draft status.
func (im *realIdeaManager) CreateIdea(params CreateIdeaParams) (*idea.Idea, error) {
	var created *idea.Idea

	err := im.executeWithHooks(OpCreateIdea, map[string]interface{}{
		"type":  string(params.Type),
		"title": params.Title,
	}, func() error {
		var err error
		created, err = im.createIdea(params)
		return err
	})
	return created, err
}

func (im *realIdeaManager) createIdea(params CreateIdeaParams) (*idea.Idea, error) {
	cfg, err := im.getConfig()
	if err != nil {
		return nil, err
	}

	if _, err := idea.ParseType(string(params.Type)); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Title) == "" {
		return nil, ErrEmptyTitle
	}

	slug := params.Slug
	if slug == "" {
		slug = Slugify(params.Title)
	}

	number, err := im.nextNumber(cfg, params.Type)
	if err != nil {
		return nil, err
	}

	created := &idea.Idea{
		ID:       idea.FormatID(params.Type, number),
		Type:     params.Type,
		Number:   number,
		Slug:     slug,
		File:     idea.Filename(params.Type, number, slug),
		Title:    params.Title,
		Status:   idea.StatusDraft,
		Lane:     params.Lane,
		Owner:    params.Owner,
		Priority: params.Priority,
		Purpose:  "TBD",
		Proposal: "TBD",
	}
	if params.Type == idea.TypeBug {
		created.Problem = "TBD"
	}
	if params.Type == idea.TypeUIPrimitive || params.Type == idea.TypeComposition {
		created.Checklist = []idea.ChecklistItem{
			{Text: "Implemented"},
			{Text: "Documented"},
			{Text: "Tested"},
		}
	}

	rendered, err := created.Render()
	if err != nil {
		return nil, fmt.Errorf("failed to render idea: %w", err)
	}

	if err := im.deps.FS.MkdirAll(cfg.IdeasDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create ideas directory: %w", err)
	}

	path := filepath.Join(cfg.IdeasDir, created.File)
	exists, err := im.deps.FS.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", path, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrIdeaAlreadyExists, created.File)
	}
	if err := im.deps.FS.WriteFileAtomic(path, rendered, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", created.File, err)
	}

	if err := im.deps.StatusManager.UpsertIdea(status.Record{
		ID:     created.ID,
		File:   created.File,
		Status: string(created.Status),
	}); err != nil {
		return nil, fmt.Errorf("failed to update status index for %s: %w", created.ID, err)
	}

	im.VerbosePrint("Created %s (%s)", created.File, created.ID)
	return created, nil
}

// nextNumber returns the first free number for a type, scanning the ideas
// directory so manually added files are accounted for.
func (im *realIdeaManager) nextNumber(cfg config.Config, t idea.Type) (int, error) {
	entries, err := im.deps.FS.ReadDir(cfg.IdeasDir)
	if err != nil {
		if im.deps.FS.IsNotExist(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to read ideas directory: %w", err)
	}

	max := 0
	prefix := string(t) + "-"
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !idea.ValidFilename(name) {
			continue
		}
		var number int
		if _, err := fmt.Sscanf(name[len(prefix):], "%03d", &number); err == nil && number > max {
			max = number
		}
	}
	return max + 1, nil
}

// Slugify derives a filename slug from a title.
func Slugify(title string) string {
	slug := slugCleanRegexp.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
