// Package reconcile compares the lifecycle status recorded in idea files
// against the GitHub Projects v2 board and produces a plan that brings the
// files in line with the board. The board wins.
package reconcile

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mgoudin/idea-manager/pkg/config"
	"github.com/mgoudin/idea-manager/pkg/forge"
	"github.com/mgoudin/idea-manager/pkg/fs"
	"github.com/mgoudin/idea-manager/pkg/idea"
	"github.com/mgoudin/idea-manager/pkg/logger"
	"github.com/mgoudin/idea-manager/pkg/projects"
	"github.com/mgoudin/idea-manager/pkg/status"
)

//go:generate go run go.uber.org/mock/mockgen@v0.4.0 -source=reconcile.go -destination=mockreconcile.gen.go -package=reconcile

// Action is a pending status change for one idea file.
type Action struct {
	// ID is the idea identifier.
	ID string
	// File is the idea file base name.
	File string
	// From is the status recorded in the file.
	From idea.Status
	// To is the status the board carries.
	To idea.Status
}

// Upsert is a pending board insertion for an idea that has an issue but no
// board item yet.
type Upsert struct {
	ID     string
	Issue  int
	Status idea.Status
}

// Plan is the result of comparing idea files against the board.
type Plan struct {
	// Actions are status changes the board dictates.
	Actions []Action
	// Upserts are ideas to add to the board.
	Upserts []Upsert
	// Warnings are ideas that could not be compared.
	Warnings []string
}

// Empty reports whether the plan contains no pending changes.
func (p *Plan) Empty() bool {
	return len(p.Actions) == 0 && len(p.Upserts) == 0
}

// Reconciler plans and applies board-to-file reconciliation.
type Reconciler interface {
	// Plan compares idea files against the board without changing anything.
	Plan(ctx context.Context, repoPath string) (*Plan, error)
	// Apply executes a plan: rewrites idea files, updates the status index
	// and inserts missing board items.
	Apply(ctx context.Context, repoPath string, plan *Plan) error
}

type realReconciler struct {
	cfg           config.Config
	fs            fs.FS
	forge         forge.Forge
	projects      projects.Projects
	statusManager status.Manager
	logger        logger.Logger
}

// NewReconciler creates a new Reconciler instance.
func NewReconciler(
	cfg config.Config,
	fs fs.FS,
	forge forge.Forge,
	projects projects.Projects,
	statusManager status.Manager,
	logger logger.Logger,
) Reconciler {
	return &realReconciler{
		cfg:           cfg,
		fs:            fs,
		forge:         forge,
		projects:      projects,
		statusManager: statusManager,
		logger:        logger,
	}
}

// Plan compares idea files against the board without changing anything.
func (r *realReconciler) Plan(_ context.Context, _ string) (*Plan, error) {
	if r.cfg.ProjectOwner == "" {
		return nil, ErrProjectNotConfigured
	}

	projectID, err := r.projects.ResolveProject(r.cfg.ProjectOwner, r.cfg.ProjectNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project: %w", err)
	}

	items, err := r.projects.ListItems(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list board items: %w", err)
	}
	itemsByIssue := make(map[int]projects.Item, len(items))
	for _, item := range items {
		itemsByIssue[item.IssueNumber] = item
	}

	ideas, err := r.loadIdeas()
	if err != nil {
		return nil, err
	}

	plan := &Plan{}
	for _, parsed := range ideas {
		r.planIdea(plan, parsed, itemsByIssue)
	}
	return plan, nil
}

// planIdea adds the pending change for one idea to the plan.
func (r *realReconciler) planIdea(plan *Plan, parsed *idea.Idea, itemsByIssue map[int]projects.Item) {
	if parsed.Issue == 0 {
		plan.Warnings = append(plan.Warnings,
			fmt.Sprintf("%s: no issue, not tracked on the board", parsed.ID))
		return
	}

	item, ok := itemsByIssue[parsed.Issue]
	if !ok {
		plan.Upserts = append(plan.Upserts, Upsert{
			ID:     parsed.ID,
			Issue:  parsed.Issue,
			Status: parsed.Status,
		})
		return
	}

	boardStatus, err := idea.ParseStatus(item.Status)
	if err != nil {
		plan.Warnings = append(plan.Warnings,
			fmt.Sprintf("%s: board status %q does not parse", parsed.ID, item.Status))
		return
	}

	if boardStatus != parsed.Status {
		plan.Actions = append(plan.Actions, Action{
			ID:   parsed.ID,
			File: parsed.File,
			From: parsed.Status,
			To:   boardStatus,
		})
	}
}

// Apply executes a plan.
func (r *realReconciler) Apply(_ context.Context, repoPath string, plan *Plan) error {
	for _, action := range plan.Actions {
		if err := r.applyAction(action); err != nil {
			return err
		}
		r.logger.Logf("Reconciled %s: %s -> %s", action.ID, action.From, action.To)
	}

	for _, upsert := range plan.Upserts {
		if err := r.applyUpsert(repoPath, upsert); err != nil {
			return err
		}
		r.logger.Logf("Added %s to the board as %s", upsert.ID, upsert.Status)
	}
	return nil
}

// applyAction rewrites one idea file to the board status and updates the index.
func (r *realReconciler) applyAction(action Action) error {
	path := filepath.Join(r.cfg.IdeasDir, action.File)

	content, err := r.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", action.File, err)
	}

	parsed, err := idea.Parse(action.File, content)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", action.File, err)
	}

	// Board wins: bypass the single-step transition rule.
	parsed.Status = action.To

	rendered, err := parsed.Render()
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", action.File, err)
	}
	if err := r.fs.WriteFileAtomic(path, rendered, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", action.File, err)
	}

	return r.upsertRecord(parsed, "")
}

// applyUpsert inserts a missing board item and sets its status field.
func (r *realReconciler) applyUpsert(repoPath string, upsert Upsert) error {
	ref, err := r.forge.RepoFromRemote(repoPath)
	if err != nil {
		return fmt.Errorf("failed to derive repository from remote: %w", err)
	}

	issue, err := r.forge.GetIssue(ref, upsert.Issue)
	if err != nil {
		return fmt.Errorf("failed to fetch issue #%d: %w", upsert.Issue, err)
	}

	projectID, err := r.projects.ResolveProject(r.cfg.ProjectOwner, r.cfg.ProjectNumber)
	if err != nil {
		return fmt.Errorf("failed to resolve project: %w", err)
	}

	itemID, err := r.projects.UpsertItem(projectID, issue.NodeID)
	if err != nil {
		return fmt.Errorf("failed to add issue #%d to the board: %w", upsert.Issue, err)
	}

	fields, err := r.projects.ResolveFields(projectID)
	if err != nil {
		return fmt.Errorf("failed to resolve project fields: %w", err)
	}
	fieldID, err := fields.FieldID(projects.StatusFieldName)
	if err != nil {
		return err
	}
	optionID, err := fields.OptionID(projects.StatusFieldName, string(upsert.Status))
	if err != nil {
		return err
	}
	if err := r.projects.SetSingleSelect(projectID, itemID, fieldID, optionID); err != nil {
		return fmt.Errorf("failed to set board status for %s: %w", upsert.ID, err)
	}

	record, err := r.statusManager.GetIdea(upsert.ID)
	if err == nil {
		record.ItemID = itemID
		return r.statusManager.UpsertIdea(*record)
	}
	return nil
}

// upsertRecord refreshes the status index entry for a parsed idea.
func (r *realReconciler) upsertRecord(parsed *idea.Idea, itemID string) error {
	record := status.Record{
		ID:     parsed.ID,
		File:   parsed.File,
		Status: string(parsed.Status),
		Issue:  parsed.Issue,
		Branch: parsed.Branch,
		PR:     parsed.PR,
		ItemID: itemID,
	}
	if itemID == "" {
		if existing, err := r.statusManager.GetIdea(parsed.ID); err == nil {
			record.ItemID = existing.ItemID
		}
	}
	if err := r.statusManager.UpsertIdea(record); err != nil {
		return fmt.Errorf("failed to update status index for %s: %w", parsed.ID, err)
	}
	return nil
}

// loadIdeas parses every idea file in the ideas directory, sorted by ID.
func (r *realReconciler) loadIdeas() ([]*idea.Idea, error) {
	entries, err := r.fs.ReadDir(r.cfg.IdeasDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read ideas directory: %w", err)
	}

	var ideas []*idea.Idea
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") || !idea.ValidFilename(name) {
			continue
		}

		content, err := r.fs.ReadFile(filepath.Join(r.cfg.IdeasDir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		parsed, err := idea.Parse(name, content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		ideas = append(ideas, parsed)
	}

	sort.Slice(ideas, func(i, j int) bool { return ideas[i].ID < ideas[j].ID })
	return ideas, nil
}
