// Package ideamanager orchestrates the idea lifecycle: file creation, issue
// ticketing, branch and pull request automation, board reconciliation,
// changelog merging and guardrail checks.
package ideamanager

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgoudin/idea-manager/pkg/config"
	"github.com/mgoudin/idea-manager/pkg/dependencies"
	"github.com/mgoudin/idea-manager/pkg/forge"
	"github.com/mgoudin/idea-manager/pkg/hooks"
	"github.com/mgoudin/idea-manager/pkg/idea"
	"github.com/mgoudin/idea-manager/pkg/logger"
	"github.com/mgoudin/idea-manager/pkg/projects"
	"github.com/mgoudin/idea-manager/pkg/reconcile"
	"github.com/mgoudin/idea-manager/pkg/status"

	"github.com/mgoudin/idea-manager/pkg/guardrails"
)

//go:generate go run go.uber.org/mock/mockgen@v0.4.0 -source=idea_manager.go -destination=mockideamanager.gen.go -package=ideamanager

// Hook operation names.
const (
	OpCreateIdea     = "create_idea"
	OpTicket         = "ticket"
	OpCreateBranch   = "create_branch"
	OpOpenPR         = "open_pr"
	OpReconcile      = "reconcile"
	OpMergeChangelog = "merge_changelog"
	OpArchive        = "archive"
	OpListIdeas      = "list_ideas"
	OpCheck          = "check"
	OpInit           = "init"
)

// currentRepoPath is the repository all operations act on.
const currentRepoPath = "."

// IdeaManager interface provides idea lifecycle operations.
type IdeaManager interface {
	// CreateIdea creates a new idea file in Draft status.
	CreateIdea(params CreateIdeaParams) (*idea.Idea, error)
	// Ticket creates the tracking issue for an idea and puts it on the board.
	Ticket(id string) error
	// CreateBranch creates and checks out the working branch for an idea.
	CreateBranch(id string) error
	// OpenPR opens (or finds) the pull request for an idea's branch.
	OpenPR(id string, opts ...OpenPROpts) error
	// Reconcile compares idea files against the board; apply rewrites them.
	Reconcile(apply bool) (*reconcile.Plan, error)
	// MergeChangelog merges a release fragment into the changelog.
	MergeChangelog(fragmentPath string) error
	// Archive moves a merged idea into the archive directory.
	Archive(id string, force bool) error
	// ListIdeas lists ideas, optionally filtered.
	ListIdeas(opts ...ListIdeasOpts) ([]IdeaInfo, error)
	// Check runs the named guardrail checks, or all of them.
	Check(names []string) ([]guardrails.Result, error)
	// Init initializes IM configuration.
	Init(opts InitOpts) error
	// SetLogger sets the logger for this IM instance.
	SetLogger(logger logger.Logger)
}

// NewIdeaManagerParams contains parameters for creating a new IdeaManager instance.
type NewIdeaManagerParams struct {
	Dependencies *dependencies.Dependencies
}

type realIdeaManager struct {
	deps *dependencies.Dependencies
}

// NewIdeaManager creates a new IdeaManager instance.
func NewIdeaManager(params NewIdeaManagerParams) (IdeaManager, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	return &realIdeaManager{
		deps: deps,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (im *realIdeaManager) VerbosePrint(msg string, args ...interface{}) {
	if im.deps.Logger != nil {
		im.deps.Logger.Logf(msg, args...)
	}
}

// SetLogger sets the logger for this IdeaManager instance.
func (im *realIdeaManager) SetLogger(logger logger.Logger) {
	im.deps.Logger = logger
}

// getConfig loads the configuration from the ConfigManager.
func (im *realIdeaManager) getConfig() (config.Config, error) {
	return im.deps.Config.GetConfig()
}

// executeWithHooks executes an operation with pre and post hooks.
func (im *realIdeaManager) executeWithHooks(
	operationName string, params map[string]interface{}, operation func() error) error {
	ctx := &hooks.HookContext{
		OperationName: operationName,
		Parameters:    params,
		Results:       make(map[string]interface{}),
		Metadata:      make(map[string]interface{}),
	}
	// Execute pre-hooks (if hook manager is available)
	if err := im.executePreHooks(operationName, ctx); err != nil {
		return err
	}
	// Execute operation
	var resultErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				resultErr = fmt.Errorf("panic in %s: %v", operationName, r)
			}
		}()
		resultErr = operation()
	}()
	// Update context with results
	ctx.Error = resultErr
	if resultErr == nil {
		ctx.Results["success"] = true
	}
	// Execute post-hooks or error-hooks (if hook manager is available)
	if hookErr := im.executeHooks(operationName, ctx, resultErr); hookErr != nil {
		return hookErr
	}
	return resultErr
}

// executeHooks executes post-hooks or error-hooks based on the operation result.
func (im *realIdeaManager) executeHooks(operationName string, ctx *hooks.HookContext, resultErr error) error {
	if im.deps.HookManager == nil {
		return nil
	}

	if resultErr != nil {
		return im.deps.HookManager.ExecuteErrorHooks(operationName, ctx)
	}
	return im.deps.HookManager.ExecutePostHooks(operationName, ctx)
}

// executePreHooks executes pre-hooks if hook manager is available.
func (im *realIdeaManager) executePreHooks(operationName string, ctx *hooks.HookContext) error {
	if im.deps.HookManager == nil {
		return nil
	}
	return im.deps.HookManager.ExecutePreHooks(operationName, ctx)
}

// loadIdea finds and parses the idea file for an ID.
func (im *realIdeaManager) loadIdea(cfg config.Config, id string) (*idea.Idea, error) {
	entries, err := im.deps.FS.ReadDir(cfg.IdeasDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read ideas directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, id+"-") || !idea.ValidFilename(name) {
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
		return parsed, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrIdeaNotFound, id)
}

// saveIdea rewrites the idea file and refreshes the status index. Callers
// resolve the board item ID beforehand; it is written through as-is.
func (im *realIdeaManager) saveIdea(cfg config.Config, parsed *idea.Idea, itemID string) error {
	rendered, err := parsed.Render()
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", parsed.ID, err)
	}

	path := filepath.Join(cfg.IdeasDir, parsed.File)
	if err := im.deps.FS.WriteFileAtomic(path, rendered, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", parsed.File, err)
	}

	record := status.Record{
		ID:     parsed.ID,
		File:   parsed.File,
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

// forgeForRepo returns the forge implementation and repository reference for
// the current repository.
func (im *realIdeaManager) forgeForRepo() (forge.Forge, forge.RepoRef, error) {
	f, err := im.deps.ForgeManager.GetForgeForRepository(currentRepoPath)
	if err != nil {
		return nil, forge.RepoRef{}, fmt.Errorf("failed to detect forge: %w", err)
	}
	ref, err := f.RepoFromRemote(currentRepoPath)
	if err != nil {
		return nil, forge.RepoRef{}, fmt.Errorf("failed to derive repository from remote: %w", err)
	}
	return f, ref, nil
}

// setBoardStatus sets the board Status field for an item, resolving the
// project and field IDs. No-op when no board is configured.
func (im *realIdeaManager) setBoardStatus(cfg config.Config, itemID string, newStatus idea.Status) error {
	if cfg.ProjectOwner == "" || itemID == "" {
		return nil
	}

	projectID, err := im.deps.Projects.ResolveProject(cfg.ProjectOwner, cfg.ProjectNumber)
	if err != nil {
		return fmt.Errorf("failed to resolve project: %w", err)
	}
	fields, err := im.deps.Projects.ResolveFields(projectID)
	if err != nil {
		return fmt.Errorf("failed to resolve project fields: %w", err)
	}
	fieldID, err := fields.FieldID(projects.StatusFieldName)
	if err != nil {
		return err
	}
	optionID, err := fields.OptionID(projects.StatusFieldName, string(newStatus))
	if err != nil {
		return err
	}
	return im.deps.Projects.SetSingleSelect(projectID, itemID, fieldID, optionID)
}
