// Package dependencies provides a centralized dependency container for the IM application.
// This package follows Go idioms for dependency injection by grouping related dependencies
// together and providing a fluent API for configuration.
package dependencies

import (
	"errors"

	"github.com/mgoudin/idea-manager/pkg/config"
	"github.com/mgoudin/idea-manager/pkg/forge"
	"github.com/mgoudin/idea-manager/pkg/fs"
	"github.com/mgoudin/idea-manager/pkg/git"
	"github.com/mgoudin/idea-manager/pkg/hooks"
	"github.com/mgoudin/idea-manager/pkg/logger"
	"github.com/mgoudin/idea-manager/pkg/projects"
	"github.com/mgoudin/idea-manager/pkg/prompt"
	"github.com/mgoudin/idea-manager/pkg/status"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing            = errors.New("fs dependency is required but not set")
	ErrGitMissing           = errors.New("git dependency is required but not set")
	ErrConfigMissing        = errors.New("config dependency is required but not set")
	ErrStatusManagerMissing = errors.New("status manager dependency is required but not set")
	ErrLoggerMissing        = errors.New("logger dependency is required but not set")
	ErrPromptMissing        = errors.New("prompt dependency is required but not set")
	ErrHookManagerMissing   = errors.New("hook manager dependency is required but not set")
	ErrForgeManagerMissing  = errors.New("forge manager dependency is required but not set")
	ErrProjectsMissing      = errors.New("projects dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
// This follows the Go idiom of grouping related data together.
type Dependencies struct {
	FS            fs.FS
	Git           git.Git
	Config        config.Manager
	StatusManager status.Manager
	Logger        logger.Logger
	Prompt        prompt.Prompter
	HookManager   hooks.HookManagerInterface
	ForgeManager  forge.ManagerInterface
	Projects      projects.Projects
}

// New creates a new Dependencies instance with sensible defaults.
// This follows Go's convention of New* functions for constructors.
func New() *Dependencies {
	log := logger.NewNoopLogger()
	return &Dependencies{
		FS:           fs.NewFS(),
		Git:          git.NewGit(),
		Logger:       log,
		Prompt:       prompt.NewPrompt(),
		HookManager:  hooks.NewHookManager(),
		ForgeManager: forge.NewManager(log),
		Projects:     projects.NewProjects(log),
		// Note: Config and StatusManager are intentionally left nil
		// as they require specific configuration paths
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithStatusManager sets the status manager and returns the instance for chaining.
func (d *Dependencies) WithStatusManager(sm status.Manager) *Dependencies {
	d.StatusManager = sm
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithHookManager sets the hook manager and returns the instance for chaining.
func (d *Dependencies) WithHookManager(hm hooks.HookManagerInterface) *Dependencies {
	d.HookManager = hm
	return d
}

// WithForgeManager sets the forge manager and returns the instance for chaining.
func (d *Dependencies) WithForgeManager(fm forge.ManagerInterface) *Dependencies {
	d.ForgeManager = fm
	return d
}

// WithProjects sets the projects client and returns the instance for chaining.
func (d *Dependencies) WithProjects(p projects.Projects) *Dependencies {
	d.Projects = p
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Config, ErrConfigMissing},
		{d.StatusManager, ErrStatusManagerMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
		{d.HookManager, ErrHookManagerMissing},
		{d.ForgeManager, ErrForgeManagerMissing},
		{d.Projects, ErrProjectsMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
