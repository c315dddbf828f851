package ideamanager

import (
	"errors"
	"fmt"

	"github.com/mgoudin/idea-manager/pkg/config"
)

// ErrAlreadyInitialized is returned when init finds an existing configuration.
var ErrAlreadyInitialized = errors.New("already initialized: use --reset to overwrite")

// ErrInitCancelled is returned when the user declines to overwrite an
// existing configuration.
var ErrInitCancelled = errors.New("initialization cancelled")

// InitOpts contains options for the Init operation.
type InitOpts struct {
	// NonInteractive skips prompts and uses flags or defaults.
	NonInteractive bool
	// Reset overwrites an existing configuration.
	Reset bool
	// IdeasDir overrides the ideas directory.
	IdeasDir string
	// StatusFile overrides the status file location.
	StatusFile string
	// ProjectOwner overrides the project board owner.
	ProjectOwner string
	// ProjectNumber overrides the project board number.
	ProjectNumber int
}

// Init initializes IM configuration, interactively unless told otherwise.
func (im *realIdeaManager) Init(opts InitOpts) error {
	return im.executeWithHooks(OpInit, map[string]interface{}{
		"non_interactive": opts.NonInteractive,
		"reset":           opts.Reset,
	}, func() error {
		return im.performInitialization(opts)
	})
}

func (im *realIdeaManager) performInitialization(opts InitOpts) error {
	configPath := im.deps.Config.GetConfigPath()
	exists, err := im.deps.FS.Exists(configPath)
	if err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	}
	if exists && !opts.Reset {
		return fmt.Errorf("%w: %s", ErrAlreadyInitialized, configPath)
	}
	if exists && !opts.NonInteractive {
		confirmed, err := im.deps.Prompt.PromptForConfirmation(
			fmt.Sprintf("Overwrite existing configuration at %s?", configPath), false)
		if err != nil {
			return err
		}
		if !confirmed {
			return ErrInitCancelled
		}
	}

	cfg := im.deps.Config.DefaultConfig()

	if err := im.resolveDirectories(&cfg, opts); err != nil {
		return err
	}
	if err := im.resolveProject(&cfg, opts); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := im.deps.Config.SaveConfig(cfg); err != nil {
		return err
	}

	if err := im.createInitialFiles(cfg); err != nil {
		return err
	}

	im.deps.Logger.Logf("Initialized IM: config at %s, ideas in %s", configPath, cfg.IdeasDir)
	return nil
}

// resolveDirectories fills the ideas directory and status file, prompting
// when running interactively and no flag was given.
func (im *realIdeaManager) resolveDirectories(cfg *config.Config, opts InitOpts) error {
	switch {
	case opts.IdeasDir != "":
		cfg.IdeasDir = opts.IdeasDir
	case !opts.NonInteractive:
		dir, err := im.deps.Prompt.PromptForIdeasDir(cfg.IdeasDir)
		if err != nil {
			return err
		}
		cfg.IdeasDir = dir
	}

	switch {
	case opts.StatusFile != "":
		cfg.StatusFile = opts.StatusFile
	case !opts.NonInteractive:
		file, err := im.deps.Prompt.PromptForStatusFile(cfg.StatusFile)
		if err != nil {
			return err
		}
		cfg.StatusFile = file
	}
	return nil
}

// resolveProject fills the project board settings.
func (im *realIdeaManager) resolveProject(cfg *config.Config, opts InitOpts) error {
	if opts.ProjectOwner != "" {
		cfg.ProjectOwner = opts.ProjectOwner
		cfg.ProjectNumber = opts.ProjectNumber
		return nil
	}
	if opts.NonInteractive {
		return nil
	}

	owner, number, err := im.deps.Prompt.PromptForProject()
	if err != nil {
		return err
	}
	cfg.ProjectOwner = owner
	cfg.ProjectNumber = number
	return nil
}

// createInitialFiles creates the ideas directory, status index and changelog.
func (im *realIdeaManager) createInitialFiles(cfg config.Config) error {
	if err := im.deps.FS.MkdirAll(cfg.IdeasDir, 0755); err != nil {
		return fmt.Errorf("failed to create ideas directory: %w", err)
	}
	if err := im.deps.FS.CreateFileIfNotExists(cfg.StatusFile, []byte("ideas: {}\n"), 0600); err != nil {
		return fmt.Errorf("failed to create status file: %w", err)
	}
	if err := im.deps.FS.CreateFileIfNotExists(cfg.ChangelogFile, []byte(defaultChangelogPreamble), 0644); err != nil {
		return fmt.Errorf("failed to create changelog: %w", err)
	}
	return nil
}
