// Package main provides the command-line interface for the IM application.
package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/mgoudin/idea-manager/pkg/config"
	"github.com/mgoudin/idea-manager/pkg/dependencies"
	"github.com/mgoudin/idea-manager/pkg/hooks"
	"github.com/mgoudin/idea-manager/pkg/ideamanager"
	"github.com/mgoudin/idea-manager/pkg/logger"
	"github.com/mgoudin/idea-manager/pkg/status"
)

var (
	quiet      bool
	verbose    bool
	configPath string
)

// idArg returns the optional idea ID argument, or empty to let the
// operation prompt for a selection.
func idArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// resolveConfigPath returns the config file location, honoring --config.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}

// buildLogger returns the logger matching the global flags.
func buildLogger() logger.Logger {
	if verbose && !quiet {
		return logger.NewDefaultLogger()
	}
	return logger.NewNoopLogger()
}

// registerLoggingHooks wraps every operation with the logging hook.
func registerLoggingHooks(deps *dependencies.Dependencies) error {
	hook := hooks.NewLoggingHook(deps.Logger)
	for _, op := range []string{
		ideamanager.OpCreateIdea,
		ideamanager.OpTicket,
		ideamanager.OpCreateBranch,
		ideamanager.OpOpenPR,
		ideamanager.OpReconcile,
		ideamanager.OpMergeChangelog,
		ideamanager.OpArchive,
		ideamanager.OpListIdeas,
		ideamanager.OpCheck,
		ideamanager.OpInit,
	} {
		if err := deps.HookManager.RegisterPreHook(op, hook); err != nil {
			return err
		}
		if err := deps.HookManager.RegisterPostHook(op, hook); err != nil {
			return err
		}
		if err := deps.HookManager.RegisterErrorHook(op, hook); err != nil {
			return err
		}
	}
	return nil
}

// buildIdeaManager wires the dependency container and creates the manager.
// All commands except init fail fast when the configuration is missing.
func buildIdeaManager(requireConfig bool) (ideamanager.IdeaManager, error) {
	configManager := config.NewManager(resolveConfigPath())
	deps := dependencies.New().
		WithConfig(configManager).
		WithLogger(buildLogger())

	statusFile := ""
	if requireConfig {
		cfg, err := configManager.GetConfig()
		if err != nil {
			return nil, fmt.Errorf("%w\nRun: im init", err)
		}
		statusFile = cfg.StatusFile
	}
	deps.WithStatusManager(status.NewManager(deps.FS, statusFile))

	if err := registerLoggingHooks(deps); err != nil {
		return nil, err
	}

	return ideamanager.NewIdeaManager(ideamanager.NewIdeaManagerParams{
		Dependencies: deps,
	})
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "im",
		Short: "Idea Manager - markdown idea lifecycle automation",
		Long: `A CLI tool that tracks markdown idea files through their lifecycle ` +
			`(Draft to Archived), synchronized with GitHub issues, branches, ` +
			`pull requests and a Projects v2 board.`,
		SilenceUsage: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(
		createNewCmd(),
		createTicketCmd(),
		createBranchCmd(),
		createPRCmd(),
		createReconcileCmd(),
		createChangelogCmd(),
		createArchiveCmd(),
		createListCmd(),
		createCheckCmd(),
		createInitCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
