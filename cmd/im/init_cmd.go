package main

import (
	"github.com/spf13/cobra"

	"github.com/mgoudin/idea-manager/pkg/ideamanager"
)

var (
	initReset          bool
	initNonInteractive bool
	initIdeasDir       string
	initStatusFile     string
	initProjectOwner   string
	initProjectNumber  int
)

func createInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize IM configuration",
		Long: `Initialize IM configuration with interactive prompts or flags, and
create the ideas directory, status index and changelog.

Examples:
  im init
  im init --non-interactive --ideas-dir docs/ideas
  im init --project-owner acme --project-number 7`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			im, err := buildIdeaManager(false)
			if err != nil {
				return err
			}

			return im.Init(ideamanager.InitOpts{
				NonInteractive: initNonInteractive,
				Reset:          initReset,
				IdeasDir:       initIdeasDir,
				StatusFile:     initStatusFile,
				ProjectOwner:   initProjectOwner,
				ProjectNumber:  initProjectNumber,
			})
		},
	}

	initCmd.Flags().BoolVar(&initReset, "reset", false, "Overwrite an existing configuration")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "Skip prompts and use flags or defaults")
	initCmd.Flags().StringVar(&initIdeasDir, "ideas-dir", "", "Set the ideas directory (skips the prompt)")
	initCmd.Flags().StringVar(&initStatusFile, "status-file", "", "Set the status file location (skips the prompt)")
	initCmd.Flags().StringVar(&initProjectOwner, "project-owner", "", "GitHub user or organization owning the project board")
	initCmd.Flags().IntVar(&initProjectNumber, "project-number", 0, "GitHub Projects v2 board number")

	return initCmd
}
