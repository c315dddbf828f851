package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var archiveForce bool

func createArchiveCmd() *cobra.Command {
	archiveCmd := &cobra.Command{
		Use:   "archive [id] [--force]",
		Short: "Archive a merged idea",
		Long: `Move a merged idea file into the archive directory and mark it Archived
in the file, the status index and the project board. Non-merged ideas
require --force. Without an ID, pick an idea interactively.

Examples:
  im archive U-004
  im archive U-004 --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			im, err := buildIdeaManager(true)
			if err != nil {
				return err
			}

			if err := im.Archive(idArg(args), archiveForce); err != nil {
				return fmt.Errorf("failed to archive idea: %w", err)
			}
			fmt.Println("Archived")
			return nil
		},
	}

	archiveCmd.Flags().BoolVar(&archiveForce, "force", false, "Archive even if the idea is not merged")

	return archiveCmd
}
