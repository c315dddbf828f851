package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branch [id]",
		Short: "Create the working branch for an idea",
		Long: `Create and check out the branch for an idea (<ID>-<slug>) and move it
to Branched. Each idea has at most one branch. Without an ID, pick an
idea interactively.

Examples:
  im branch U-004
  im branch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			im, err := buildIdeaManager(true)
			if err != nil {
				return err
			}

			if err := im.CreateBranch(idArg(args)); err != nil {
				return fmt.Errorf("failed to create branch: %w", err)
			}
			fmt.Println("Branched")
			return nil
		},
	}
}
