package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createChangelogCmd() *cobra.Command {
	changelogCmd := &cobra.Command{
		Use:   "changelog",
		Short: "Changelog operations",
	}

	mergeCmd := &cobra.Command{
		Use:   "merge <fragment>",
		Short: "Merge a release fragment into the changelog",
		Long: `Merge a release fragment (one or more "## [version] - date" entries)
into the changelog. Entries match by version, sections by title; bullet
lines are deduplicated, so merging the same fragment twice is a no-op.

Examples:
  im changelog merge release.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			im, err := buildIdeaManager(true)
			if err != nil {
				return err
			}

			if err := im.MergeChangelog(args[0]); err != nil {
				return fmt.Errorf("failed to merge changelog: %w", err)
			}
			fmt.Printf("Merged %s\n", args[0])
			return nil
		},
	}

	changelogCmd.AddCommand(mergeCmd)

	return changelogCmd
}
