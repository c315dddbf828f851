package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgoudin/idea-manager/pkg/idea"
	"github.com/mgoudin/idea-manager/pkg/ideamanager"
)

var (
	newSlug     string
	newLane     string
	newOwner    string
	newPriority string
)

func createNewCmd() *cobra.Command {
	newCmd := &cobra.Command{
		Use:   "new <type> <title>",
		Short: "Create a new idea file",
		Long: `Create a new idea file in Draft status with the next free number.

Types: U (UI primitive), C (composition), ARCH (architecture), PB (playbook), B (bug).

Examples:
  im new U "Tooltip"
  im new B "Focus trap leak" --lane A`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			im, err := buildIdeaManager(true)
			if err != nil {
				return err
			}

			ideaType, err := idea.ParseType(args[0])
			if err != nil {
				return err
			}

			created, err := im.CreateIdea(ideamanager.CreateIdeaParams{
				Type:     ideaType,
				Title:    args[1],
				Slug:     newSlug,
				Lane:     newLane,
				Owner:    newOwner,
				Priority: newPriority,
			})
			if err != nil {
				return fmt.Errorf("failed to create idea: %w", err)
			}

			fmt.Printf("Created %s (%s)\n", created.File, created.ID)
			return nil
		},
	}

	newCmd.Flags().StringVar(&newSlug, "slug", "", "Override the filename slug derived from the title")
	newCmd.Flags().StringVar(&newLane, "lane", "", "Lane letter (e.g. A)")
	newCmd.Flags().StringVar(&newOwner, "owner", "", "Owning team or person")
	newCmd.Flags().StringVar(&newPriority, "priority", "", "Priority (e.g. high, low)")

	return newCmd
}
