package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgoudin/idea-manager/pkg/ideamanager"
)

var prDraft bool

func createPRCmd() *cobra.Command {
	prCmd := &cobra.Command{
		Use:   "pr [id]",
		Short: "Open the pull request for an idea",
		Long: `Push the idea's branch and open its pull request, moving the idea to
PR Open. An already-open pull request for the branch is reused. Without
an ID, pick an idea interactively.

Examples:
  im pr U-004
  im pr U-004 --draft`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			im, err := buildIdeaManager(true)
			if err != nil {
				return err
			}

			if err := im.OpenPR(idArg(args), ideamanager.OpenPROpts{Draft: prDraft}); err != nil {
				return fmt.Errorf("failed to open PR: %w", err)
			}
			fmt.Println("PR open")
			return nil
		},
	}

	prCmd.Flags().BoolVar(&prDraft, "draft", false, "Open the pull request as a draft")

	return prCmd
}
