package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createTicketCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ticket [id]",
		Short: "Create the tracking issue for an idea",
		Long: `Create the GitHub issue for an idea, add it to the project board and
move the idea to Ticketed. Re-running is safe: an existing issue is reused.
Without an ID, pick an idea interactively.

Examples:
  im ticket U-004
  im ticket`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			im, err := buildIdeaManager(true)
			if err != nil {
				return err
			}

			if err := im.Ticket(idArg(args)); err != nil {
				return fmt.Errorf("failed to ticket idea: %w", err)
			}
			fmt.Println("Ticketed")
			return nil
		},
	}
}
