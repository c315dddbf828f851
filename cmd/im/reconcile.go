package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errDriftNotApplied makes `im reconcile` exit non-zero when drift was found
// but not applied.
var errDriftNotApplied = errors.New("status drift found; run with --apply to fix")

var reconcileApply bool

func createReconcileCmd() *cobra.Command {
	reconcileCmd := &cobra.Command{
		Use:   "reconcile [--apply]",
		Short: "Reconcile idea files with the project board",
		Long: `Compare the status in each idea file against the project board. The
board wins. Without --apply the pending changes are only printed and the
command exits non-zero when drift was found.

Examples:
  im reconcile
  im reconcile --apply`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			im, err := buildIdeaManager(true)
			if err != nil {
				return err
			}

			plan, err := im.Reconcile(reconcileApply)
			if err != nil {
				return fmt.Errorf("failed to reconcile: %w", err)
			}

			if plan.Empty() {
				fmt.Println("No drift found.")
				return nil
			}

			for _, action := range plan.Actions {
				fmt.Printf("%s: %s -> %s (%s)\n", action.ID, action.From, action.To, action.File)
			}
			for _, upsert := range plan.Upserts {
				fmt.Printf("%s: add to board as %s (issue #%d)\n", upsert.ID, upsert.Status, upsert.Issue)
			}

			if !reconcileApply {
				return errDriftNotApplied
			}
			fmt.Printf("Applied %d change(s).\n", len(plan.Actions)+len(plan.Upserts))
			return nil
		},
	}

	reconcileCmd.Flags().BoolVar(&reconcileApply, "apply", false, "Apply the pending changes")

	return reconcileCmd
}
