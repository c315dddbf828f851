package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errChecksFailed makes `im check` exit non-zero when a guardrail fails.
var errChecksFailed = errors.New("guardrail checks failed")

func createCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [check...]",
		Short: "Run guardrail checks",
		Long: `Run the named guardrail checks, or all of them when none are given:
commit-messages, branch-name, idea-files, readme-presence, changelog,
unique-ids.

Examples:
  im check
  im check commit-messages branch-name`,
		RunE: func(_ *cobra.Command, args []string) error {
			im, err := buildIdeaManager(true)
			if err != nil {
				return err
			}

			results, err := im.Check(args)
			if err != nil {
				return fmt.Errorf("failed to run checks: %w", err)
			}

			failed := 0
			for _, result := range results {
				if result.OK() {
					fmt.Printf("ok   %s\n", result.Check)
					continue
				}
				failed++
				fmt.Printf("FAIL %s\n", result.Check)
				for _, problem := range result.Problems {
					fmt.Printf("     %s\n", problem)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errChecksFailed, failed, len(results))
			}
			return nil
		},
	}
}
