// Package guardrails runs convention checks over the repository: commit
// subjects, branch names, idea files, changelog shape and ID uniqueness.
package guardrails

import (
	"context"
	"fmt"

	"github.com/mgoudin/idea-manager/pkg/config"
	"github.com/mgoudin/idea-manager/pkg/fs"
	"github.com/mgoudin/idea-manager/pkg/git"
	"github.com/mgoudin/idea-manager/pkg/logger"
	"github.com/mgoudin/idea-manager/pkg/status"
)

//go:generate go run go.uber.org/mock/mockgen@v0.4.0 -source=guardrails.go -destination=mockguardrails.gen.go -package=guardrails

// Result is the outcome of a single check.
type Result struct {
	// Check is the name of the check that produced the result.
	Check string
	// Problems lists the violations found, empty when the check passed.
	Problems []string
}

// OK reports whether the check passed.
func (r Result) OK() bool {
	return len(r.Problems) == 0
}

// Check is a single guardrail.
type Check interface {
	// Name returns the check name used to select it from the CLI.
	Name() string
	// Run executes the check against repoPath.
	Run(ctx context.Context, repoPath string) (Result, error)
}

// Runner executes guardrail checks.
type Runner interface {
	// Run executes the named checks, or all checks when names is empty.
	Run(ctx context.Context, repoPath string, names []string) ([]Result, error)
	// Checks returns the names of all registered checks.
	Checks() []string
}

type realRunner struct {
	checks []Check
	logger logger.Logger
}

// NewRunner creates a Runner with the standard checks registered.
func NewRunner(
	cfg config.Config,
	fs fs.FS,
	git git.Git,
	statusManager status.Manager,
	logger logger.Logger,
) Runner {
	return &realRunner{
		checks: []Check{
			newCommitMessagesCheck(cfg, git),
			newBranchNameCheck(cfg, git),
			newIdeaFilesCheck(cfg, fs),
			newReadmePresenceCheck(cfg, fs),
			newChangelogCheck(cfg, fs),
			newUniqueIDsCheck(git, statusManager),
		},
		logger: logger,
	}
}

// Run executes the named checks, or all checks when names is empty.
func (r *realRunner) Run(ctx context.Context, repoPath string, names []string) ([]Result, error) {
	checks, err := r.selectChecks(names)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(checks))
	for _, check := range checks {
		result, err := check.Run(ctx, repoPath)
		if err != nil {
			return nil, fmt.Errorf("check %s failed to run: %w", check.Name(), err)
		}

		if result.OK() {
			r.logger.Logf("Check %s: OK", check.Name())
		} else {
			r.logger.Warnf("Check %s: %d problem(s)", check.Name(), len(result.Problems))
		}
		results = append(results, result)
	}
	return results, nil
}

// Checks returns the names of all registered checks.
func (r *realRunner) Checks() []string {
	names := make([]string, 0, len(r.checks))
	for _, check := range r.checks {
		names = append(names, check.Name())
	}
	return names
}

// selectChecks resolves check names to registered checks.
func (r *realRunner) selectChecks(names []string) ([]Check, error) {
	if len(names) == 0 {
		return r.checks, nil
	}

	byName := make(map[string]Check, len(r.checks))
	for _, check := range r.checks {
		byName[check.Name()] = check
	}

	checks := make([]Check, 0, len(names))
	for _, name := range names {
		check, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCheck, name)
		}
		checks = append(checks, check)
	}
	return checks, nil
}
