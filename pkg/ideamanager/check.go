package ideamanager

import (
	"context"

	"github.com/mgoudin/idea-manager/pkg/guardrails"
)

// Check runs the named guardrail checks, or all of them when names is empty.
func (im *realIdeaManager) Check(names []string) ([]guardrails.Result, error) {
	var results []guardrails.Result

	err := im.executeWithHooks(OpCheck, map[string]interface{}{
		"checks": names,
	}, func() error {
		var err error
		results, err = im.check(names)
		return err
	})
	return results, err
}

func (im *realIdeaManager) check(names []string) ([]guardrails.Result, error) {
	cfg, err := im.getConfig()
	if err != nil {
		return nil, err
	}

	runner := guardrails.NewRunner(
		cfg,
		im.deps.FS,
		im.deps.Git,
		im.deps.StatusManager,
		im.deps.Logger,
	)
	return runner.Run(context.Background(), currentRepoPath, names)
}
