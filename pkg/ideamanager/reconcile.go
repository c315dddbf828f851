package ideamanager

import (
	"context"

	"github.com/mgoudin/idea-manager/pkg/reconcile"
)

// Reconcile compares idea files against the board and returns the plan. With
// apply set the plan is executed: files are rewritten to the board status and
// missing board items are inserted.
func (im *realIdeaManager) Reconcile(apply bool) (*reconcile.Plan, error) {
	var plan *reconcile.Plan

	err := im.executeWithHooks(OpReconcile, map[string]interface{}{
		"apply": apply,
	}, func() error {
		var err error
		plan, err = im.reconcile(apply)
		return err
	})
	return plan, err
}

func (im *realIdeaManager) reconcile(apply bool) (*reconcile.Plan, error) {
	cfg, err := im.getConfig()
	if err != nil {
		return nil, err
	}

	f, _, err := im.forgeForRepo()
	if err != nil {
		return nil, err
	}

	reconciler := reconcile.NewReconciler(
		cfg,
		im.deps.FS,
		f,
		im.deps.Projects,
		im.deps.StatusManager,
		im.deps.Logger,
	)

	ctx := context.Background()
	plan, err := reconciler.Plan(ctx, currentRepoPath)
	if err != nil {
		return nil, err
	}

	for _, warning := range plan.Warnings {
		im.deps.Logger.Warnf("%s", warning)
	}

	if apply && !plan.Empty() {
		if err := reconciler.Apply(ctx, currentRepoPath, plan); err != nil {
			return plan, err
		}
	}
	return plan, nil
}
