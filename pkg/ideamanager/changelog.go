package ideamanager

import (
	"fmt"

	"github.com/mgoudin/idea-manager/pkg/changelog"
)

// defaultChangelogPreamble starts a changelog created from scratch.
const defaultChangelogPreamble = "# Changelog\n"

// MergeChangelog merges a release fragment into the changelog. Merging the
// same fragment twice is a no-op.
func (im *realIdeaManager) MergeChangelog(fragmentPath string) error {
	return im.executeWithHooks(OpMergeChangelog, map[string]interface{}{
		"fragment": fragmentPath,
	}, func() error {
		return im.mergeChangelog(fragmentPath)
	})
}

func (im *realIdeaManager) mergeChangelog(fragmentPath string) error {
	cfg, err := im.getConfig()
	if err != nil {
		return err
	}

	fragmentContent, err := im.deps.FS.ReadFile(fragmentPath)
	if err != nil {
		return fmt.Errorf("failed to read fragment %s: %w", fragmentPath, err)
	}
	fragment, err := changelog.Parse(fragmentContent)
	if err != nil {
		return fmt.Errorf("failed to parse fragment %s: %w", fragmentPath, err)
	}

	existing, err := im.loadChangelog(cfg.ChangelogFile)
	if err != nil {
		return err
	}

	existing.Merge(fragment)
	if err := existing.Validate(); err != nil {
		return fmt.Errorf("merge would produce an invalid changelog: %w", err)
	}

	if err := im.deps.FS.WriteFileAtomic(cfg.ChangelogFile, existing.Render(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.ChangelogFile, err)
	}

	im.VerbosePrint("Merged %s into %s", fragmentPath, cfg.ChangelogFile)
	return nil
}

// loadChangelog parses the changelog file, starting a fresh one when missing.
func (im *realIdeaManager) loadChangelog(path string) (*changelog.Changelog, error) {
	exists, err := im.deps.FS.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", path, err)
	}
	if !exists {
		return &changelog.Changelog{Preamble: defaultChangelogPreamble}, nil
	}

	content, err := im.deps.FS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	parsed, err := changelog.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return parsed, nil
}
