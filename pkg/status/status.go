// Package status persists the local index of tracked ideas: which issue,
// branch, pull request and project item each idea currently maps to. Idea
// files stay the source of truth for content; the index exists so reconcile
// and guardrails do not have to re-derive the mapping from GitHub every run.
package status

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mgoudin/idea-manager/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.4.0 -source=status.go -destination=mockstatus.gen.go -package=status

// Status represents the status.yaml file structure.
type Status struct {
	Ideas map[string]Record `yaml:"ideas"`
}

// Record is the tracked state of a single idea.
type Record struct {
	ID     string `yaml:"id"`
	File   string `yaml:"file"`
	Status string `yaml:"status"`
	Issue  int    `yaml:"issue,omitempty"`
	Branch string `yaml:"branch,omitempty"`
	PR     int    `yaml:"pr,omitempty"`
	ItemID string `yaml:"item_id,omitempty"`
}

// Manager interface provides status index management functionality.
type Manager interface {
	// UpsertIdea inserts or replaces the record for an idea.
	UpsertIdea(record Record) error
	// GetIdea retrieves the record for an idea.
	GetIdea(id string) (*Record, error)
	// RemoveIdea removes the record for an idea.
	RemoveIdea(id string) error
	// ListIdeas lists all tracked ideas, sorted by ID.
	ListIdeas() ([]Record, error)
}

type realManager struct {
	fs         fs.FS
	statusFile string
}

// NewManager creates a new status Manager persisting to statusFile.
func NewManager(fs fs.FS, statusFile string) Manager {
	return &realManager{
		fs:         fs,
		statusFile: statusFile,
	}
}

// UpsertIdea inserts or replaces the record for an idea.
func (s *realManager) UpsertIdea(record Record) error {
	if record.ID == "" {
		return ErrEmptyID
	}

	status, err := s.loadStatus()
	if err != nil {
		return fmt.Errorf("failed to load status: %w", err)
	}

	status.Ideas[record.ID] = record

	if err := s.saveStatus(status); err != nil {
		return fmt.Errorf("failed to save status: %w", err)
	}
	return nil
}

// GetIdea retrieves the record for an idea.
func (s *realManager) GetIdea(id string) (*Record, error) {
	status, err := s.loadStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to load status: %w", err)
	}

	record, ok := status.Ideas[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrIdeaNotFound, id)
	}
	return &record, nil
}

// RemoveIdea removes the record for an idea.
func (s *realManager) RemoveIdea(id string) error {
	status, err := s.loadStatus()
	if err != nil {
		return fmt.Errorf("failed to load status: %w", err)
	}

	if _, ok := status.Ideas[id]; !ok {
		return fmt.Errorf("%w: %s", ErrIdeaNotFound, id)
	}
	delete(status.Ideas, id)

	if err := s.saveStatus(status); err != nil {
		return fmt.Errorf("failed to save status: %w", err)
	}
	return nil
}

// ListIdeas lists all tracked ideas, sorted by ID.
func (s *realManager) ListIdeas() ([]Record, error) {
	status, err := s.loadStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to load status: %w", err)
	}

	records := make([]Record, 0, len(status.Ideas))
	for _, record := range status.Ideas {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})
	return records, nil
}

// loadStatus loads the status from the status file, creating it when missing.
func (s *realManager) loadStatus() (*Status, error) {
	if s.statusFile == "" {
		return nil, ErrStatusFileNotConfigured
	}

	exists, err := s.fs.Exists(s.statusFile)
	if err != nil {
		return nil, fmt.Errorf("failed to check status file existence: %w", err)
	}

	if !exists {
		initial := &Status{Ideas: make(map[string]Record)}
		if err := s.saveStatus(initial); err != nil {
			return nil, fmt.Errorf("failed to create initial status file: %w", err)
		}
		return initial, nil
	}

	data, err := s.fs.ReadFile(s.statusFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read status file: %w", err)
	}

	var status Status
	if err := yaml.Unmarshal(data, &status); err != nil {
		return nil, fmt.Errorf("failed to parse status file: %w", err)
	}
	if status.Ideas == nil {
		status.Ideas = make(map[string]Record)
	}

	return &status, nil
}

// saveStatus saves the status to the status file atomically.
func (s *realManager) saveStatus(status *Status) error {
	unlock, err := s.fs.FileLock(s.statusFile)
	if err != nil {
		return fmt.Errorf("failed to acquire file lock: %w", err)
	}
	defer unlock()

	data, err := yaml.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}

	if err := s.fs.WriteFileAtomic(s.statusFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write status file: %w", err)
	}
	return nil
}
