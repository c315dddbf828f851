// Package projects synchronizes ideas with a GitHub Projects v2 board through
// the gh CLI. The gh subprocess owns authentication; this package owns the
// GraphQL plumbing: project and field resolution, idempotent item upserts and
// field mutations.
package projects

import (
	"fmt"
	"sync"

	"github.com/mgoudin/idea-manager/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.4.0 -source=projects.go -destination=mockprojects.gen.go -package=projects

// StatusFieldName is the name of the single-select field carrying the
// lifecycle status on the board.
const StatusFieldName = "Status"

// Fields holds the resolved field and option identifiers of a project.
type Fields struct {
	// IDs maps field names to field node IDs.
	IDs map[string]string
	// Options maps single-select field names to option name -> option ID.
	Options map[string]map[string]string
}

// FieldID returns the node ID of a field.
func (f *Fields) FieldID(name string) (string, error) {
	id, ok := f.IDs[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrFieldNotFound, name)
	}
	return id, nil
}

// OptionID returns the option ID of a single-select field option.
func (f *Fields) OptionID(field, option string) (string, error) {
	options, ok := f.Options[field]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrFieldNotFound, field)
	}
	id, ok := options[option]
	if !ok {
		return "", fmt.Errorf("%w: %s option %q", ErrOptionNotFound, field, option)
	}
	return id, nil
}

// Item is a row on the project board linked to an issue.
type Item struct {
	ID          string
	IssueNumber int
	Status      string
}

// Projects interface provides GitHub Projects v2 board operations.
type Projects interface {
	// ResolveProject resolves a project number to its node ID.
	ResolveProject(owner string, number int) (string, error)

	// ResolveFields resolves field and option IDs for a project. Results are memoized.
	ResolveFields(projectID string) (*Fields, error)

	// UpsertItem adds an issue to the project and returns the item ID.
	// Adding an already-present issue returns the existing item.
	UpsertItem(projectID, issueNodeID string) (string, error)

	// SetSingleSelect sets a single-select field of an item.
	SetSingleSelect(projectID, itemID, fieldID, optionID string) error

	// SetText sets a text field of an item.
	SetText(projectID, itemID, fieldID, text string) error

	// ItemForIssue finds the board item linked to an issue number.
	ItemForIssue(projectID string, issueNumber int) (*Item, error)

	// WaitForItem polls for the board item of an issue with exponential
	// backoff, absorbing the board's eventual consistency after an upsert.
	WaitForItem(projectID string, issueNumber int) (*Item, error)

	// ListItems lists all issue-linked items of a project.
	ListItems(projectID string) ([]Item, error)
}

type realProjects struct {
	runner Runner
	logger logger.Logger

	mu         sync.Mutex
	fieldCache map[string]*Fields
}

// NewProjects creates a new Projects instance backed by the gh CLI.
func NewProjects(logger logger.Logger) Projects {
	return &realProjects{
		runner:     newGhRunner(),
		logger:     logger,
		fieldCache: make(map[string]*Fields),
	}
}

// newTestProjects creates a Projects instance with a custom runner, for tests.
func newTestProjects(runner Runner, logger logger.Logger) *realProjects {
	return &realProjects{
		runner:     runner,
		logger:     logger,
		fieldCache: make(map[string]*Fields),
	}
}
