// Package forge wraps the GitHub API operations the IM application needs:
// creating tracking issues and opening pull requests for idea files.
package forge

import (
	"fmt"

	"github.com/mgoudin/idea-manager/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.4.0 -source=forge.go -destination=mockforge.gen.go -package=forge

// RepoRef identifies a repository on a forge.
type RepoRef struct {
	Owner string
	Name  string
}

// String returns "owner/name".
func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// IssueInfo describes a tracking issue.
type IssueInfo struct {
	Number int
	NodeID string
	Title  string
	State  string
	URL    string
}

// PullRequestInfo describes a pull request.
type PullRequestInfo struct {
	Number int
	State  string
	URL    string
	Draft  bool
}

// CreatePullRequestParams contains parameters for opening a pull request.
type CreatePullRequestParams struct {
	Head  string
	Base  string
	Title string
	Body  string
	Draft bool
}

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge.
	Name() string

	// ValidateForgeRepository validates that repository has a supported forge remote origin.
	ValidateForgeRepository(repoPath string) error

	// RepoFromRemote derives the repository reference from the origin remote.
	RepoFromRemote(repoPath string) (RepoRef, error)

	// CreateIssue creates a tracking issue.
	CreateIssue(ref RepoRef, title, body string, labels []string) (*IssueInfo, error)

	// GetIssue fetches an issue.
	GetIssue(ref RepoRef, number int) (*IssueInfo, error)

	// CreatePullRequest opens a pull request.
	CreatePullRequest(ref RepoRef, params CreatePullRequestParams) (*PullRequestInfo, error)

	// FindOpenPullRequest returns the open pull request for a head branch, or nil.
	FindOpenPullRequest(ref RepoRef, head string) (*PullRequestInfo, error)
}

// ManagerInterface defines the interface for forge management.
type ManagerInterface interface {
	// GetForge returns the forge implementation for the given name.
	GetForge(name string) (Forge, error)
	// GetForgeForRepository returns the appropriate forge for the given repository.
	GetForgeForRepository(repoPath string) (Forge, error)
}

// Manager manages forge implementations and provides a unified interface.
type Manager struct {
	forges map[string]Forge
	logger logger.Logger
}

// NewManager creates a new forge manager with registered forge implementations.
func NewManager(logger logger.Logger) *Manager {
	m := &Manager{
		forges: make(map[string]Forge),
		logger: logger,
	}

	// Register forge implementations
	github := NewGitHub()
	m.forges[github.Name()] = github

	return m
}

// GetForge returns the forge implementation for the given name.
func (m *Manager) GetForge(name string) (Forge, error) {
	forge, exists := m.forges[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, name)
	}
	return forge, nil
}

// GetForgeForRepository returns the appropriate forge for the given repository.
func (m *Manager) GetForgeForRepository(repoPath string) (Forge, error) {
	for _, forge := range m.forges {
		if err := forge.ValidateForgeRepository(repoPath); err == nil {
			return forge, nil
		}
	}
	return nil, fmt.Errorf("%w: no supported forge found for repository", ErrUnsupportedForge)
}
