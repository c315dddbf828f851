package git

//go:generate go run go.uber.org/mock/mockgen@v0.4.0 -source=git.go -destination=mockgit.gen.go -package=git

// Git interface provides Git command execution capabilities.
type Git interface {
	// Status returns the porcelain status of the work tree.
	Status(workDir string) (string, error)

	// ConfigGet executes `git config --get <key>` in specified directory.
	ConfigGet(workDir, key string) (string, error)

	// GetCurrentBranch gets the current branch name.
	GetCurrentBranch(repoPath string) (string, error)

	// GetRepositoryName gets the repository name from remote origin URL with fallback to local path.
	GetRepositoryName(repoPath string) (string, error)

	// GetRemoteURL gets the URL of a remote.
	GetRemoteURL(repoPath, remoteName string) (string, error)

	// IsClean checks if the repository has no uncommitted changes.
	IsClean(repoPath string) (bool, error)

	// BranchExists checks if a branch exists locally or remotely.
	BranchExists(repoPath, branch string) (bool, error)

	// CreateBranch creates a new branch from the current branch.
	CreateBranch(repoPath, branch string) error

	// CheckoutBranch checks out an existing branch.
	CheckoutBranch(repoPath, branch string) error

	// Push pushes a branch to origin, setting the upstream.
	Push(repoPath, branch string) error

	// ListBranches lists local branch names matching a pattern.
	ListBranches(repoPath, pattern string) ([]string, error)

	// RecentSubjects returns the subjects of the last count commits, newest first.
	RecentSubjects(repoPath string, count int) ([]string, error)
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
