package git

import (
	"os"
	"os/exec"
	"testing"
)

// SetupTestRepo creates a temporary git repository for testing and changes
// into it. The returned cleanup restores the working directory.
func SetupTestRepo(t *testing.T) (string, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "im-git-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	originalDir, err := os.Getwd()
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		t.Fatalf("Failed to get current directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	cleanup := func() {
		_ = os.Chdir(originalDir)
		_ = os.RemoveAll(tmpDir)
	}

	runTestGit(t, cleanup, "init")
	runTestGit(t, cleanup, "config", "user.name", "Test User")
	runTestGit(t, cleanup, "config", "user.email", "test@example.com")
	runTestGit(t, cleanup, "remote", "add", "origin", "https://github.com/octocat/Hello-World.git")
	runTestGit(t, cleanup, "commit", "--allow-empty", "-m", "chore: initial commit")

	return tmpDir, cleanup
}

// CommitEmpty creates an empty commit with the given subject.
func CommitEmpty(t *testing.T, subject string) {
	t.Helper()
	cmd := exec.Command("git", "commit", "--allow-empty", "-m", subject)
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to create commit: %v (output: %s)", err, string(output))
	}
}

func runTestGit(t *testing.T, cleanup func(), args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		cleanup()
		t.Fatalf("git %v failed: %v (output: %s)", args, err, string(output))
	}
}
