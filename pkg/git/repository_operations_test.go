//go:build integration

package git

import (
	"os"
	"strings"
	"testing"
)

func TestGit_GetRepositoryName(t *testing.T) {
	git := NewGit()
	_, cleanup := SetupTestRepo(t)
	defer cleanup()

	name, err := git.GetRepositoryName(".")
	if err != nil {
		t.Fatalf("Expected no error getting repository name: %v", err)
	}
	if name != "github.com/octocat/Hello-World" {
		t.Errorf("Expected github.com/octocat/Hello-World, got %s", name)
	}
}

func TestGit_GetRemoteURL(t *testing.T) {
	git := NewGit()
	_, cleanup := SetupTestRepo(t)
	defer cleanup()

	url, err := git.GetRemoteURL(".", "origin")
	if err != nil {
		t.Fatalf("Expected no error getting remote URL: %v", err)
	}
	if url != "https://github.com/octocat/Hello-World.git" {
		t.Errorf("Unexpected remote URL: %s", url)
	}
}

func TestGit_Status(t *testing.T) {
	git := NewGit()
	_, cleanup := SetupTestRepo(t)
	defer cleanup()

	output, err := git.Status(".")
	if err != nil {
		t.Fatalf("Expected no error getting status: %v", err)
	}
	if output != "" {
		t.Errorf("Expected empty status for fresh repository, got %q", output)
	}

	if err := os.WriteFile("untracked.txt", []byte("dirty"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	output, err = git.Status(".")
	if err != nil {
		t.Fatalf("Expected no error getting status: %v", err)
	}
	if !strings.Contains(output, "?? untracked.txt") {
		t.Errorf("Expected untracked file in status, got %q", output)
	}
}

func TestGit_IsClean(t *testing.T) {
	git := NewGit()
	_, cleanup := SetupTestRepo(t)
	defer cleanup()

	clean, err := git.IsClean(".")
	if err != nil {
		t.Fatalf("Expected no error checking cleanliness: %v", err)
	}
	if !clean {
		t.Error("Expected fresh repository to be clean")
	}

	if err := os.WriteFile("untracked.txt", []byte("dirty"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	clean, err = git.IsClean(".")
	if err != nil {
		t.Fatalf("Expected no error checking cleanliness: %v", err)
	}
	if clean {
		t.Error("Expected repository with untracked file to be dirty")
	}
}

func TestGit_RecentSubjects(t *testing.T) {
	git := NewGit()
	_, cleanup := SetupTestRepo(t)
	defer cleanup()

	CommitEmpty(t, "U-001: add ghost variant")
	CommitEmpty(t, "U-001: document tokens")

	subjects, err := git.RecentSubjects(".", 2)
	if err != nil {
		t.Fatalf("Expected no error reading subjects: %v", err)
	}
	if len(subjects) != 2 {
		t.Fatalf("Expected 2 subjects, got %d", len(subjects))
	}
	if subjects[0] != "U-001: document tokens" {
		t.Errorf("Expected newest subject first, got %s", subjects[0])
	}
}
