package forge

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"

	"github.com/mgoudin/idea-manager/pkg/git"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
	// GitHubDomain is the GitHub domain for URL validation.
	GitHubDomain = "github.com"
	// requestTimeout bounds every GitHub API call.
	requestTimeout = 10 * time.Second
)

var (
	httpsRemoteRegexp = regexp.MustCompile(`github\.com/([^/]+)/([^/]+?)(?:\.git)?$`)
	sshRemoteRegexp   = regexp.MustCompile(`github\.com:([^/]+)/([^/]+?)(?:\.git)?$`)
)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client *github.Client
	git    git.Git
}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub() *GitHub {
	var client *github.Client

	// Add authentication if available
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client = github.NewTokenClient(context.Background(), token)
	} else {
		client = github.NewClient(nil)
	}

	return &GitHub{
		client: client,
		git:    git.NewGit(),
	}
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// ValidateForgeRepository validates that repository has GitHub remote origin.
func (g *GitHub) ValidateForgeRepository(repoPath string) error {
	originURL, err := g.git.GetRemoteURL(repoPath, "origin")
	if err != nil {
		return fmt.Errorf("failed to get remote origin: %w", err)
	}

	// Handles both HTTPS (https://github.com/owner/repo.git) and
	// SSH (git@github.com:owner/repo.git) URLs.
	if !strings.Contains(originURL, GitHubDomain) {
		return fmt.Errorf("%w: %s", ErrInvalidRemote, originURL)
	}

	return nil
}

// RepoFromRemote derives the repository reference from the origin remote.
func (g *GitHub) RepoFromRemote(repoPath string) (RepoRef, error) {
	originURL, err := g.git.GetRemoteURL(repoPath, "origin")
	if err != nil {
		return RepoRef{}, fmt.Errorf("failed to get remote origin: %w", err)
	}

	ref, err := parseGitHubRemote(originURL)
	if err != nil {
		return RepoRef{}, err
	}
	return ref, nil
}

// parseGitHubRemote extracts owner and repository from a GitHub remote URL.
func parseGitHubRemote(originURL string) (RepoRef, error) {
	var matches []string
	switch {
	case strings.Contains(originURL, "github.com/"):
		matches = httpsRemoteRegexp.FindStringSubmatch(originURL)
	case strings.Contains(originURL, "github.com:"):
		matches = sshRemoteRegexp.FindStringSubmatch(originURL)
	}
	if len(matches) != 3 {
		return RepoRef{}, fmt.Errorf("%w: %s", ErrInvalidRemote, originURL)
	}
	return RepoRef{Owner: matches[1], Name: matches[2]}, nil
}

// CreateIssue creates a tracking issue.
func (g *GitHub) CreateIssue(ref RepoRef, title, body string, labels []string) (*IssueInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	request := &github.IssueRequest{
		Title: github.String(title),
		Body:  github.String(body),
	}
	if len(labels) > 0 {
		request.Labels = &labels
	}

	issue, resp, err := g.client.Issues.Create(ctx, ref.Owner, ref.Name, request)
	if err != nil {
		return nil, g.handleGitHubError(err, resp, "create issue")
	}

	return issueInfo(issue), nil
}

// GetIssue fetches an issue.
func (g *GitHub) GetIssue(ref RepoRef, number int) (*IssueInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	issue, resp, err := g.client.Issues.Get(ctx, ref.Owner, ref.Name, number)
	if err != nil {
		return nil, g.handleGitHubError(err, resp, fmt.Sprintf("fetch issue #%d", number))
	}

	return issueInfo(issue), nil
}

// CreatePullRequest opens a pull request.
func (g *GitHub) CreatePullRequest(ref RepoRef, params CreatePullRequestParams) (*PullRequestInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	pr, resp, err := g.client.PullRequests.Create(ctx, ref.Owner, ref.Name, &github.NewPullRequest{
		Title: github.String(params.Title),
		Head:  github.String(params.Head),
		Base:  github.String(params.Base),
		Body:  github.String(params.Body),
		Draft: github.Bool(params.Draft),
	})
	if err != nil {
		return nil, g.handleGitHubError(err, resp, "create pull request")
	}

	return pullRequestInfo(pr), nil
}

// FindOpenPullRequest returns the open pull request for a head branch, or nil.
func (g *GitHub) FindOpenPullRequest(ref RepoRef, head string) (*PullRequestInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	prs, resp, err := g.client.PullRequests.List(ctx, ref.Owner, ref.Name, &github.PullRequestListOptions{
		State: "open",
		Head:  ref.Owner + ":" + head,
	})
	if err != nil {
		return nil, g.handleGitHubError(err, resp, "list pull requests")
	}

	if len(prs) == 0 {
		return nil, nil
	}
	return pullRequestInfo(prs[0]), nil
}

// handleGitHubError maps GitHub API errors to forge sentinel errors.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, operation string) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrNotFound, operation)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check GITHUB_TOKEN environment variable", ErrUnauthorized)
		case http.StatusForbidden:
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", ErrUnauthorized)
		}
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

func issueInfo(issue *github.Issue) *IssueInfo {
	return &IssueInfo{
		Number: issue.GetNumber(),
		NodeID: issue.GetNodeID(),
		Title:  issue.GetTitle(),
		State:  issue.GetState(),
		URL:    issue.GetHTMLURL(),
	}
}

func pullRequestInfo(pr *github.PullRequest) *PullRequestInfo {
	return &PullRequestInfo{
		Number: pr.GetNumber(),
		State:  pr.GetState(),
		URL:    pr.GetHTMLURL(),
		Draft:  pr.GetDraft(),
	}
}
