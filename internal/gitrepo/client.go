// Package gitrepo wraps the GitHub contents API for the content
// repository that hosts the published tour document and screenshots.
package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gobodhi/tour-cms/internal/config"
	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

const (
	committerName  = "Bodhi CMS"
	committerEmail = "cms@gobodhi.com"
)

// Client commits and fetches files in a single GitHub repository.
type Client struct {
	gh     *github.Client
	owner  string
	repo   string
	branch string
}

// New creates a Client for the configured GITHUB_REPO using the
// configured API token.
func New(cfg *config.Config) *Client {
	owner, repo := cfg.RepoOwnerName()

	httpClient := oauth2.NewClient(context.Background(),
		oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GitHubToken}))

	return &Client{
		gh:     github.NewClient(httpClient),
		owner:  owner,
		repo:   repo,
		branch: cfg.GitHubBranch,
	}
}

// FileSHA looks up the blob SHA of a file. A missing file is reported as
// (_, false, nil); only a true 404 from the API is treated as absence,
// every other failure is returned so outages are not masked as creates.
func (c *Client) FileSHA(ctx context.Context, path string) (string, bool, error) {
	content, _, _, err := c.gh.Repositories.GetContents(ctx, c.owner, c.repo, path,
		&github.RepositoryContentGetOptions{Ref: c.branch})
	if err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get contents of %s: %w", path, err)
	}
	if content == nil {
		return "", false, fmt.Errorf("%s is a directory, not a file", path)
	}
	return content.GetSHA(), true, nil
}

// CommitResult describes the commit produced by CommitFile.
type CommitResult struct {
	SHA     string
	HTMLURL string
}

// CommitFile creates or overwrites a file in a single commit. The
// current blob SHA is looked up first; absence means the write proceeds
// as a creation.
func (c *Client) CommitFile(ctx context.Context, path string, content []byte, message string) (*CommitResult, error) {
	sha, exists, err := c.FileSHA(ctx, path)
	if err != nil {
		return nil, err
	}

	opts := &github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: content,
		Branch:  github.String(c.branch),
		Committer: &github.CommitAuthor{
			Name:  github.String(committerName),
			Email: github.String(committerEmail),
		},
	}

	var resp *github.RepositoryContentResponse
	if exists {
		opts.SHA = github.String(sha)
		resp, _, err = c.gh.Repositories.UpdateFile(ctx, c.owner, c.repo, path, opts)
	} else {
		resp, _, err = c.gh.Repositories.CreateFile(ctx, c.owner, c.repo, path, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("commit %s: %w", path, err)
	}

	return &CommitResult{
		SHA:     resp.Commit.GetSHA(),
		HTMLURL: resp.Commit.GetHTMLURL(),
	}, nil
}

// FetchFile downloads and decodes a file's content.
func (c *Client) FetchFile(ctx context.Context, path string) ([]byte, error) {
	content, _, _, err := c.gh.Repositories.GetContents(ctx, c.owner, c.repo, path,
		&github.RepositoryContentGetOptions{Ref: c.branch})
	if err != nil {
		return nil, fmt.Errorf("get contents of %s: %w", path, err)
	}
	if content == nil {
		return nil, fmt.Errorf("%s is a directory, not a file", path)
	}

	decoded, err := content.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decode contents of %s: %w", path, err)
	}
	return []byte(decoded), nil
}

// RawURL returns the publicly fetchable raw-content URL for a committed
// file. Raw content is available immediately after the commit.
func (c *Client) RawURL(path string) string {
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s/%s", c.owner, c.repo, c.branch, path)
}

func isNotFound(err error) bool {
	var ghErr *github.ErrorResponse
	return errors.As(err, &ghErr) &&
		ghErr.Response != nil &&
		ghErr.Response.StatusCode == http.StatusNotFound
}
