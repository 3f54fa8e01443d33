// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v41/github"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"

	"github.com/danielolaszy/purge/internal/config"
	"github.com/danielolaszy/purge/internal/logging"
	"github.com/danielolaszy/purge/pkg/models"
)

// Client encapsulates the GitHub API client bound to a single repository.
type Client struct {
	client *github.Client
	owner  string
	repo   string
}

// NewClient creates a GitHub API client for the given "owner/repo" repository.
// Enterprise domains are addressed through https://<domain>/api/v3/. No request
// is made here; authentication failures surface on the first API call.
func NewClient(cfg config.GitHubConfig, repository string) (*Client, error) {
	if cfg.Token == "" {
		return nil, errors.New("github token not found in configuration")
	}

	owner, repo, err := ParseRepository(repository)
	if err != nil {
		return nil, err
	}

	apiURL := APIURL(cfg.Domain)

	logging.Info("github configuration",
		"domain", cfg.Domain,
		"api_url", apiURL,
		"token", logging.MaskSensitive(cfg.Token))

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: cfg.Token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	client := github.NewClient(tc)
	if apiURL != "https://api.github.com/" {
		parsedURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, errors.Wrap(err, "invalid github api url")
		}
		client.BaseURL = parsedURL
		client.UploadURL = parsedURL
	}

	return &Client{client: client, owner: owner, repo: repo}, nil
}

// newClientWithBaseURL builds a client that talks to baseURL with the given
// HTTP client. It is used to point the client at a test server.
func newClientWithBaseURL(httpClient *http.Client, baseURL, repository string) (*Client, error) {
	owner, repo, err := ParseRepository(repository)
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid github api url")
	}

	client := github.NewClient(httpClient)
	client.BaseURL = parsedURL
	client.UploadURL = parsedURL

	return &Client{client: client, owner: owner, repo: repo}, nil
}

// APIURL returns the REST API root for a GitHub domain. An empty domain means github.com.
func APIURL(domain string) string {
	if domain == "" || domain == "github.com" {
		return "https://api.github.com/"
	}
	return fmt.Sprintf("https://%s/api/v3/", domain)
}

// ParseRepository splits "owner/repo" into its parts.
func ParseRepository(repository string) (string, string, error) {
	parts := strings.Split(repository, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.Wrapf(config.ErrInvalidConfig, "invalid repository format: %s, expected format: owner/repo", repository)
	}
	return parts[0], parts[1], nil
}

// Repository returns the "owner/repo" name the client is bound to.
func (c *Client) Repository() string {
	return c.owner + "/" + c.repo
}

// ListIssueComments retrieves every comment on an issue, following pagination,
// in the order the API returns them.
func (c *Client) ListIssueComments(ctx context.Context, issueNumber int) ([]models.Comment, error) {
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}

	var result []models.Comment
	for {
		comments, resp, err := c.client.Issues.ListComments(ctx, c.owner, c.repo, issueNumber, opts)
		if err != nil {
			logging.Error("failed to fetch issue comments",
				"repository", c.Repository(),
				"issue_number", issueNumber,
				"status_code", statusCode(resp),
				"error", err)
			return nil, errors.Wrapf(err, "failed to list comments for %s#%d", c.Repository(), issueNumber)
		}

		for _, comment := range comments {
			result = append(result, toModel(comment))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.Debug("fetched issue comments",
		"repository", c.Repository(),
		"issue_number", issueNumber,
		"count", len(result))

	return result, nil
}

// DeleteComment permanently removes an issue comment.
func (c *Client) DeleteComment(ctx context.Context, commentID int64) error {
	resp, err := c.client.Issues.DeleteComment(ctx, c.owner, c.repo, commentID)
	if err != nil {
		logging.Error("failed to delete comment",
			"repository", c.Repository(),
			"comment_id", commentID,
			"status_code", statusCode(resp),
			"error", err)
		return errors.Wrapf(err, "failed to delete comment %d in %s", commentID, c.Repository())
	}

	logging.Debug("deleted comment", "repository", c.Repository(), "comment_id", commentID)
	return nil
}

func toModel(comment *github.IssueComment) models.Comment {
	// GetUser returns nil for ghost users; GetLogin is nil-safe
	return models.Comment{
		ID:       comment.GetID(),
		IssueURL: comment.GetIssueURL(),
		Author:   comment.GetUser().GetLogin(),
		Body:     comment.GetBody(),
	}
}

func statusCode(resp *github.Response) int {
	if resp == nil || resp.Response == nil {
		return 0
	}
	return resp.StatusCode
}
