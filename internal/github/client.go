package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// RequestTimeout bounds every GitHub API call
const RequestTimeout = 30 * time.Second

// Client wraps the GitHub API client
type Client struct {
	client        *github.Client
	authenticated bool
}

// NewClient creates a new GitHub client. An empty token yields an unauthenticated client.
func NewClient(ctx context.Context, token string) *Client {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(ctx, ts)
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = RequestTimeout

	gh := github.NewClient(httpClient)
	gh.UserAgent = "pr-showcase"

	return &Client{
		client:        gh,
		authenticated: token != "",
	}
}

// WithBaseURL points the client at a different API root (GitHub Enterprise or a test server)
func (c *Client) WithBaseURL(baseURL string) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL %q: %w", baseURL, err)
	}
	c.client.BaseURL = u
	return c, nil
}

// Authenticated reports whether requests carry a token
func (c *Client) Authenticated() bool {
	return c.authenticated
}

// paginatedList walks every page of a list endpoint
func paginatedList[T any](fetch func(page int) ([]T, *github.Response, error)) ([]T, error) {
	var all []T
	page := 0
	for {
		items, resp, err := fetch(page)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		page = resp.NextPage
	}
	return all, nil
}
