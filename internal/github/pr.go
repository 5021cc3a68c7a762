package github

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/go-github/v57/github"
)

// GetPullRequest fetches a single pull request by number
func (c *Client) GetPullRequest(ctx context.Context, owner, repo string, number int) (*PR, error) {
	slog.Debug("GitHub API: Getting PR", "owner", owner, "repo", repo, "pr", number)
	pr, _, err := c.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch PR %s/%s#%d: %w", owner, repo, number, err)
	}

	return convertPR(pr), nil
}

// ListPullRequestFiles fetches the changed files of a pull request, including patch fragments
func (c *Client) ListPullRequestFiles(ctx context.Context, owner, repo string, number int) ([]ChangedFile, error) {
	files, err := paginatedList(func(page int) ([]*github.CommitFile, *github.Response, error) {
		opts := &github.ListOptions{
			PerPage: 100,
			Page:    page,
		}
		slog.Debug("GitHub API: Listing PR files", "owner", owner, "repo", repo, "pr", number, "page", page)
		return c.client.PullRequests.ListFiles(ctx, owner, repo, number, opts)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files for PR %s/%s#%d: %w", owner, repo, number, err)
	}

	changed := make([]ChangedFile, 0, len(files))
	for _, f := range files {
		changed = append(changed, ChangedFile{
			Filename: f.GetFilename(),
			Patch:    f.GetPatch(),
		})
	}
	return changed, nil
}

// convertPR maps the go-github pull request onto our PR type
func convertPR(pr *github.PullRequest) *PR {
	return &PR{
		ID:        pr.GetID(),
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		URL:       pr.GetHTMLURL(),
		State:     pr.GetState(),
		Merged:    pr.GetMerged(),
		MergedAt:  formatTimestamp(pr.MergedAt),
		CreatedAt: formatTimestamp(pr.CreatedAt),
		Additions: pr.GetAdditions(),
		Deletions: pr.GetDeletions(),
	}
}

func formatTimestamp(ts *github.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}
