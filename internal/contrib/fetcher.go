package contrib

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alan/pr-showcase/internal/github"
)

// API is the subset of the GitHub client the fetcher needs
type API interface {
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*github.PR, error)
	ListPullRequestFiles(ctx context.Context, owner, repo string, number int) ([]github.ChangedFile, error)
}

// Fetcher turns pull request references into patched records
type Fetcher struct {
	api   API
	store *Store
}

// NewFetcher creates a fetcher backed by api and the override store
func NewFetcher(api API, store *Store) *Fetcher {
	return &Fetcher{api: api, store: store}
}

// FetchRecord fetches one pull request. It returns nil when the request fails or the id is blocked.
func (f *Fetcher) FetchRecord(ctx context.Context, ref Ref, includeDiff bool) *PullRequest {
	pr, err := f.api.GetPullRequest(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		slog.Warn("Skipping PR, fetch failed", "pr", ref.String(), "error", err)
		return nil
	}

	if f.store.IsBlocked(pr.ID) {
		slog.Info("Skipping blocked PR", "pr", ref.String(), "id", pr.ID)
		return nil
	}

	record := normalize(ref, pr)

	if includeDiff {
		record.Diff = f.fetchDiff(ctx, ref)
	}

	if record.ID == 0 {
		return &record
	}
	if override, ok := f.store.Lookup(record.ID); ok {
		record = override.Apply(record)
		slog.Info("Applied override", "pr", ref.String(), "id", record.ID)
	}

	return &record
}

// FetchAll fetches refs one after another. Refs that yield no record are returned as skipped.
func (f *Fetcher) FetchAll(ctx context.Context, refs []Ref, includeDiff bool) (records []PullRequest, skipped []Ref) {
	for _, ref := range refs {
		slog.Info("Fetching PR", "pr", ref.String())
		record := f.FetchRecord(ctx, ref, includeDiff)
		if record == nil {
			skipped = append(skipped, ref)
			continue
		}
		records = append(records, *record)
	}
	return records, skipped
}

// fetchDiff builds a unified-diff-like text from the file list. Errors yield an empty diff.
func (f *Fetcher) fetchDiff(ctx context.Context, ref Ref) string {
	files, err := f.api.ListPullRequestFiles(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		slog.Warn("Failed to fetch PR diff", "pr", ref.String(), "error", err)
		return ""
	}
	return synthesizeDiff(files)
}

func synthesizeDiff(files []github.ChangedFile) string {
	var parts []string
	for _, file := range files {
		if file.Patch == "" {
			continue
		}
		parts = append(parts,
			fmt.Sprintf("diff --git a/%s b/%s", file.Filename, file.Filename),
			fmt.Sprintf("--- a/%s", file.Filename),
			fmt.Sprintf("+++ b/%s", file.Filename),
			file.Patch,
		)
	}
	return strings.Join(parts, "\n")
}

func normalize(ref Ref, pr *github.PR) PullRequest {
	state := StateUnknown
	if pr.State != "" {
		state = State(pr.State)
	}

	url := pr.URL
	if url == "" {
		url = ref.URL()
	}

	return PullRequest{
		ID:        pr.ID,
		Number:    ref.Number,
		Owner:     ref.Owner,
		Repo:      ref.Repo,
		Title:     pr.Title,
		URL:       url,
		State:     state,
		Merged:    pr.Merged,
		MergedAt:  pr.MergedAt,
		CreatedAt: pr.CreatedAt,
		Additions: pr.Additions,
		Deletions: pr.Deletions,
	}
}
