package annotate

import (
	"context"
	"log/slog"

	"github.com/alan/pr-showcase/internal/contrib"
	"github.com/alan/pr-showcase/internal/github"
)

// PullRequestGetter fetches a single pull request
type PullRequestGetter interface {
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*github.PR, error)
}

// MergeDateResolver looks up merge dates in the override table before asking the API
type MergeDateResolver struct {
	store *contrib.Store
	api   PullRequestGetter
}

// NewMergeDateResolver creates a resolver. api may be nil to resolve from overrides only.
func NewMergeDateResolver(store *contrib.Store, api PullRequestGetter) *MergeDateResolver {
	return &MergeDateResolver{store: store, api: api}
}

// Resolve returns the merge date, else the creation date, of a pull request
func (r *MergeDateResolver) Resolve(ctx context.Context, ref contrib.Ref) (string, bool) {
	if date, ok := r.store.MergeDate(ref.String()); ok {
		return date, true
	}
	if r.api == nil {
		return "", false
	}

	pr, err := r.api.GetPullRequest(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		slog.Warn("Failed to resolve merge date", "pr", ref.String(), "error", err)
		return "", false
	}

	if pr.MergedAt != "" {
		return pr.MergedAt, true
	}
	if pr.CreatedAt != "" {
		return pr.CreatedAt, true
	}
	return "", false
}
