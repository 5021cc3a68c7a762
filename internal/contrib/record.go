// Package contrib fetches, patches, filters and groups the pull requests shown in the
// contributions document.
package contrib

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/alan/pr-showcase/internal/reltime"
)

// State is the lifecycle state of a pull request
type State string

const (
	// StateOpen is an open pull request
	StateOpen State = "open"
	// StateMerged is a merged pull request (set through overrides, GitHub reports "closed")
	StateMerged State = "merged"
	// StateClosed is a closed pull request
	StateClosed State = "closed"
	// StateUnknown is used when the API did not report a state
	StateUnknown State = "unknown"
)

// PullRequest is the normalized record rendered into the document
type PullRequest struct {
	ID          int64
	Number      int
	Owner       string
	Repo        string
	Title       string
	Description string
	URL         string
	State       State
	Merged      bool
	MergedAt    string
	CreatedAt   string
	Additions   int
	Deletions   int
	Diff        string
}

// SortKey is the merge time, else the creation time. Missing or unparsable dates give the zero time.
func (pr PullRequest) SortKey() time.Time {
	ts := pr.MergedAt
	if ts == "" {
		ts = pr.CreatedAt
	}
	t, _ := reltime.Parse(ts)
	return t
}

// Ref identifies a pull request as owner/repo#number
type Ref struct {
	Owner  string
	Repo   string
	Number int
}

func (r Ref) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// URL is the canonical web link of the pull request
func (r Ref) URL() string {
	return fmt.Sprintf("https://github.com/%s/%s/pull/%d", r.Owner, r.Repo, r.Number)
}

var (
	shortRefPattern = regexp.MustCompile(`^([\w.-]+)/([\w.-]+)#(\d+)$`)
	urlRefPattern   = regexp.MustCompile(`^https://github\.com/([^/]+)/([^/]+)/pull/(\d+)/?$`)
)

// ParseRef accepts "owner/repo#123" or a pull request URL
func ParseRef(s string) (Ref, error) {
	matches := shortRefPattern.FindStringSubmatch(s)
	if matches == nil {
		matches = urlRefPattern.FindStringSubmatch(s)
	}
	if matches == nil {
		return Ref{}, fmt.Errorf("invalid pull request reference %q, expected owner/repo#number or a PR URL", s)
	}

	number, err := strconv.Atoi(matches[3])
	if err != nil {
		return Ref{}, fmt.Errorf("invalid PR number in %q: %w", s, err)
	}

	return Ref{Owner: matches[1], Repo: matches[2], Number: number}, nil
}
