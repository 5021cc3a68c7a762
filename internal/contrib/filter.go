package contrib

import (
	"fmt"
	"sort"
)

// PolicyTag is the filtering rule attached to a repository
type PolicyTag string

const (
	// PolicyHide drops every pull request of the repository
	PolicyHide PolicyTag = "hide"
	// PolicyKeepLatestOnly keeps only the most recent pull request per owner
	PolicyKeepLatestOnly PolicyTag = "keep-latest-only"
)

// ParsePolicyTag converts a string to PolicyTag
func ParsePolicyTag(s string) (PolicyTag, error) {
	switch PolicyTag(s) {
	case PolicyHide:
		return PolicyHide, nil
	case PolicyKeepLatestOnly:
		return PolicyKeepLatestOnly, nil
	default:
		return "", fmt.Errorf("unknown repository policy %q (want %q or %q)", s, PolicyHide, PolicyKeepLatestOnly)
	}
}

// Policy decides which repositories are shown and how many of their pull requests survive
type Policy struct {
	tags   map[string]PolicyTag
	owners map[string]bool
}

// NewPolicy builds a policy from the hidden repository and owner lists and the repo -> tag table
func NewPolicy(hiddenRepos, hiddenOwners []string, limited map[string]PolicyTag) *Policy {
	p := &Policy{
		tags:   make(map[string]PolicyTag, len(hiddenRepos)+len(limited)),
		owners: make(map[string]bool, len(hiddenOwners)),
	}
	for repo, tag := range limited {
		p.tags[repo] = tag
	}
	for _, repo := range hiddenRepos {
		p.tags[repo] = PolicyHide
	}
	for _, owner := range hiddenOwners {
		p.owners[owner] = true
	}
	return p
}

// ShouldHide reports whether a repository is hidden entirely
func (p *Policy) ShouldHide(repo string) bool {
	return p.tags[repo] == PolicyHide
}

// ShouldHideOwner reports whether every pull request of an account is hidden
func (p *Policy) ShouldHideOwner(owner string) bool {
	return p.owners[owner]
}

// ReduceToLatest keeps one record per keep-latest-only repository, the most recent one.
// Records of other repositories pass through in their original order.
func (p *Policy) ReduceToLatest(records []PullRequest) []PullRequest {
	latest := make(map[string]int)
	for i, pr := range records {
		if p.tags[pr.Repo] != PolicyKeepLatestOnly {
			continue
		}
		best, seen := latest[pr.Repo]
		if !seen || pr.SortKey().After(records[best].SortKey()) {
			latest[pr.Repo] = i
		}
	}

	result := make([]PullRequest, 0, len(records))
	for i, pr := range records {
		if best, limited := latest[pr.Repo]; limited && best != i {
			continue
		}
		result = append(result, pr)
	}
	return result
}

// sortByRecency orders records newest first, keeping the input order for ties
func sortByRecency(records []PullRequest) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SortKey().After(records[j].SortKey())
	})
}
