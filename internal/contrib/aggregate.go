package contrib

import (
	"sort"
	"time"
)

// OwnerGroup is the set of records shown under one account header
type OwnerGroup struct {
	Owner   string
	Records []PullRequest
	Latest  time.Time
}

// Repos lists the group's repository names in record order, without duplicates
func (g OwnerGroup) Repos() []string {
	seen := make(map[string]bool)
	var repos []string
	for _, pr := range g.Records {
		if !seen[pr.Repo] {
			seen[pr.Repo] = true
			repos = append(repos, pr.Repo)
		}
	}
	return repos
}

// Aggregate drops hidden repositories and owners, groups records by owner and orders everything newest first.
// Owners with equal recency keep their order of first appearance.
func Aggregate(records []PullRequest, policy *Policy) []OwnerGroup {
	index := make(map[string]int)
	var groups []OwnerGroup

	for _, pr := range records {
		if policy.ShouldHide(pr.Repo) || policy.ShouldHideOwner(pr.Owner) {
			continue
		}
		i, ok := index[pr.Owner]
		if !ok {
			i = len(groups)
			index[pr.Owner] = i
			groups = append(groups, OwnerGroup{Owner: pr.Owner})
		}
		groups[i].Records = append(groups[i].Records, pr)
	}

	for i := range groups {
		groups[i].Records = policy.ReduceToLatest(groups[i].Records)
		sortByRecency(groups[i].Records)
		groups[i].Latest = latestActivity(groups[i].Records)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Latest.After(groups[j].Latest)
	})

	return groups
}

func latestActivity(records []PullRequest) time.Time {
	var latest time.Time
	for _, pr := range records {
		if key := pr.SortKey(); key.After(latest) {
			latest = key
		}
	}
	return latest
}
