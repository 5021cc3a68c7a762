package contrib

import "log/slog"

// Override replaces fetched fields of a pull request. Nil fields are left as fetched.
type Override struct {
	ID          int64   `yaml:"id" toml:"id"`
	Title       *string `yaml:"title,omitempty" toml:"title,omitempty"`
	Description *string `yaml:"description,omitempty" toml:"description,omitempty"`
	URL         *string `yaml:"url,omitempty" toml:"url,omitempty"`
	State       *string `yaml:"state,omitempty" toml:"state,omitempty"`
	Merged      *bool   `yaml:"merged,omitempty" toml:"merged,omitempty"`
	MergedAt    *string `yaml:"merged_at,omitempty" toml:"merged_at,omitempty"`
	CreatedAt   *string `yaml:"created_at,omitempty" toml:"created_at,omitempty"`
	Additions   *int    `yaml:"additions,omitempty" toml:"additions,omitempty"`
	Deletions   *int    `yaml:"deletions,omitempty" toml:"deletions,omitempty"`
	Diff        *string `yaml:"diff,omitempty" toml:"diff,omitempty"`
}

// Apply returns pr with every present override field replacing the fetched value
func (o Override) Apply(pr PullRequest) PullRequest {
	if o.Title != nil {
		pr.Title = *o.Title
	}
	if o.Description != nil {
		pr.Description = *o.Description
	}
	if o.URL != nil {
		pr.URL = *o.URL
	}
	if o.State != nil {
		pr.State = State(*o.State)
	}
	if o.Merged != nil {
		pr.Merged = *o.Merged
	}
	if o.MergedAt != nil {
		pr.MergedAt = *o.MergedAt
	}
	if o.CreatedAt != nil {
		pr.CreatedAt = *o.CreatedAt
	}
	if o.Additions != nil {
		pr.Additions = *o.Additions
	}
	if o.Deletions != nil {
		pr.Deletions = *o.Deletions
	}
	if o.Diff != nil {
		pr.Diff = *o.Diff
	}
	return pr
}

// Store holds the static override tables
type Store struct {
	overrides  map[int64]Override
	mergeDates map[string]string
	blocked    map[int64]bool
}

// NewStore indexes the override tables. Later overrides for the same id win.
// Overrides without an id are ignored.
func NewStore(overrides []Override, mergeDates map[string]string, blocked []int64) *Store {
	s := &Store{
		overrides:  make(map[int64]Override, len(overrides)),
		mergeDates: make(map[string]string, len(mergeDates)),
		blocked:    make(map[int64]bool, len(blocked)),
	}
	for _, o := range overrides {
		if o.ID <= 0 {
			slog.Warn("Ignoring override without a PR id", "id", o.ID)
			continue
		}
		s.overrides[o.ID] = o
	}
	for key, date := range mergeDates {
		s.mergeDates[key] = date
	}
	for _, id := range blocked {
		s.blocked[id] = true
	}
	return s
}

// Lookup returns the override registered for a pull request id
func (s *Store) Lookup(id int64) (Override, bool) {
	if id == 0 {
		return Override{}, false
	}
	o, ok := s.overrides[id]
	return o, ok
}

// MergeDate returns the manual merge date for an "owner/repo#number" key
func (s *Store) MergeDate(key string) (string, bool) {
	date, ok := s.mergeDates[key]
	return date, ok && date != ""
}

// IsBlocked reports whether a pull request id must never be shown
func (s *Store) IsBlocked(id int64) bool {
	return s.blocked[id]
}
