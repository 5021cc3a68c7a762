package contrib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }
func intPtr(i int) *int          { return &i }

func fetchedRecord() PullRequest {
	return PullRequest{
		ID:        2696869536,
		Number:    6982,
		Owner:     "penpot",
		Repo:      "penpot",
		Title:     ":sparkles: Add lock",
		URL:       "https://github.com/penpot/penpot/pull/6982",
		State:     StateClosed,
		CreatedAt: "2025-07-01T08:00:00Z",
		Additions: 10,
		Deletions: 2,
		Diff:      "diff --git a/x b/x",
	}
}

func TestOverride_Apply(t *testing.T) {
	override := Override{
		ID:          2696869536,
		Title:       stringPtr("Add milestone lock feature"),
		Description: stringPtr("Implemented version locking."),
		State:       stringPtr("merged"),
		Merged:      boolPtr(true),
		MergedAt:    stringPtr("2025-07-26T12:15:30Z"),
	}

	result := override.Apply(fetchedRecord())

	assert.Equal(t, "Add milestone lock feature", result.Title)
	assert.Equal(t, "Implemented version locking.", result.Description)
	assert.Equal(t, StateMerged, result.State)
	assert.True(t, result.Merged)
	assert.Equal(t, "2025-07-26T12:15:30Z", result.MergedAt)

	// untouched fields
	assert.Equal(t, "2025-07-01T08:00:00Z", result.CreatedAt)
	assert.Equal(t, 10, result.Additions)
	assert.Equal(t, 2, result.Deletions)
	assert.Equal(t, "diff --git a/x b/x", result.Diff)
	assert.Equal(t, "https://github.com/penpot/penpot/pull/6982", result.URL)
}

func TestOverride_ApplyIsIdempotent(t *testing.T) {
	override := Override{
		Title:     stringPtr("T"),
		Additions: intPtr(99),
		Diff:      stringPtr(""),
		Merged:    boolPtr(false),
	}

	once := override.Apply(fetchedRecord())
	twice := override.Apply(once)
	assert.Equal(t, once, twice)
}

func TestOverride_EmptyLeavesRecordUnchanged(t *testing.T) {
	assert.Equal(t, fetchedRecord(), Override{ID: 1}.Apply(fetchedRecord()))
}

func TestStore(t *testing.T) {
	store := NewStore(
		[]Override{{ID: 1, Title: stringPtr("first")}, {ID: 1, Title: stringPtr("second")}},
		map[string]string{"google/guava#7988": "2025-09-14T13:00:00Z", "acme/empty#1": ""},
		[]int64{42},
	)

	o, ok := store.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "second", *o.Title)

	_, ok = store.Lookup(2)
	assert.False(t, ok)

	date, ok := store.MergeDate("google/guava#7988")
	assert.True(t, ok)
	assert.Equal(t, "2025-09-14T13:00:00Z", date)

	_, ok = store.MergeDate("acme/empty#1")
	assert.False(t, ok)

	assert.True(t, store.IsBlocked(42))
	assert.False(t, store.IsBlocked(1))
}

func TestStore_IgnoresOverrideWithoutID(t *testing.T) {
	store := NewStore([]Override{{Title: stringPtr("no id")}, {ID: -3, Title: stringPtr("negative")}}, nil, nil)

	_, ok := store.Lookup(0)
	assert.False(t, ok)
	_, ok = store.Lookup(-3)
	assert.False(t, ok)
}
