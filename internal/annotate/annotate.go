// Package annotate injects relative merge times into an existing contributions document.
package annotate

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/alan/pr-showcase/internal/contrib"
	"github.com/alan/pr-showcase/internal/reltime"
)

var (
	linkPattern   = regexp.MustCompile(`https://github\.com/([^/]+)/([^/]+)/pull/(\d+)`)
	markerPattern = regexp.MustCompile(`(<details><summary><code>\+\d+/-\d+</code>)(</summary>)`)
)

// ResolveFunc returns the merge date of a pull request, or false when it is unknown
type ResolveFunc func(ref contrib.Ref) (string, bool)

// Stats summarizes one planning pass
type Stats struct {
	Links     int
	Markers   int
	Annotated int
}

// Plan finds every summary marker, pairs it with the closest link ending before it and
// returns the edits that append "| merged <label>" to resolved markers.
func Plan(content string, resolve ResolveFunc, now time.Time) ([]Edit, Stats) {
	links := linkPattern.FindAllStringSubmatchIndex(content, -1)
	markers := markerPattern.FindAllStringSubmatchIndex(content, -1)

	stats := Stats{Links: len(links), Markers: len(markers)}
	var edits []Edit

	next := 0
	closest := -1
	for _, m := range markers {
		markerStart := m[0]
		for next < len(links) && links[next][1] < markerStart {
			closest = next
			next++
		}
		if closest < 0 {
			continue
		}

		ref, ok := refFromMatch(content, links[closest])
		if !ok {
			continue
		}

		date, ok := resolve(ref)
		if !ok {
			continue
		}

		label := reltime.Label(date, now)
		edits = append(edits, Edit{
			Start:       m[0],
			End:         m[1],
			Replacement: content[m[2]:m[3]] + " | merged " + label + content[m[4]:m[5]],
		})
		stats.Annotated++
		slog.Info("Annotated PR", "pr", ref.String(), "merged", label)
	}

	return edits, stats
}

func refFromMatch(content string, loc []int) (contrib.Ref, bool) {
	number, err := strconv.Atoi(content[loc[6]:loc[7]])
	if err != nil {
		return contrib.Ref{}, false
	}
	return contrib.Ref{
		Owner:  content[loc[2]:loc[3]],
		Repo:   content[loc[4]:loc[5]],
		Number: number,
	}, true
}

// Annotator rewrites documents with merge-time labels
type Annotator struct {
	resolver *MergeDateResolver
	now      func() time.Time
}

// NewAnnotator creates an annotator. A nil clock means time.Now.
func NewAnnotator(resolver *MergeDateResolver, now func() time.Time) *Annotator {
	if now == nil {
		now = time.Now
	}
	return &Annotator{resolver: resolver, now: now}
}

// Annotate returns a new document; content itself is never modified
func (a *Annotator) Annotate(ctx context.Context, content string) (string, Stats) {
	edits, stats := Plan(content, func(ref contrib.Ref) (string, bool) {
		return a.resolver.Resolve(ctx, ref)
	}, a.now().UTC())

	slog.Info("Scanned document", "links", stats.Links, "markers", stats.Markers, "annotated", stats.Annotated)
	return Apply(content, edits), stats
}
