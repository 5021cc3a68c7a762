// Package render produces the markdown contributions document.
package render

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/alan/pr-showcase/internal/contrib"
	"github.com/alan/pr-showcase/internal/reltime"
)

// OwnerInfo carries the presentation details of one account
type OwnerInfo struct {
	DisplayName string
	Language    string
	Decoration  string // raw markdown/HTML inserted under the owner header
}

// Renderer turns aggregated groups into document lines
type Renderer struct {
	Owners map[string]OwnerInfo
	Title  string
	Intro  string
	Now    time.Time
}

const indent = "   "

var (
	shortcodePattern  = regexp.MustCompile(`:[a-z_]+:`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// CleanTitle strips :emoji_shortcodes: and collapses whitespace
func CleanTitle(title string) string {
	title = shortcodePattern.ReplaceAllString(title, "")
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(title, " "))
}

// Render builds the whole document
func (r *Renderer) Render(groups []contrib.OwnerGroup) string {
	var lines []string
	if r.Title != "" {
		lines = append(lines, "# "+r.Title, "")
	}
	if r.Intro != "" {
		lines = append(lines, strings.TrimRight(r.Intro, "\n"), "")
	}
	for _, group := range groups {
		lines = append(lines, r.ownerBlock(group)...)
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) ownerBlock(group contrib.OwnerGroup) []string {
	info := r.Owners[group.Owner]

	lines := []string{header(group, info), ""}
	if info.Decoration != "" {
		lines = append(lines, info.Decoration, "")
	}

	numbered := len(group.Records) > 1
	for i, pr := range group.Records {
		prefix := "-"
		if numbered {
			prefix = fmt.Sprintf("%d.", i+1)
		}
		lines = append(lines, r.entry(prefix, pr)...)
	}
	return lines
}

func header(group contrib.OwnerGroup, info OwnerInfo) string {
	name := info.DisplayName
	if name == "" {
		name = group.Owner
	}

	parts := []string{name, strings.Join(group.Repos(), ", ")}
	if info.Language != "" {
		parts = append(parts, info.Language)
	}
	return "### " + strings.Join(parts, " · ")
}

func (r *Renderer) entry(prefix string, pr contrib.PullRequest) []string {
	link := fmt.Sprintf("%s **[%s](%s)**", prefix, CleanTitle(pr.Title), pr.URL)
	if pr.Description != "" {
		link += fmt.Sprintf("<br>*%s*", pr.Description)
	}

	lines := []string{
		link,
		fmt.Sprintf("%s<details><summary><code>+%d/-%d</code> | %s</summary>", indent, pr.Additions, pr.Deletions, r.status(pr)),
		"",
	}

	if pr.Diff != "" {
		lines = append(lines, indent+"```diff")
		for _, diffLine := range strings.Split(pr.Diff, "\n") {
			lines = append(lines, indent+diffLine)
		}
		lines = append(lines, indent+"```")
	}

	return append(lines, indent+"</details>", "")
}

func (r *Renderer) status(pr contrib.PullRequest) string {
	if pr.Merged && pr.MergedAt != "" {
		return "merged " + reltime.Label(pr.MergedAt, r.Now)
	}
	return "open"
}
