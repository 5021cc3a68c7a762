// Package cmd defines the configuration file structure shared by all pr-showcase commands.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/alan/pr-showcase/internal/contrib"
	"github.com/alan/pr-showcase/internal/render"
)

// Config represents the structure of contributions.yaml
type Config struct {
	Title               string             `yaml:"title,omitempty" toml:"title,omitempty"`
	Intro               string             `yaml:"intro,omitempty" toml:"intro,omitempty"`
	PullRequests        []string           `yaml:"pull_requests" toml:"pull_requests"` // owner/repo#number or PR URL
	Owners              []Owner            `yaml:"owners,omitempty" toml:"owners,omitempty"`
	Overrides           []contrib.Override `yaml:"overrides,omitempty" toml:"overrides,omitempty"`
	MergeDates          map[string]string  `yaml:"merge_dates,omitempty" toml:"merge_dates,omitempty"` // owner/repo#number -> timestamp
	HiddenRepositories  []string           `yaml:"hidden_repositories,omitempty" toml:"hidden_repositories,omitempty"`
	HiddenOwners        []string           `yaml:"hidden_owners,omitempty" toml:"hidden_owners,omitempty"`
	LimitedRepositories map[string]string  `yaml:"limited_repositories,omitempty" toml:"limited_repositories,omitempty"` // repo -> policy tag
	BlockedPRs          []int64            `yaml:"blocked_prs,omitempty" toml:"blocked_prs,omitempty"`
}

// Owner holds the presentation details of an account
type Owner struct {
	Login       string `yaml:"login" toml:"login"`
	DisplayName string `yaml:"display_name,omitempty" toml:"display_name,omitempty"`
	Language    string `yaml:"language,omitempty" toml:"language,omitempty"`
	Decoration  string `yaml:"decoration,omitempty" toml:"decoration,omitempty"`
}

// Refs parses the configured pull request references. A PR listed twice, in either
// notation, is kept at its first position.
func (c *Config) Refs() ([]contrib.Ref, error) {
	refs := make([]contrib.Ref, 0, len(c.PullRequests))
	seen := make(map[contrib.Ref]bool, len(c.PullRequests))
	for _, s := range c.PullRequests {
		ref, err := contrib.ParseRef(s)
		if err != nil {
			return nil, err
		}
		if seen[ref] {
			slog.Warn("Ignoring duplicate PR entry", "pr", s)
			continue
		}
		seen[ref] = true
		refs = append(refs, ref)
	}
	return refs, nil
}

// Store builds the override store from the config
func (c *Config) Store() *contrib.Store {
	return contrib.NewStore(c.Overrides, c.MergeDates, c.BlockedPRs)
}

// Policy builds the repository filter policy from the config
func (c *Config) Policy() (*contrib.Policy, error) {
	limited := make(map[string]contrib.PolicyTag, len(c.LimitedRepositories))
	for repo, s := range c.LimitedRepositories {
		tag, err := contrib.ParsePolicyTag(s)
		if err != nil {
			return nil, fmt.Errorf("limited_repositories.%s: %w", repo, err)
		}
		limited[repo] = tag
	}
	return contrib.NewPolicy(c.HiddenRepositories, c.HiddenOwners, limited), nil
}

// OwnerInfo indexes owner presentation details by login
func (c *Config) OwnerInfo() map[string]render.OwnerInfo {
	info := make(map[string]render.OwnerInfo, len(c.Owners))
	for _, o := range c.Owners {
		info[o.Login] = render.OwnerInfo{
			DisplayName: o.DisplayName,
			Language:    o.Language,
			Decoration:  o.Decoration,
		}
	}
	return info
}

// HasPullRequest reports whether ref is already listed
func (c *Config) HasPullRequest(ref contrib.Ref) bool {
	for _, s := range c.PullRequests {
		if existing, err := contrib.ParseRef(s); err == nil && existing == ref {
			return true
		}
	}
	return false
}
