// Package add implements the add command for listing new pull requests in the configuration file.
package add

import (
	"context"
	"fmt"

	"github.com/alan/pr-showcase/cmd"
	"github.com/alan/pr-showcase/internal/commands"
	"github.com/alan/pr-showcase/internal/contrib"
	"github.com/spf13/cobra"
)

// AddCommand encapsulates the add command with common functionality
type AddCommand struct {
	commands.BaseCommand
	Refs []contrib.Ref
}

// NewAddCmd creates and returns the add command
func NewAddCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error), saveConfig func(string, *cmd.Config) error) *cobra.Command {
	addCmd := &AddCommand{}

	cobraCmd := &cobra.Command{
		Use:   "add <owner/repo#number | pr-url>...",
		Short: "Add PRs to the contributions list",
		Long: `Add one or more pull requests to the pull_requests list of the configuration file.

Each PR is looked up on GitHub first so typos are caught before they reach the
config file. PRs that are already listed are rejected.

Examples:
  pr-showcase add google/guava#7988
  pr-showcase add https://github.com/penpot/penpot/pull/6982`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			refs, err := commands.ParseRefArgs(args)
			if err != nil {
				return err
			}
			addCmd.Refs = refs

			addCmd.ConfigFile = globalConfigFile
			addCmd.LoadConfig = loadConfig
			addCmd.SaveConfig = saveConfig
			if err := addCmd.Init(cobraCmd.Context()); err != nil {
				return err
			}

			return addCmd.Run(cobraCmd.Context())
		},
	}

	return cobraCmd
}

// Run executes the add command
func (ac *AddCommand) Run(ctx context.Context) error {
	seen := make(map[contrib.Ref]bool, len(ac.Refs))
	for _, ref := range ac.Refs {
		if ac.Config.HasPullRequest(ref) {
			return fmt.Errorf("PR %s is already listed", ref)
		}
		if seen[ref] {
			return fmt.Errorf("PR %s is given more than once", ref)
		}
		seen[ref] = true
	}

	var titles []string
	for _, ref := range ac.Refs {
		pr, err := ac.GitHubClient.GetPullRequest(ctx, ref.Owner, ref.Repo, ref.Number)
		if err != nil {
			return fmt.Errorf("failed to fetch PR details: %w", err)
		}
		titles = append(titles, pr.Title)
	}

	for _, ref := range ac.Refs {
		ac.Config.PullRequests = append(ac.Config.PullRequests, ref.String())
	}

	if err := ac.SaveConfigWithErrorHandling(ac.Config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	ac.displaySuccessMessage(titles)
	return nil
}

// displaySuccessMessage shows a success message after adding the PRs
func (ac *AddCommand) displaySuccessMessage(titles []string) {
	for i, ref := range ac.Refs {
		fmt.Printf("✅ Successfully added PR %s\n", ref)
		fmt.Printf("   Title: %s\n", titles[i])
	}
}
