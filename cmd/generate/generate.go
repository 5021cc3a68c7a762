// Package generate implements the generate command that renders the contributions document from scratch.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alan/pr-showcase/cmd"
	"github.com/alan/pr-showcase/internal/commands"
	"github.com/alan/pr-showcase/internal/contrib"
	"github.com/alan/pr-showcase/internal/render"
	"github.com/spf13/cobra"
)

// command encapsulates the generate command with common functionality
type command struct {
	commands.BaseCommand
	OutputFile  string
	IncludeDiff bool
	now         func() time.Time
}

// NewGenerateCmd creates the generate command
func NewGenerateCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error)) *cobra.Command {
	generateCmd := &command{now: time.Now}

	cobraCmd := &cobra.Command{
		Use:   "generate",
		Short: "Fetch configured PRs and render the contributions document",
		Long: `Fetch every pull request listed in the configuration file from GitHub, apply
manual overrides and repository filters, and write the rendered markdown document.

PRs that cannot be fetched are skipped; the command still succeeds.
Set GITHUB_TOKEN (or GH_TOKEN) to avoid the unauthenticated rate limit.

Examples:
  pr-showcase generate                       # Writes ReadMe.md
  pr-showcase generate -o CONTRIBUTIONS.md   # Custom output file
  pr-showcase generate --diff=false          # Skip per-file patches`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			generateCmd.ConfigFile = globalConfigFile
			generateCmd.LoadConfig = loadConfig
			if err := generateCmd.Init(cobraCmd.Context()); err != nil {
				return err
			}

			return generateCmd.Run(cobraCmd.Context())
		},
	}

	cobraCmd.Flags().StringVarP(&generateCmd.OutputFile, "output", "o", "ReadMe.md", "Output markdown file")
	cobraCmd.Flags().BoolVar(&generateCmd.IncludeDiff, "diff", true, "Embed each PR's diff in a collapsible block")

	return cobraCmd
}

// Run executes the generate command
func (gc *command) Run(ctx context.Context) error {
	refs, err := gc.Config.Refs()
	if err != nil {
		return fmt.Errorf("failed to parse pull_requests: %w", err)
	}

	policy, err := gc.Config.Policy()
	if err != nil {
		return fmt.Errorf("failed to build repository policy: %w", err)
	}

	slog.Info("Generating contributions document", "prs", len(refs), "output", gc.OutputFile, "diff", gc.IncludeDiff)

	fetcher := contrib.NewFetcher(gc.GitHubClient, gc.Config.Store())
	records, skipped := fetcher.FetchAll(ctx, refs, gc.IncludeDiff)

	groups := contrib.Aggregate(records, policy)

	renderer := &render.Renderer{
		Owners: gc.Config.OwnerInfo(),
		Title:  gc.Config.Title,
		Intro:  gc.Config.Intro,
		Now:    gc.now().UTC(),
	}
	content := renderer.Render(groups)

	if err := commands.WriteDocument(gc.OutputFile, content); err != nil {
		return err
	}

	commands.DisplaySkipped(refStrings(skipped))
	commands.DisplayWriteSummary("Generated", gc.OutputFile, countRecords(groups), "PR")

	return nil
}

func countRecords(groups []contrib.OwnerGroup) int {
	total := 0
	for _, g := range groups {
		total += len(g.Records)
	}
	return total
}

func refStrings(refs []contrib.Ref) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		out = append(out, ref.String())
	}
	return out
}
