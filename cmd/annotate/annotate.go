// Package annotate implements the annotate command that adds relative merge times to an existing document.
package annotate

import (
	"context"
	"time"

	"github.com/alan/pr-showcase/cmd"
	annot "github.com/alan/pr-showcase/internal/annotate"
	"github.com/alan/pr-showcase/internal/commands"
	"github.com/spf13/cobra"
)

// command encapsulates the annotate command with common functionality
type command struct {
	commands.BaseCommand
	InputFile  string
	OutputFile string
	now        func() time.Time
}

// NewAnnotateCmd creates the annotate command
func NewAnnotateCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error)) *cobra.Command {
	annotateCmd := &command{now: time.Now}

	cobraCmd := &cobra.Command{
		Use:   "annotate",
		Short: "Inject relative merge times into an existing contributions document",
		Long: `Scan a markdown document for GitHub pull request links and diff-stat summary
tags, look up each PR's merge date (merge_dates from the config file first, then
the GitHub API) and write a copy of the document where every summary reads
"+A/-D | merged N days ago". Everything else is copied unchanged.

The input document is never modified; the output path must be different.

Examples:
  pr-showcase annotate                                  # ReadMe.md -> test_readme.md
  pr-showcase annotate -i docs/README.md -o README.md`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			if err := commands.ValidateDistinctPaths(annotateCmd.InputFile, annotateCmd.OutputFile); err != nil {
				return err
			}

			annotateCmd.ConfigFile = globalConfigFile
			annotateCmd.LoadConfig = loadConfig
			if err := annotateCmd.Init(cobraCmd.Context()); err != nil {
				return err
			}

			return annotateCmd.Run(cobraCmd.Context())
		},
	}

	cobraCmd.Flags().StringVarP(&annotateCmd.InputFile, "input", "i", "ReadMe.md", "Source markdown document")
	cobraCmd.Flags().StringVarP(&annotateCmd.OutputFile, "output", "o", "test_readme.md", "Annotated copy to write")

	return cobraCmd
}

// Run executes the annotate command
func (ac *command) Run(ctx context.Context) error {
	content, err := commands.ReadDocument(ac.InputFile)
	if err != nil {
		return err
	}

	resolver := annot.NewMergeDateResolver(ac.Config.Store(), ac.GitHubClient)
	annotator := annot.NewAnnotator(resolver, ac.now)

	annotated, stats := annotator.Annotate(ctx, content)

	if err := commands.WriteDocument(ac.OutputFile, annotated); err != nil {
		return err
	}

	commands.DisplayWriteSummary("Updated", ac.OutputFile, stats.Annotated, "timestamp")
	return nil
}
