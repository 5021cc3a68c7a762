package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alan/pr-showcase/cmd"
	"github.com/alan/pr-showcase/internal/github"
	"github.com/joho/godotenv"
)

// BaseCommand provides common fields and initialization for all commands
type BaseCommand struct {
	ConfigFile   *string
	LoadConfig   func(string) (*cmd.Config, error)
	SaveConfig   func(string, *cmd.Config) error
	GitHubClient *github.Client
	Config       *cmd.Config
}

// Init loads the configuration and creates the GitHub client
func (bc *BaseCommand) Init(ctx context.Context) error {
	config, err := bc.LoadConfig(*bc.ConfigFile)
	if err != nil {
		return err
	}
	bc.Config = config

	if ctx == nil {
		ctx = context.Background()
	}
	bc.GitHubClient = github.NewClient(ctx, GitHubToken())
	if !bc.GitHubClient.Authenticated() {
		slog.Warn("No GITHUB_TOKEN found. API rate limits will be restrictive.")
	}

	return nil
}

// GitHubToken reads GITHUB_TOKEN, falling back to GH_TOKEN. A .env file in the working
// directory is loaded first; variables already set in the environment win.
func GitHubToken() string {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GH_TOKEN")
	}
	return token
}

// SaveConfigWithErrorHandling saves the config with standardized error handling
func (bc *BaseCommand) SaveConfigWithErrorHandling(config *cmd.Config) error {
	if bc.SaveConfig == nil {
		return fmt.Errorf("command cannot save configuration")
	}
	return bc.SaveConfig(*bc.ConfigFile, config)
}
