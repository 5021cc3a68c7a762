package add

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alan/pr-showcase/cmd"
	"github.com/alan/pr-showcase/internal/contrib"
	"github.com/alan/pr-showcase/internal/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAddCommand(t *testing.T, config *cmd.Config, refs []contrib.Ref) (*AddCommand, *[]*cmd.Config) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/google/guava/pulls/7988", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"id": 1, "number": 7988, "title": "Add tests"}`)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := github.NewClient(context.Background(), "").WithBaseURL(server.URL)
	require.NoError(t, err)

	var saved []*cmd.Config
	configFile := "contributions.yaml"
	ac := &AddCommand{Refs: refs}
	ac.ConfigFile = &configFile
	ac.Config = config
	ac.GitHubClient = client
	ac.SaveConfig = func(_ string, c *cmd.Config) error {
		saved = append(saved, c)
		return nil
	}
	return ac, &saved
}

func TestAddCommand_Run(t *testing.T) {
	config := &cmd.Config{PullRequests: []string{"penpot/penpot#6982"}}
	ac, saved := newAddCommand(t, config, []contrib.Ref{{Owner: "google", Repo: "guava", Number: 7988}})

	require.NoError(t, ac.Run(context.Background()))
	require.Len(t, *saved, 1)
	assert.Equal(t, []string{"penpot/penpot#6982", "google/guava#7988"}, (*saved)[0].PullRequests)
}

func TestAddCommand_RunAlreadyListed(t *testing.T) {
	config := &cmd.Config{PullRequests: []string{"https://github.com/google/guava/pull/7988"}}
	ac, saved := newAddCommand(t, config, []contrib.Ref{{Owner: "google", Repo: "guava", Number: 7988}})

	err := ac.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already listed")
	assert.Empty(t, *saved)
}

func TestAddCommand_RunUnknownPR(t *testing.T) {
	config := &cmd.Config{}
	ac, saved := newAddCommand(t, config, []contrib.Ref{
		{Owner: "google", Repo: "guava", Number: 7988},
		{Owner: "google", Repo: "guava", Number: 1},
	})

	err := ac.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch PR details")
	assert.Empty(t, *saved)
	assert.Empty(t, config.PullRequests)
}

func TestAddCommand_RunRepeatedRef(t *testing.T) {
	ref := contrib.Ref{Owner: "google", Repo: "guava", Number: 7988}
	config := &cmd.Config{}
	ac, saved := newAddCommand(t, config, []contrib.Ref{ref, ref})

	err := ac.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than once")
	assert.Empty(t, *saved)
	assert.Empty(t, config.PullRequests)
}
