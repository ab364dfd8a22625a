package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/nexus/internal/cli"
)

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	t.Setenv("NEXUS_DB_PATH", "")
	t.Setenv("NEXUS_THEME_FILE", "")

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--log-dir", t.TempDir()}, args...))

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootRegistersCommands(t *testing.T) {
	root := NewRootCmd()
	for _, path := range [][]string{
		{"task", "create"}, {"task", "list"}, {"task", "show"}, {"task", "move"}, {"task", "delete"},
		{"board"}, {"team", "list"}, {"ai", "insights"}, {"ai", "describe"},
	} {
		found, _, err := root.Find(path)
		require.NoError(t, err, strings.Join(path, " "))
		assert.Equal(t, path[len(path)-1], found.Name())
	}
}

func TestMemoryBoard(t *testing.T) {
	stdout, _, err := runRoot(t, "task", "list", "--memory", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2", "t3", "t4"}, strings.Fields(stdout))
}

func TestDatabaseFlagPersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "board.db")

	_, _, err := runRoot(t, "--db", dbPath, "task", "move", "--id", "t1", "review")
	require.NoError(t, err)

	stdout, _, err := runRoot(t, "--db", dbPath, "task", "list", "--status", "review", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t3"}, strings.Fields(stdout))
}

func TestExitCodes(t *testing.T) {
	_, _, err := runRoot(t, "task", "show", "--memory", "--id", "missing")
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	_, stderr, err := runRoot(t, "task", "list", "--memory", "--no-such-flag")
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	assert.Contains(t, stderr, "unknown flag")
}
