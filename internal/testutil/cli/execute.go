package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/nexus/internal/app"
	nexuscli "github.com/thenoetrevino/nexus/internal/cli"
)

// Result is the captured outcome of one command run
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// ExecuteCLICommand runs cmd with args against testApp and returns stdout
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	res := Execute(t, testApp, cmd, args)
	return res.Stdout, res.Err
}

// Execute runs cmd with args against testApp, capturing both streams
func Execute(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) Result {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	ctx := nexuscli.WithApp(context.Background(), testApp)
	err := cmd.ExecuteContext(ctx)

	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	return result
}
