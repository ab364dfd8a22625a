// Package launcher runs the interactive board
package launcher

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/nexus/internal/cli"
	"github.com/thenoetrevino/nexus/internal/tui"
)

// Launch opens the board described by opts and runs the TUI until the user
// quits or ctx is cancelled
func Launch(ctx context.Context, opts cli.Options) error {
	cliInstance, err := cli.NewCLI(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	if !cliInstance.App.Advisor.Available() {
		slog.Info("AI advisor disabled, no API key configured")
	}

	model := tui.InitialModel(ctx, cliInstance.App, cliInstance.Config)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	slog.Info("board closed")
	return nil
}
