// Package cmd wires the nexus command tree
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/nexus/internal/cli"
	"github.com/thenoetrevino/nexus/internal/cli/ai"
	"github.com/thenoetrevino/nexus/internal/cli/board"
	"github.com/thenoetrevino/nexus/internal/cli/styles"
	"github.com/thenoetrevino/nexus/internal/cli/task"
	"github.com/thenoetrevino/nexus/internal/cli/team"
	"github.com/thenoetrevino/nexus/internal/config"
	"github.com/thenoetrevino/nexus/internal/launcher"
	"github.com/thenoetrevino/nexus/internal/logging"
)

// NewRootCmd builds the nexus command tree. Without a subcommand it opens
// the interactive board.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nexus",
		Short: "Nexus - a kanban board with an AI advisor",
		Long: `Nexus is a terminal kanban board. Cards move between To Do, In Progress,
Review and Done by drag and drop, and an optional AI advisor drafts task
descriptions and summarizes project health.

Run without arguments to open the board, or use the subcommands for scripting.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context(), cli.OptionsFromContext(cmd.Context()))
		},
	}

	rootCmd.PersistentFlags().String("db", "", "Path to the board database (default ~/.nexus/nexus.db)")
	rootCmd.PersistentFlags().Bool("memory", false, "Use a throwaway in-memory board seeded with sample data")
	rootCmd.PersistentFlags().String("log-dir", "", "Directory for nexus.log (default ~/.nexus/logs)")

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintf(c.ErrOrStderr(), "❌ Error: %v\n", err)
		return cli.Exit(cli.ExitUsage, err)
	})

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(team.TeamCmd())
	rootCmd.AddCommand(ai.AICmd())

	return rootCmd
}

// setup initializes logging and configuration for every command
func setup(cmd *cobra.Command, args []string) error {
	logDir, _ := cmd.Flags().GetString("log-dir")
	if err := logging.Init(logDir); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	styles.Init(cfg.ColorScheme)

	dbPath, _ := cmd.Flags().GetString("db")
	memory, _ := cmd.Flags().GetBool("memory")

	ctx := cli.WithOptions(cmd.Context(), cli.Options{
		DBPath: dbPath,
		Memory: memory,
		Config: cfg,
	})
	cmd.SetContext(ctx)
	return nil
}

// Execute runs the command tree with signal handling for graceful shutdown
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return NewRootCmd().ExecuteContext(ctx)
}
