// Package team holds the `nexus team` subcommands
package team

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/nexus/internal/cli"
	"github.com/thenoetrevino/nexus/internal/cli/styles"
	"github.com/thenoetrevino/nexus/internal/models"
)

// TeamCmd returns the team parent command
func TeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Inspect the team roster",
	}
	cmd.AddCommand(ListCmd())
	return cmd
}

// ListCmd returns the team list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List team members",
		Long: `List every team member with the ID used by --assignee.

Examples:
  nexus team list
  nexus team list --json`,
		RunE: runList,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	members, err := cliInstance.App.TeamService.Members(ctx)
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	return formatter.Success(members, func(w io.Writer) error {
		if len(members) == 0 {
			fmt.Fprintln(w, "No team members found")
			return nil
		}
		for _, m := range members {
			fmt.Fprintln(w, renderMember(m))
		}
		return nil
	})
}

func renderMember(m *models.User) string {
	return fmt.Sprintf("  [%s] %s %s %s",
		m.ID,
		styles.TitleStyle.Render(m.Name),
		styles.SubtitleStyle.Render("<"+m.Email+">"),
		styles.ValueStyle.Render(string(m.Role)+" · "+string(m.Plan)))
}
