// Package board renders the kanban board for `nexus board`
package board

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	kanban "github.com/thenoetrevino/nexus/internal/board"
	"github.com/thenoetrevino/nexus/internal/cli"
	"github.com/thenoetrevino/nexus/internal/cli/styles"
	"github.com/thenoetrevino/nexus/internal/models"
)

// columnJSON is one column of the --json output
type columnJSON struct {
	Status models.TaskStatus `json:"status"`
	Label  string            `json:"label"`
	Count  int               `json:"count"`
	Tasks  []*models.Task    `json:"tasks"`
}

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the board",
		Long: `Print every column of the board side by side with its task cards.

Examples:
  nexus board
  nexus board --json`,
		RunE: runBoard,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runBoard(cmd *cobra.Command, args []string) error {
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

	views, err := cliInstance.App.NewBoard().Board(ctx)
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}
	directory, err := cliInstance.App.TeamService.Directory(ctx)
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	if formatter.Quiet {
		var tasks []*models.Task
		for _, v := range views {
			tasks = append(tasks, v.Tasks...)
		}
		return formatter.Success(tasks, nil)
	}

	out := make([]columnJSON, len(views))
	for i, v := range views {
		tasks := v.Tasks
		if tasks == nil {
			tasks = []*models.Task{}
		}
		out[i] = columnJSON{Status: v.Status, Label: v.Label, Count: len(v.Tasks), Tasks: tasks}
	}

	return formatter.Success(out, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, Render(views, directory))
		return err
	})
}

// Render lays the columns out horizontally
func Render(views []kanban.ColumnView, directory map[string]*models.User) string {
	rendered := make([]string, len(views))
	for i, v := range views {
		rendered[i] = renderColumn(v, directory)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderColumn(v kanban.ColumnView, directory map[string]*models.User) string {
	var b strings.Builder
	b.WriteString(styles.RenderColumnHeader(v.Column, len(v.Tasks)))
	b.WriteString("\n")

	if len(v.Tasks) == 0 {
		b.WriteString("\n" + styles.SubtitleStyle.Render("No tasks"))
	}
	for _, t := range v.Tasks {
		b.WriteString("\n" + renderCard(t, directory))
	}
	return styles.ColumnStyle.Render(b.String())
}

func renderCard(t *models.Task, directory map[string]*models.User) string {
	var b strings.Builder
	b.WriteString(styles.RenderPriority(t.Priority) + "\n")
	b.WriteString(styles.TitleStyle.Render(t.Title) + "\n")
	if len(t.Tags) > 0 {
		b.WriteString(styles.RenderTags(t.Tags) + "\n")
	}

	meta := t.ID
	if u, ok := directory[t.AssigneeID]; ok {
		meta += " · " + u.Name
	}
	if t.DueDate != "" {
		meta += " · due " + t.DueDate
	}
	b.WriteString(styles.SubtitleStyle.Render(meta))
	return b.String()
}
