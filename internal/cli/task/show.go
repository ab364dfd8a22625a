package task

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/nexus/internal/cli"
	"github.com/thenoetrevino/nexus/internal/cli/styles"
	"github.com/thenoetrevino/nexus/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show task details",
		Long: `Show a task with its description rendered as markdown.

Examples:
  nexus task show --id=t3
  nexus task show --id=t3 --json`,
		RunE: runShow,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id, _ := cmd.Flags().GetString("id")
	if err := cli.RequireFlag(formatter, "id", id); err != nil {
		return err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer closeCLI(cliInstance)

	task, err := cliInstance.App.TaskService.GetTask(ctx, id)
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	assignee := "Unassigned"
	if task.AssigneeID != "" {
		if member, err := cliInstance.App.TeamService.Member(ctx, task.AssigneeID); err == nil {
			assignee = member.Name
		} else {
			assignee = task.AssigneeID
		}
	}

	return formatter.Success(task, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, styles.RenderCard(renderTask(task, assignee)))
		return err
	})
}

func renderTask(task *models.Task, assignee string) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(task.Title))
	b.WriteString("  " + styles.SubtitleStyle.Render(task.ID) + "\n\n")

	field := func(label, value string) {
		b.WriteString(styles.LabelStyle.Render(label+":") + " " + styles.ValueStyle.Render(value) + "\n")
	}
	field("Status", task.Status.Label())
	b.WriteString(styles.LabelStyle.Render("Priority:") + " " + styles.RenderPriority(task.Priority) + "\n")
	field("Assignee", assignee)
	if task.DueDate != "" {
		field("Due", task.DueDate)
	}
	if len(task.Tags) > 0 {
		b.WriteString(styles.LabelStyle.Render("Tags:") + " " + styles.RenderTags(task.Tags) + "\n")
	}

	b.WriteString(styles.SectionStyle.Render("Description") + "\n")
	if task.Description == "" {
		b.WriteString(styles.SubtitleStyle.Render("No description"))
	} else {
		b.WriteString(cli.RenderMarkdown(task.Description, styles.CardWidth-6))
	}
	return b.String()
}
