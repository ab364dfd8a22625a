package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/nexus/internal/cli"
	"github.com/thenoetrevino/nexus/internal/cli/styles"
	"github.com/thenoetrevino/nexus/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks in insertion order, optionally limited to one column.

Examples:
  nexus task list
  nexus task list --status=review
  nexus task list --quiet`,
		RunE: runList,
	}

	cmd.Flags().String("status", "", "Only list tasks in this column")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	statusStr, _ := cmd.Flags().GetString("status")
	var status models.TaskStatus
	if statusStr != "" {
		var err error
		if status, err = cli.ParseStatusFlag(statusStr); err != nil {
			return cli.HandleServiceError(formatter, err)
		}
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer closeCLI(cliInstance)

	var tasks []*models.Task
	if status != "" {
		tasks, err = cliInstance.App.TaskService.TasksByStatus(ctx, status)
	} else {
		tasks, err = cliInstance.App.TaskService.Tasks(ctx)
	}
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	return formatter.Success(tasks, func(w io.Writer) error {
		if len(tasks) == 0 {
			fmt.Fprintln(w, "No tasks found")
			return nil
		}
		fmt.Fprintf(w, "Found %d tasks:\n\n", len(tasks))
		for _, t := range tasks {
			fmt.Fprintf(w, "  [%s] %s %s (%s)\n", t.ID, styles.RenderPriority(t.Priority), t.Title, t.Status.Label())
		}
		return nil
	})
}
