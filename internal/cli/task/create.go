package task

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/nexus/internal/advisor"
	"github.com/thenoetrevino/nexus/internal/cli"
	"github.com/thenoetrevino/nexus/internal/models"
	taskservice "github.com/thenoetrevino/nexus/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task on the board.

Examples:
  nexus task create --title="Fix login bug"
  nexus task create --title="Rotate keys" --status=review --priority=urgent --tag=Security
  nexus task create --title="Implement OAuth Login" --generate

Use --generate to draft the description with the AI advisor. When the advisor
is unavailable the description is set to a fallback notice.`,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("description", "", "Task description (markdown)")
	cmd.Flags().String("status", string(models.StatusTodo), "Initial column: todo, in-progress, review, done")
	cmd.Flags().String("priority", string(models.DefaultPriority), "Priority: low, medium, high, urgent")
	cmd.Flags().String("assignee", "", "Team member ID to assign")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringArray("tag", nil, "Tag to attach (repeatable)")
	cmd.Flags().Bool("generate", false, "Draft the description with the AI advisor")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	statusStr, _ := cmd.Flags().GetString("status")
	priorityStr, _ := cmd.Flags().GetString("priority")
	assignee, _ := cmd.Flags().GetString("assignee")
	due, _ := cmd.Flags().GetString("due")
	tags, _ := cmd.Flags().GetStringArray("tag")
	generate, _ := cmd.Flags().GetBool("generate")

	if err := cli.RequireFlag(formatter, "title", title); err != nil {
		return err
	}
	if generate && description != "" {
		return formatter.Fail(cli.ExitUsage, "FLAG_CONFLICT",
			fmt.Errorf("--generate and --description cannot be combined"), "Drop one of the two flags")
	}

	status, err := cli.ParseStatusFlag(statusStr)
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}
	priority, err := cli.ParsePriorityFlag(priorityStr)
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer closeCLI(cliInstance)

	if generate {
		description = cliInstance.App.Advisor.GenerateTaskDescription(ctx, strings.TrimSpace(title))
	}

	task, err := cliInstance.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		AssigneeID:  assignee,
		DueDate:     due,
		Tags:        tags,
	})
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	return formatter.Success(task, func(w io.Writer) error {
		fmt.Fprintf(w, "✓ Task '%s' created successfully (ID: %s)\n", task.Title, task.ID)
		fmt.Fprintf(w, "  Column: %s\n", task.Status.Label())
		fmt.Fprintf(w, "  Priority: %s\n", task.Priority)
		if generate && task.Description == advisor.DescriptionFallback {
			fmt.Fprintln(w, "  Note: the AI advisor could not draft a description")
		}
		return nil
	})
}
