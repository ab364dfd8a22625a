package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/nexus/internal/cli"
)

type deleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func (r deleteResult) GetID() string { return r.ID }

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long: `Delete a task and its tags.

Examples:
  nexus task delete --id=t4`,
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := cliInstance.App.TaskService.DeleteTask(ctx, id); err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	return formatter.Success(deleteResult{ID: id, Deleted: true}, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "✓ Task %s deleted\n", id)
		return err
	})
}
