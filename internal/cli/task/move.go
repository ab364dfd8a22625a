package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/nexus/internal/cli"
	"github.com/thenoetrevino/nexus/internal/models"
)

// moveResult is the JSON payload of a move
type moveResult struct {
	ID   string            `json:"id"`
	From models.TaskStatus `json:"from"`
	To   models.TaskStatus `json:"to"`
}

func (r moveResult) GetID() string { return r.ID }

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move --id=<task> <status>",
		Short: "Move a task to another column",
		Long: `Move a task to another column, the same way a drag and drop on the
board does. Moving a task into the column it is already in is allowed.

Examples:
  nexus task move --id=t1 in-progress
  nexus task move --id=t3 "In Progress"`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id, _ := cmd.Flags().GetString("id")
	if err := cli.RequireFlag(formatter, "id", id); err != nil {
		return err
	}
	target, err := cli.ParseStatusFlag(args[0])
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer closeCLI(cliInstance)

	machine := cliInstance.App.NewBoard()
	payload, err := machine.BeginDrag(ctx, id)
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}
	if err := machine.HoverColumn(target); err != nil {
		machine.CancelDrag()
		return cli.HandleServiceError(formatter, err)
	}
	result, err := machine.Drop(ctx, payload, target)
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}
	if !result.Committed {
		// The task vanished between pick up and drop
		return cli.HandleServiceError(formatter, fmt.Errorf("%w: %s", models.ErrTaskNotFound, id))
	}

	out := moveResult{ID: result.TaskID, From: result.From, To: result.To}
	return formatter.Success(out, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "✓ Moved task %s: %s → %s\n", out.ID, out.From.Label(), out.To.Label())
		return err
	})
}
