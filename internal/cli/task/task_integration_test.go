package task

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/thenoetrevino/nexus/internal/advisor"
	"github.com/thenoetrevino/nexus/internal/cli"
	"github.com/thenoetrevino/nexus/internal/models"
	testutilcli "github.com/thenoetrevino/nexus/internal/testutil/cli"
)

type stubGenerator struct{ reply string }

func (s stubGenerator) Generate(context.Context, advisor.Request) (string, error) {
	return s.reply, nil
}

// ============================================================================
// CREATE
// ============================================================================

func TestCreateTaskCommand(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	tests := []struct {
		name      string
		args      []string
		wantCode  int
		checkFunc func(t *testing.T, output string)
	}{
		{
			name: "required flags only",
			args: []string{"--title", "Write docs", "--quiet"},
			checkFunc: func(t *testing.T, output string) {
				id := strings.TrimSpace(output)
				if _, err := uuid.Parse(id); err != nil {
					t.Fatalf("Expected a UUID task ID, got: %q", output)
				}
				task, err := app.TaskService.GetTask(context.Background(), id)
				if err != nil {
					t.Fatalf("GetTask(%s): %v", id, err)
				}
				if task.Status != models.StatusTodo || task.Priority != models.PriorityMedium {
					t.Errorf("Expected todo/medium defaults, got %s/%s", task.Status, task.Priority)
				}
			},
		},
		{
			name: "all fields",
			args: []string{
				"--title", "Rotate keys", "--status", "In Progress", "--priority", "URGENT",
				"--assignee", "u2", "--due", "2024-07-01", "--tag", "Security", "--tag", "Infra", "--json",
			},
			checkFunc: func(t *testing.T, output string) {
				result := testutilcli.ParseJSON(t, output)
				if result["success"] != true {
					t.Fatalf("Expected success, got %v", result)
				}
				data := result["data"].(map[string]any)
				if data["status"] != "in-progress" || data["priority"] != "urgent" || data["assigneeId"] != "u2" {
					t.Errorf("Unexpected task: %v", data)
				}
				tags := data["tags"].([]any)
				if len(tags) != 2 || tags[0] != "Security" || tags[1] != "Infra" {
					t.Errorf("Expected tags [Security Infra], got %v", tags)
				}
			},
		},
		{
			name:     "missing title",
			args:     []string{"--priority", "high"},
			wantCode: cli.ExitUsage,
		},
		{
			name:     "invalid priority",
			args:     []string{"--title", "x", "--priority", "critical"},
			wantCode: cli.ExitValidation,
		},
		{
			name:     "invalid status",
			args:     []string{"--title", "x", "--status", "blocked"},
			wantCode: cli.ExitValidation,
		},
		{
			name:     "unknown assignee",
			args:     []string{"--title", "x", "--assignee", "u42"},
			wantCode: cli.ExitNotFound,
		},
		{
			name:     "bad due date",
			args:     []string{"--title", "x", "--due", "tomorrow"},
			wantCode: cli.ExitValidation,
		},
		{
			name:     "generate conflicts with description",
			args:     []string{"--title", "x", "--description", "y", "--generate"},
			wantCode: cli.ExitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := testutilcli.ExecuteCLICommand(t, app, CreateCmd(), tt.args)

			if got := cli.ExitCode(err); got != tt.wantCode {
				t.Fatalf("Expected exit code %d, got %d (err: %v, output: %s)", tt.wantCode, got, err, output)
			}
			if tt.checkFunc != nil {
				tt.checkFunc(t, output)
			}
		})
	}
}

func TestCreateTaskCommand_Suggestion(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	res := testutilcli.Execute(t, app, CreateCmd(), []string{"--title", "x", "--priority", "urgnt"})
	if cli.ExitCode(res.Err) != cli.ExitValidation {
		t.Fatalf("Expected validation exit code, got %v", res.Err)
	}
	if !strings.Contains(res.Stderr, "Did you mean 'urgent'?") {
		t.Errorf("Expected a suggestion on stderr, got: %s", res.Stderr)
	}
}

func TestCreateTaskCommand_Generate(t *testing.T) {
	_, app := testutilcli.SetupCLITestWithGenerator(t, stubGenerator{reply: "- Add provider"})

	output, err := testutilcli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", "OAuth", "--generate", "--json"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	data := testutilcli.ParseJSON(t, output)["data"].(map[string]any)
	if data["description"] != "- Add provider" {
		t.Errorf("Expected generated description, got %v", data["description"])
	}
}

func TestCreateTaskCommand_GenerateFallback(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	output, err := testutilcli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", "OAuth", "--generate"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(output, "could not draft a description") {
		t.Errorf("Expected fallback note, got: %s", output)
	}

	tasks, _ := app.TaskService.TasksByStatus(context.Background(), models.StatusTodo)
	last := tasks[len(tasks)-1]
	if last.Description != advisor.DescriptionFallback {
		t.Errorf("Expected fallback description to be stored, got %q", last.Description)
	}
}

// ============================================================================
// LIST & SHOW
// ============================================================================

func TestListCommand(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	output, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := strings.Fields(output); strings.Join(got, ",") != "t1,t2,t3,t4" {
		t.Errorf("Expected seeded tasks in insertion order, got %v", got)
	}

	output, err = testutilcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", "review", "--json"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	data := testutilcli.ParseJSON(t, output)["data"].([]any)
	if len(data) != 1 || data[0].(map[string]any)["id"] != "t3" {
		t.Errorf("Expected only t3 in review, got %v", data)
	}

	_, err = testutilcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", "revew"})
	if cli.ExitCode(err) != cli.ExitValidation {
		t.Errorf("Expected validation error for bad status, got %v", err)
	}
}

func TestShowCommand(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	output, err := testutilcli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", "t3"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, want := range []string{"t3", "Review", "URGENT"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}

	res := testutilcli.Execute(t, app, ShowCmd(), []string{"--id", "missing", "--json"})
	if cli.ExitCode(res.Err) != cli.ExitNotFound {
		t.Fatalf("Expected not found exit code, got %v", res.Err)
	}
	result := testutilcli.ParseJSON(t, res.Stdout)
	errData := result["error"].(map[string]any)
	if result["success"] != false || errData["code"] != "TASK_NOT_FOUND" {
		t.Errorf("Unexpected error payload: %v", result)
	}
}

// ============================================================================
// MOVE & DELETE
// ============================================================================

func TestMoveCommand(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)
	ctx := context.Background()

	output, err := testutilcli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", "t1", "done", "--json"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	data := testutilcli.ParseJSON(t, output)["data"].(map[string]any)
	if data["from"] != "todo" || data["to"] != "done" {
		t.Errorf("Unexpected move result: %v", data)
	}
	task, _ := app.TaskService.GetTask(ctx, "t1")
	if task.Status != models.StatusDone {
		t.Errorf("Expected t1 to be done, got %s", task.Status)
	}

	// Same column is allowed
	if _, err := testutilcli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", "t1", "done"}); err != nil {
		t.Errorf("Expected same-column move to succeed, got %v", err)
	}

	_, err = testutilcli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", "nope", "done"})
	if cli.ExitCode(err) != cli.ExitNotFound {
		t.Errorf("Expected not found for unknown task, got %v", err)
	}

	_, err = testutilcli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", "t2", "archived"})
	if cli.ExitCode(err) != cli.ExitValidation {
		t.Errorf("Expected validation error for unknown column, got %v", err)
	}
	task, _ = app.TaskService.GetTask(ctx, "t2")
	if task.Status != models.StatusInProgress {
		t.Errorf("Rejected move must not change t2, got %s", task.Status)
	}
}

func TestDeleteCommand(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	output, err := testutilcli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "t4", "--quiet"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if strings.TrimSpace(output) != "t4" {
		t.Errorf("Expected deleted ID, got %q", output)
	}

	_, err = testutilcli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "t4"})
	if cli.ExitCode(err) != cli.ExitNotFound {
		t.Errorf("Expected second delete to report not found, got %v", err)
	}

	_, err = testutilcli.ExecuteCLICommand(t, app, DeleteCmd(), nil)
	if cli.ExitCode(err) != cli.ExitUsage {
		t.Errorf("Expected usage error without --id, got %v", err)
	}
}

func TestTaskCmdRegistersSubcommands(t *testing.T) {
	cmd := TaskCmd()
	for _, name := range []string{"create", "list", "show", "move", "delete"} {
		if found, _, err := cmd.Find([]string{name}); err != nil || found.Name() != name {
			t.Errorf("Expected subcommand %q to be registered", name)
		}
	}
}
