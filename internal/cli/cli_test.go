package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/thenoetrevino/nexus/internal/app"
	"github.com/thenoetrevino/nexus/internal/config"
	"github.com/thenoetrevino/nexus/internal/models"
	taskservice "github.com/thenoetrevino/nexus/internal/services/task"
	"github.com/thenoetrevino/nexus/internal/testutil"
)

func newBufferedFormatter(jsonOut, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonOut, Quiet: quiet, Out: &out, ErrOut: &errOut}, &out, &errOut
}

// ============================================================================
// OUTPUT
// ============================================================================

func TestSuccess_JSONEnvelope(t *testing.T) {
	f, out, _ := newBufferedFormatter(true, false)

	if err := f.Success(map[string]string{"id": "t1"}, nil); err != nil {
		t.Fatalf("Success: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out.String(), err)
	}
	if got["success"] != true {
		t.Errorf("expected success=true, got %v", got["success"])
	}
	if got["data"].(map[string]any)["id"] != "t1" {
		t.Errorf("expected data.id=t1, got %v", got["data"])
	}
}

func TestSuccess_QuietPrintsIDs(t *testing.T) {
	f, out, _ := newBufferedFormatter(false, true)
	tasks := []*models.Task{{ID: "a"}, {ID: "b"}}

	if err := f.Success(tasks, func(io.Writer) error { t.Fatal("human output in quiet mode"); return nil }); err != nil {
		t.Fatalf("Success: %v", err)
	}
	if out.String() != "a\nb\n" {
		t.Errorf("expected one ID per line, got %q", out.String())
	}

	out.Reset()
	if err := f.Success(&models.User{ID: "u1"}, nil); err != nil {
		t.Fatalf("Success: %v", err)
	}
	if out.String() != "u1\n" {
		t.Errorf("expected single ID, got %q", out.String())
	}
}

func TestSuccess_Human(t *testing.T) {
	f, out, _ := newBufferedFormatter(false, false)
	err := f.Success("ignored", func(w io.Writer) error {
		_, err := fmt.Fprint(w, "hello")
		return err
	})
	if err != nil || out.String() != "hello" {
		t.Errorf("expected human output, got %q (%v)", out.String(), err)
	}
}

func TestErrorWithSuggestion(t *testing.T) {
	f, out, errOut := newBufferedFormatter(false, false)
	if err := f.ErrorWithSuggestion("X", "boom", "try again"); err != nil {
		t.Fatalf("ErrorWithSuggestion: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("human errors must go to stderr, stdout got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "❌ Error: boom") || !strings.Contains(errOut.String(), "💡 Suggestion: try again") {
		t.Errorf("unexpected stderr: %q", errOut.String())
	}

	f, out, _ = newBufferedFormatter(true, false)
	if err := f.Error("NOT_FOUND", "gone"); err != nil {
		t.Fatalf("Error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	errData := got["error"].(map[string]any)
	if got["success"] != false || errData["code"] != "NOT_FOUND" || errData["message"] != "gone" {
		t.Errorf("unexpected payload: %v", got)
	}
	if _, ok := errData["suggestion"]; ok {
		t.Errorf("empty suggestion must be omitted")
	}
}

// ============================================================================
// EXIT CODES
// ============================================================================

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != ExitSuccess {
		t.Errorf("nil error must map to success")
	}
	if ExitCode(errors.New("plain")) != ExitError {
		t.Errorf("plain errors must map to ExitError")
	}

	wrapped := fmt.Errorf("outer: %w", Exit(ExitNotFound, models.ErrTaskNotFound))
	if ExitCode(wrapped) != ExitNotFound {
		t.Errorf("expected wrapped exit code %d, got %d", ExitNotFound, ExitCode(wrapped))
	}
	if !errors.Is(wrapped, models.ErrTaskNotFound) {
		t.Errorf("CommandError must unwrap to its cause")
	}
	if !Reported(wrapped) || Reported(errors.New("x")) {
		t.Errorf("Reported must detect CommandError only")
	}
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantExit int
		wantCode string
	}{
		{"task not found", fmt.Errorf("get: %w", models.ErrTaskNotFound), ExitNotFound, "TASK_NOT_FOUND"},
		{"unknown assignee", taskservice.ErrUnknownAssignee, ExitNotFound, "USER_NOT_FOUND"},
		{"invalid status", models.ErrInvalidStatus, ExitValidation, "INVALID_STATUS"},
		{"invalid priority", models.ErrInvalidPriority, ExitValidation, "INVALID_PRIORITY"},
		{"due date", taskservice.ErrInvalidDueDate, ExitValidation, "INVALID_DUE_DATE"},
		{"empty title", taskservice.ErrEmptyTitle, ExitValidation, "VALIDATION_ERROR"},
		{"other", errors.New("disk full"), ExitError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newBufferedFormatter(true, false)
			err := HandleServiceError(f, tt.err)
			if ExitCode(err) != tt.wantExit {
				t.Errorf("expected exit %d, got %d", tt.wantExit, ExitCode(err))
			}
			if !strings.Contains(out.String(), `"code":"`+tt.wantCode+`"`) {
				t.Errorf("expected code %s in %s", tt.wantCode, out.String())
			}
		})
	}
}

// ============================================================================
// PARSING & SUGGESTIONS
// ============================================================================

func TestParseStatusFlag(t *testing.T) {
	got, err := ParseStatusFlag("In Progress")
	if err != nil || got != models.StatusInProgress {
		t.Fatalf("expected in-progress, got %q (%v)", got, err)
	}

	_, err = ParseStatusFlag("reveiw")
	var sugg *SuggestionError
	if !errors.As(err, &sugg) {
		t.Fatalf("expected SuggestionError, got %v", err)
	}
	if !errors.Is(err, models.ErrInvalidStatus) {
		t.Errorf("SuggestionError must wrap ErrInvalidStatus")
	}
	if sugg.Suggestion != "Did you mean 'review'?" {
		t.Errorf("unexpected suggestion %q", sugg.Suggestion)
	}
}

func TestParsePriorityFlag(t *testing.T) {
	got, err := ParsePriorityFlag(" High ")
	if err != nil || got != models.PriorityHigh {
		t.Fatalf("expected high, got %q (%v)", got, err)
	}

	_, err = ParsePriorityFlag("catastrophic")
	var sugg *SuggestionError
	if !errors.As(err, &sugg) {
		t.Fatalf("expected SuggestionError, got %v", err)
	}
	if sugg.Suggestion != "Valid values: low, medium, high, urgent" {
		t.Errorf("far-off input should list valid values, got %q", sugg.Suggestion)
	}
}

func TestClosestMatch(t *testing.T) {
	candidates := []string{"todo", "in-progress", "review", "done"}
	if got := ClosestMatch("DONE", candidates); got != "done" {
		t.Errorf("expected case-insensitive match, got %q", got)
	}
	if got := ClosestMatch("in-progres", candidates); got != "in-progress" {
		t.Errorf("expected in-progress, got %q", got)
	}
	if got := ClosestMatch("zzzzzzzz", candidates); got != "" {
		t.Errorf("expected no match, got %q", got)
	}
	if got := ClosestMatch("", candidates); got != "" {
		t.Errorf("empty input must not match, got %q", got)
	}
}

// ============================================================================
// CONTEXT
// ============================================================================

func TestGetCLIFromContext_UsesInjectedApp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	a := app.New(db)

	c, err := GetCLIFromContext(WithApp(context.Background(), a))
	if err != nil {
		t.Fatalf("GetCLIFromContext: %v", err)
	}
	if c.App != a {
		t.Fatalf("expected the injected app")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		t.Errorf("closing a borrowed CLI must leave the database open: %v", err)
	}
}

func TestNewCLI_Memory(t *testing.T) {
	cfg := config.Default()
	ctx := WithOptions(context.Background(), Options{Memory: true, Config: cfg})

	c, err := GetCLIFromContext(ctx)
	if err != nil {
		t.Fatalf("GetCLIFromContext: %v", err)
	}
	defer c.Close()

	tasks, err := c.App.TaskService.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks: %v", err)
	}
	if len(tasks) != 4 {
		t.Errorf("expected the seeded board, got %d tasks", len(tasks))
	}
	if c.App.Advisor.Available() {
		t.Errorf("no API key configured, advisor must be unavailable")
	}
}
