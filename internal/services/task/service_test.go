package task

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/nexus/internal/board"
	"github.com/thenoetrevino/nexus/internal/database"
	"github.com/thenoetrevino/nexus/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupTestService(t *testing.T) *service {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := NewService(database.NewRepository(db)).(*service)
	n := 0
	svc.newID = func() string {
		n++
		return "new-" + string(rune('0'+n))
	}
	return svc
}

// ============================================================================
// CREATE
// ============================================================================

func TestCreateTask_Defaults(t *testing.T) {
	svc := setupTestService(t)

	task, err := svc.CreateTask(context.Background(), CreateTaskRequest{Title: "  Ship it  "})
	require.NoError(t, err)

	assert.Equal(t, "new-1", task.ID)
	assert.Equal(t, "Ship it", task.Title)
	assert.Equal(t, models.StatusTodo, task.Status)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Empty(t, task.AssigneeID)
	assert.Empty(t, task.Tags)
}

func TestCreateTask_AllFields(t *testing.T) {
	svc := setupTestService(t)

	task, err := svc.CreateTask(context.Background(), CreateTaskRequest{
		Title:       "Rotate keys",
		Description: "- revoke old\n- issue new",
		Status:      models.StatusReview,
		Priority:    models.PriorityUrgent,
		AssigneeID:  "u3",
		DueDate:     "2024-06-01",
		Tags:        []string{"Security", "Security", "Infra"},
	})
	require.NoError(t, err)

	got, err := svc.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, got)
	assert.Equal(t, []string{"Security", "Infra"}, got.Tags)

	review, err := svc.TasksByStatus(context.Background(), models.StatusReview)
	require.NoError(t, err)
	require.Len(t, review, 2)
	assert.Equal(t, "t3", review[0].ID)
	assert.Equal(t, task.ID, review[1].ID, "new tasks land at the end of the column")
}

func TestCreateTask_Validation(t *testing.T) {
	svc := setupTestService(t)

	tests := []struct {
		name string
		req  CreateTaskRequest
		want error
	}{
		{"empty title", CreateTaskRequest{Title: "   "}, ErrEmptyTitle},
		{"long title", CreateTaskRequest{Title: strings.Repeat("x", 256)}, ErrTitleTooLong},
		{"bad status", CreateTaskRequest{Title: "a", Status: "blocked"}, models.ErrInvalidStatus},
		{"bad priority", CreateTaskRequest{Title: "a", Priority: "critical"}, models.ErrInvalidPriority},
		{"bad due date", CreateTaskRequest{Title: "a", DueDate: "05/20/2024"}, ErrInvalidDueDate},
		{"unknown assignee", CreateTaskRequest{Title: "a", AssigneeID: "u99"}, ErrUnknownAssignee},
		{"too many tags", CreateTaskRequest{Title: "a", Tags: manyTags(21)}, ErrTooManyTags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTask(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	tasks, err := svc.Tasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 4, "rejected requests must not be stored")
}

func TestCreateTask_TitleAtLimit(t *testing.T) {
	svc := setupTestService(t)
	_, err := svc.CreateTask(context.Background(), CreateTaskRequest{Title: strings.Repeat("x", 255)})
	assert.NoError(t, err)
}

func manyTags(n int) []string {
	tags := make([]string, n)
	for i := range tags {
		tags[i] = "tag-" + strings.Repeat("x", i+1)
	}
	return tags
}

// ============================================================================
// STATUS & DELETE
// ============================================================================

func TestUpdateTaskStatus(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.UpdateTaskStatus(ctx, "t4", models.StatusTodo))
	got, err := svc.GetTask(ctx, "t4")
	require.NoError(t, err)
	assert.Equal(t, models.StatusTodo, got.Status)

	assert.NoError(t, svc.UpdateTaskStatus(ctx, "t4", models.StatusTodo), "same status is legal")
	assert.ErrorIs(t, svc.UpdateTaskStatus(ctx, "", models.StatusTodo), ErrInvalidTaskID)
	assert.ErrorIs(t, svc.UpdateTaskStatus(ctx, "t4", "later"), models.ErrInvalidStatus)
	assert.ErrorIs(t, svc.UpdateTaskStatus(ctx, "nope", models.StatusDone), models.ErrTaskNotFound)
}

func TestDeleteTask(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteTask(ctx, "t2"))
	_, err := svc.GetTask(ctx, "t2")
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
	assert.ErrorIs(t, svc.DeleteTask(ctx, "t2"), models.ErrTaskNotFound)
	assert.ErrorIs(t, svc.DeleteTask(ctx, " "), ErrInvalidTaskID)

	counts, err := svc.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, counts[models.StatusInProgress])
	assert.Equal(t, 1, counts[models.StatusTodo])
}

func TestGetTask_EmptyID(t *testing.T) {
	svc := setupTestService(t)
	_, err := svc.GetTask(context.Background(), "")
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
}

// ============================================================================
// BOARD INTEGRATION
// ============================================================================

func TestService_DrivesBoardMachine(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	m := board.NewMachine(svc)

	payload, err := m.BeginDrag(ctx, "t1")
	require.NoError(t, err)
	require.NoError(t, m.HoverColumn(models.StatusInProgress))

	result, err := m.Drop(ctx, payload, models.StatusInProgress)
	require.NoError(t, err)
	assert.True(t, result.Committed)

	views, err := m.Board(ctx)
	require.NoError(t, err)
	require.Len(t, views[1].Tasks, 2)
	assert.Equal(t, []string{"t1", "t2"}, []string{views[1].Tasks[0].ID, views[1].Tasks[1].ID},
		"column order follows insertion order, not move order")
	assert.Empty(t, views[0].Tasks)

	// A stale payload never touches the database
	_, err = m.BeginDrag(ctx, "t2")
	require.NoError(t, err)
	result, err = m.Drop(ctx, board.Payload{TaskID: "deleted"}, models.StatusDone)
	require.NoError(t, err)
	assert.False(t, result.Committed)

	counts, err := svc.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[models.StatusDone])
}
