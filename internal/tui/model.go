package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/nexus/internal/advisor"
	"github.com/thenoetrevino/nexus/internal/app"
	"github.com/thenoetrevino/nexus/internal/board"
	"github.com/thenoetrevino/nexus/internal/config"
	"github.com/thenoetrevino/nexus/internal/models"
	taskservice "github.com/thenoetrevino/nexus/internal/services/task"
	teamservice "github.com/thenoetrevino/nexus/internal/services/team"
)

// taskFormValues backs the new task form. It lives behind a pointer so the
// form keeps writing to the same fields after Model is copied.
type taskFormValues struct {
	Column      models.TaskStatus
	Title       string
	Description string
	Priority    models.Priority
	Generate    bool
	Confirm     bool
}

var payloadNone = board.Payload{}

// addRequest is filled by the board machine's add-task handler
type addRequest struct {
	column  models.TaskStatus
	pending bool
}

// Model is the bubbletea model of the board
type Model struct {
	ctx    context.Context
	logger *slog.Logger

	tasks   taskservice.Service
	team    teamservice.Service
	advisor *advisor.Advisor
	machine *board.Machine

	config *config.Config
	keys   keyMap
	theme  theme

	mode           Mode
	width, height  int
	views          []board.ColumnView
	directory      map[string]*models.User
	selectedColumn int
	selectedTask   int

	payload    board.Payload // set while a card is picked up
	dragOrigin int           // column the picked up card came from
	offBoard   int           // -1 or 1 while dragged past the left or right edge

	add        *addRequest
	form       *huh.Form
	formValues *taskFormValues

	insights        *advisor.Insights
	insightsLoading bool

	notification *Notification
}

// InitialModel creates the board model and loads the first snapshot
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	add := &addRequest{}
	m := Model{
		ctx:        ctx,
		logger:     a.Logger(),
		tasks:      a.TaskService,
		team:       a.TeamService,
		advisor:    a.Advisor,
		config:     cfg,
		keys:       newKeyMap(cfg.KeyMappings),
		theme:      newTheme(cfg.ColorScheme),
		add:        add,
		formValues: &taskFormValues{},
	}
	m.machine = a.NewBoard(board.WithAddTaskHandler(func(column models.TaskStatus) {
		add.column = column
		add.pending = true
	}))

	m.reload()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode returns the current input mode
func (m Model) Mode() Mode {
	return m.mode
}

// Columns returns the current board snapshot
func (m Model) Columns() []board.ColumnView {
	return m.views
}

// Notification returns the status bar message, if any
func (m Model) Notification() *Notification {
	return m.notification
}

// reload re-reads the board from the store and clamps the selection
func (m *Model) reload() {
	views, err := m.machine.Board(m.ctx)
	if err != nil {
		m.logger.Error("failed to load board", "error", err)
		m.notify(LevelError, "Failed to load board")
		if m.views == nil {
			m.views = board.Partition(nil)
		}
		return
	}
	m.views = views

	directory, err := m.team.Directory(m.ctx)
	if err != nil {
		m.logger.Error("failed to load team", "error", err)
		directory = map[string]*models.User{}
	}
	m.directory = directory

	m.clampSelection()
}

func (m *Model) clampSelection() {
	m.selectedColumn = max(0, min(m.selectedColumn, len(m.views)-1))
	n := len(m.currentTasks())
	m.selectedTask = max(0, min(m.selectedTask, n-1))
}

func (m Model) currentColumn() board.ColumnView {
	if len(m.views) == 0 {
		return board.ColumnView{Column: board.ColumnAt(0)}
	}
	return m.views[m.selectedColumn]
}

func (m Model) currentTasks() []*models.Task {
	if len(m.views) == 0 {
		return nil
	}
	return m.views[m.selectedColumn].Tasks
}

// currentTask returns the selected card, or nil for an empty column
func (m Model) currentTask() *models.Task {
	tasks := m.currentTasks()
	if m.selectedTask < 0 || m.selectedTask >= len(tasks) {
		return nil
	}
	return tasks[m.selectedTask]
}

// selectTask moves the selection to the card with id
func (m *Model) selectTask(id string) {
	for ci, v := range m.views {
		for ti, t := range v.Tasks {
			if t.ID == id {
				m.selectedColumn, m.selectedTask = ci, ti
				return
			}
		}
	}
}

func (m *Model) notify(level Level, msg string) {
	m.notification = &Notification{Level: level, Message: msg}
}
