package tui

// Mode is the input mode of the board
type Mode int

const (
	NormalMode Mode = iota
	DragMode          // a card is picked up
	FormMode          // new task form is open
	DeleteConfirmMode // waiting for y/n
	InsightsMode      // advisor panel is open
	HelpMode
)

func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "NORMAL"
	case DragMode:
		return "MOVE"
	case FormMode:
		return "NEW TASK"
	case DeleteConfirmMode:
		return "DELETE"
	case InsightsMode:
		return "INSIGHTS"
	case HelpMode:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// Level is the severity of a status bar notification
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// Notification is the one-line message shown in the status bar
type Notification struct {
	Level   Level
	Message string
}
