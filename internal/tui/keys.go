package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/nexus/internal/config"
)

// keyMap binds the configured keys. Arrow keys always work for navigation.
type keyMap struct {
	PickUp     key.Binding
	Drop       key.Binding
	Cancel     key.Binding
	AddTask    key.Binding
	DeleteTask key.Binding
	PrevColumn key.Binding
	NextColumn key.Binding
	PrevTask   key.Binding
	NextTask   key.Binding
	Insights   key.Binding
	Refresh    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		PickUp:     key.NewBinding(key.WithKeys(km.PickUp), key.WithHelp(km.PickUp, "pick up")),
		Drop:       key.NewBinding(key.WithKeys(km.Drop), key.WithHelp(km.Drop, "drop")),
		Cancel:     key.NewBinding(key.WithKeys(km.CancelDrag), key.WithHelp(km.CancelDrag, "cancel")),
		AddTask:    key.NewBinding(key.WithKeys(km.AddTask), key.WithHelp(km.AddTask, "add task")),
		DeleteTask: key.NewBinding(key.WithKeys(km.DeleteTask), key.WithHelp(km.DeleteTask, "delete")),
		PrevColumn: key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp(km.PrevColumn+"/←", "prev column")),
		NextColumn: key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp(km.NextColumn+"/→", "next column")),
		PrevTask:   key.NewBinding(key.WithKeys(km.PrevTask, "up"), key.WithHelp(km.PrevTask+"/↑", "prev task")),
		NextTask:   key.NewBinding(key.WithKeys(km.NextTask, "down"), key.WithHelp(km.NextTask+"/↓", "next task")),
		Insights:   key.NewBinding(key.WithKeys(km.ShowInsights), key.WithHelp(km.ShowInsights, "AI insights")),
		Refresh:    key.NewBinding(key.WithKeys(km.Refresh), key.WithHelp(km.Refresh, "refresh")),
		Help:       key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:       key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ShortHelp lists the bindings shown in the status bar
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PickUp, k.AddTask, k.Insights, k.Help, k.Quit}
}

// FullHelp lists every binding, grouped for the help overlay
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask},
		{k.PickUp, k.Drop, k.Cancel},
		{k.AddTask, k.DeleteTask, k.Refresh},
		{k.Insights, k.Help, k.Quit},
	}
}

// dragHelp is the short help shown while a card is picked up
func (k keyMap) dragHelp() []key.Binding {
	return []key.Binding{k.PrevColumn, k.NextColumn, k.Drop, k.Cancel}
}
