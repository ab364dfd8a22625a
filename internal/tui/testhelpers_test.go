package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/nexus/internal/advisor"
	"github.com/thenoetrevino/nexus/internal/app"
	"github.com/thenoetrevino/nexus/internal/config"
	"github.com/thenoetrevino/nexus/internal/testutil"
)

type fakeGenerator struct {
	reply string
	err   error
}

func (f fakeGenerator) Generate(context.Context, advisor.Request) (string, error) {
	return f.reply, f.err
}

// setupTestModel builds a model over the seeded in-memory board
func setupTestModel(t *testing.T, gen advisor.Generator) (Model, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	a := app.New(db, app.WithGenerator(gen))
	m := InitialModel(context.Background(), a, config.Default())
	return m, a
}

// press sends one key press and returns the updated model and command
func press(m Model, msg tea.KeyPressMsg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// sendKeys sends key presses in order, discarding commands
func sendKeys(m Model, keys ...tea.KeyPressMsg) Model {
	for _, k := range keys {
		m, _ = press(m, k)
	}
	return m
}

func runeKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Text: string(r), Code: r})
}

var (
	keySpace = tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "})
	keyEnter = tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	keyEsc   = tea.KeyPressMsg(tea.Key{Code: tea.KeyEsc})
	keyLeft  = runeKey('h')
	keyRight = runeKey('l')
	keyDown  = runeKey('j')
)
