package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// CreateKeyMapWithShiftEnter adds shift+enter to the newline keys of text
// fields. Escape is handled by the board, so the form's own quit binding is
// disabled.
func CreateKeyMapWithShiftEnter() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter / alt+enter / ctrl+j", "new line"),
	)
	keymap.Quit = key.NewBinding(key.WithDisabled())

	return keymap
}
