package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings the app handles globally. Bindings local to a
// panel (field navigation, scrolling, yank) live in the panel itself.
type KeyMap struct {
	FocusNext key.Binding
	FocusPrev key.Binding
	Detect    key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous panel"),
		),
		Detect: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("^d", "detect kicad-cli"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
