package border

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pcbdeck/pcbdeck/internal/ui/styles"
)

// Keybind is one hint shown in a focused panel's bottom border,
// rendered as [key]label.
type Keybind struct {
	Key   string
	Label string
}

// RenderKeybind renders [key]label with the key bolded.
func RenderKeybind(kb Keybind) string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.KeybindKey).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(styles.KeybindLabel)
	return keyStyle.Render("["+kb.Key+"]") + labelStyle.Render(kb.Label)
}

// KeybindWidth is the display width of a rendered keybind without ANSI:
// 2 bracket cells plus the key and label runes.
func KeybindWidth(kb Keybind) int {
	return 2 + len(kb.Key) + len(kb.Label)
}
