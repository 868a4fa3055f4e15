package border

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pcbdeck/pcbdeck/internal/ui/styles"
)

const (
	cornerTL = "╭"
	cornerTR = "╮"
	cornerBL = "╰"
	cornerBR = "╯"
	horizBar = "─"
	vertBar  = "│"
)

func frameStyle(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Foreground(styles.BorderFocused)
	}
	return lipgloss.NewStyle().Foreground(styles.BorderUnfocused)
}

// Top renders the top edge with an embedded title: ╭─ Title ────╮
func Top(title string, width int, focused bool) string {
	if width < 2 {
		return ""
	}
	fs := frameStyle(focused)
	innerWidth := width - 2

	if title == "" {
		return fs.Render(cornerTL + strings.Repeat(horizBar, innerWidth) + cornerTR)
	}

	ts := styles.TextSecondaryStyle.Bold(true)
	if focused {
		ts = styles.TitleStyle
	}

	rendered := ts.Render(title)
	// "─ " before the title, " " after, the rest is fill.
	fill := innerWidth - lipgloss.Width(rendered) - 3
	if fill < 0 {
		fill = 0
	}

	return fs.Render(cornerTL+horizBar+" ") +
		rendered +
		fs.Render(" "+strings.Repeat(horizBar, fill)+cornerTR)
}

// Bottom renders the bottom edge. A focused panel shows its keybind
// hints inline: ╰─ [enter]run  [tab]next ──╯. Hints that would
// overflow the edge are dropped from the right.
func Bottom(keybinds []Keybind, width int, focused bool) string {
	if width < 2 {
		return ""
	}
	fs := frameStyle(focused)
	innerWidth := width - 2

	if !focused || len(keybinds) == 0 {
		return fs.Render(cornerBL + strings.Repeat(horizBar, innerWidth) + cornerBR)
	}

	maxWidth := innerWidth - 3 // "─ " prefix and " " suffix
	if maxWidth < 0 {
		maxWidth = 0
	}

	var parts []string
	used := 0
	for _, kb := range keybinds {
		rendered := RenderKeybind(kb)
		w := lipgloss.Width(rendered)
		sep := 0
		if len(parts) > 0 {
			sep = 2
		}
		if used+sep+w > maxWidth {
			break
		}
		parts = append(parts, rendered)
		used += sep + w
	}

	fill := maxWidth - used
	if fill < 0 {
		fill = 0
	}

	return fs.Render(cornerBL+horizBar+" ") +
		strings.Join(parts, "  ") +
		fs.Render(" "+strings.Repeat(horizBar, fill)+cornerBR)
}

// Sides wraps every content line in │ ... │, truncating or padding each
// line to the inner width. Width measurement is ANSI-aware so styled
// content lines up.
func Sides(content string, width int, focused bool) string {
	if width < 2 {
		return content
	}
	fs := frameStyle(focused)
	innerWidth := width - 2
	truncator := lipgloss.NewStyle().MaxWidth(innerWidth)

	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		w := lipgloss.Width(line)
		if w > innerWidth {
			line = truncator.Render(line)
			w = lipgloss.Width(line)
		}
		if w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		out = append(out, fs.Render(vertBar)+line+fs.Render(vertBar))
	}
	return strings.Join(out, "\n")
}
