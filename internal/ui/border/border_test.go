package border

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func visibleWidth(s string) int {
	return lipgloss.Width(s)
}

func TestRenderKeybind(t *testing.T) {
	kb := Keybind{Key: "r", Label: "un"}
	got := RenderKeybind(kb)
	if !strings.Contains(got, "r") || !strings.Contains(got, "un") {
		t.Errorf("RenderKeybind: got %q, expected key and label", got)
	}
	if w := KeybindWidth(kb); w != 5 {
		t.Errorf("KeybindWidth single char: got %d, want 5", w)
	}

	// Multi-char key: [tab] next = 2 + 3 + 5 = 10
	kbTab := Keybind{Key: "tab", Label: " next"}
	if w := KeybindWidth(kbTab); w != 10 {
		t.Errorf("KeybindWidth multi-char: got %d, want 10", w)
	}
}

func TestTopNoTitle(t *testing.T) {
	got := Top("", 20, false)
	if w := visibleWidth(got); w != 20 {
		t.Errorf("Top no title: width %d, want 20", w)
	}
	if !strings.Contains(got, "╭") || !strings.Contains(got, "╮") {
		t.Error("Top: missing corner chars")
	}
}

func TestTopWithTitle(t *testing.T) {
	got := Top("Output", 30, true)
	if w := visibleWidth(got); w != 30 {
		t.Errorf("Top with title: width %d, want 30", w)
	}
	if !strings.Contains(got, "Output") {
		t.Error("Top: missing title")
	}
}

func TestTopFocusedVsUnfocused(t *testing.T) {
	focused := Top("BOM", 20, true)
	unfocused := Top("BOM", 20, false)
	if visibleWidth(focused) != visibleWidth(unfocused) {
		t.Error("focused and unfocused tops should have same width")
	}
	for _, s := range []string{focused, unfocused} {
		if !strings.Contains(s, "BOM") {
			t.Error("expected title in top edge")
		}
		if !strings.Contains(s, "╭") || !strings.Contains(s, "╮") {
			t.Error("expected corners in top edge")
		}
	}
}

func TestBottomPlain(t *testing.T) {
	got := Bottom(nil, 20, false)
	if w := visibleWidth(got); w != 20 {
		t.Errorf("Bottom plain: width %d, want 20", w)
	}
	if !strings.Contains(got, "╰") || !strings.Contains(got, "╯") {
		t.Error("Bottom: missing corner chars")
	}
}

func TestBottomWithKeybinds(t *testing.T) {
	kbs := []Keybind{
		{Key: "enter", Label: " run"},
		{Key: "tab", Label: " next"},
	}
	got := Bottom(kbs, 40, true)
	if w := visibleWidth(got); w != 40 {
		t.Errorf("Bottom with keybinds: width %d, want 40", w)
	}
	if !strings.Contains(got, "run") || !strings.Contains(got, "next") {
		t.Error("Bottom: missing keybind labels")
	}
}

func TestBottomUnicodeKeybind(t *testing.T) {
	// ⏎ is a 3-byte UTF-8 char with visual width 1; must not cause overflow.
	kbs := []Keybind{
		{Key: "⏎", Label: " run"},
	}
	got := Bottom(kbs, 24, true)
	if w := visibleWidth(got); w != 24 {
		t.Errorf("Bottom unicode keybind: width %d, want 24", w)
	}
}

func TestBottomKeybindOverflow(t *testing.T) {
	// A long hint set in a narrow panel drops hints instead of overflowing.
	kbs := []Keybind{
		{Key: "j/k", Label: " scroll"},
		{Key: "G", Label: " bottom"},
		{Key: "g", Label: "g top"},
		{Key: "f", Label: "ollow"},
		{Key: "y", Label: "ank"},
	}
	got := Bottom(kbs, 24, true)
	if w := visibleWidth(got); w != 24 {
		t.Errorf("Bottom overflow: width %d, want 24", w)
	}
}

func TestSides(t *testing.T) {
	got := Sides("hello\nworld", 12, false)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Errorf("Sides: got %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		if w := visibleWidth(line); w != 12 {
			t.Errorf("Sides line %d: width %d, want 12", i, w)
		}
	}
}

func TestSidesTruncation(t *testing.T) {
	got := Sides("this is a very long line that should be truncated", 20, false)
	if w := visibleWidth(got); w != 20 {
		t.Errorf("Sides truncation: width %d, want 20", w)
	}
}

func TestRenderPanel(t *testing.T) {
	got := RenderPanel("Output", "line 1\nline 2", nil, 30, 6, true)
	lines := strings.Split(got, "\n")
	// height=6: 1 top + 4 content + 1 bottom
	if len(lines) != 6 {
		t.Errorf("RenderPanel: got %d lines, want 6", len(lines))
	}
	for i, line := range lines {
		if w := visibleWidth(line); w != 30 {
			t.Errorf("RenderPanel line %d: width %d, want 30", i, w)
		}
	}
}

func TestRenderPanelContentCrop(t *testing.T) {
	var lines []string
	for i := 0; i < 20; i++ {
		lines = append(lines, "content line")
	}
	got := RenderPanel("", strings.Join(lines, "\n"), nil, 20, 5, false)
	resultLines := strings.Split(got, "\n")
	// height=5: 1 top + 3 content + 1 bottom
	if len(resultLines) != 5 {
		t.Errorf("RenderPanel crop: got %d lines, want 5", len(resultLines))
	}
}

func TestRenderPanelContentPad(t *testing.T) {
	got := RenderPanel("", "single line", nil, 20, 8, false)
	resultLines := strings.Split(got, "\n")
	// height=8: 1 top + 6 content + 1 bottom
	if len(resultLines) != 8 {
		t.Errorf("RenderPanel pad: got %d lines, want 8", len(resultLines))
	}
}

func TestRenderPanelEmpty(t *testing.T) {
	got := RenderPanel("", "", nil, 20, 4, false)
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Errorf("RenderPanel empty: got %d lines, want 4", len(lines))
	}
}
