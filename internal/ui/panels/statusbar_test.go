package panels

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/pcbdeck/pcbdeck/internal/task"
)

func TestStatusBarStates(t *testing.T) {
	sb := NewStatusBar()
	sb.SetSize(120)

	view := sb.View()
	if !strings.Contains(view, "bom: idle") {
		t.Error("expected 'bom: idle' in status bar")
	}
	if !strings.Contains(view, "export: idle") {
		t.Error("expected 'export: idle' in status bar")
	}
}

func TestStatusBarRunningState(t *testing.T) {
	sb := NewStatusBar()
	sb.SetSize(120)
	sb.SetStates(task.StateRunning, task.StateIdle)

	view := sb.View()
	if !strings.Contains(view, "bom: running") {
		t.Error("expected 'bom: running' in status bar")
	}
	if !strings.Contains(view, "export: idle") {
		t.Error("expected 'export: idle' in status bar")
	}
}

func TestStatusBarVersion(t *testing.T) {
	sb := NewStatusBar()
	sb.SetSize(80)

	if !strings.Contains(sb.View(), "pcbdeck") {
		t.Error("expected app name in status bar")
	}
}

func TestStatusBarHints(t *testing.T) {
	sb := NewStatusBar()
	sb.SetSize(80)

	view := sb.View()
	if !strings.Contains(view, "tab:focus") {
		t.Error("expected focus hint in status bar")
	}
	// The quit hint must name a binding that works from every panel; q only
	// quits from the log view.
	if !strings.Contains(view, "ctrl+c:quit") {
		t.Error("expected ctrl+c quit hint in status bar")
	}
}

func TestStatusBarFlash(t *testing.T) {
	sb := NewStatusBar()
	sb.SetSize(120)

	sb.SetFlashWithLevel("completed", FlashSuccess)
	if !strings.Contains(sb.View(), "completed") {
		t.Error("expected flash message in status bar")
	}
	if !strings.Contains(sb.View(), "✓") {
		t.Error("expected success icon with flash")
	}

	sb.ClearFlash()
	if strings.Contains(sb.View(), "completed") {
		t.Error("expected flash cleared")
	}
}

func TestStatusBarFlashLevels(t *testing.T) {
	tests := []struct {
		level FlashLevel
		icon  string
	}{
		{FlashInfo, "●"},
		{FlashSuccess, "✓"},
		{FlashWarning, "⚠"},
		{FlashError, "✗"},
	}
	for _, tt := range tests {
		sb := NewStatusBar()
		sb.SetSize(120)
		sb.SetFlashWithLevel("message", tt.level)
		if !strings.Contains(sb.View(), tt.icon) {
			t.Errorf("level %d: expected icon %q in view", tt.level, tt.icon)
		}
	}
}

func TestStatusBarTruncatesLongFlash(t *testing.T) {
	sb := NewStatusBar()
	sb.SetSize(60)
	sb.SetFlashWithLevel(strings.Repeat("very long flash message ", 10), FlashError)

	view := sb.View()
	if got := lipgloss.Width(view); got > 60 {
		t.Errorf("status bar width %d exceeds terminal width 60", got)
	}
	if !strings.Contains(view, "…") {
		t.Error("expected truncation ellipsis in overlong status bar")
	}
}

func TestStatusBarSpinnerOnlyWhileRunning(t *testing.T) {
	sb := NewStatusBar()
	sb.SetSize(120)

	if strings.Contains(sb.View(), "⠋") {
		t.Error("expected no spinner while idle")
	}

	sb.SetStates(task.StateIdle, task.StateRunning)
	found := false
	for _, frame := range statusSpinnerFrames {
		if strings.Contains(sb.View(), frame) {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected a spinner frame while running")
	}

	sb.Tick()
	if !strings.Contains(sb.View(), statusSpinnerFrames[1]) {
		t.Error("expected spinner to advance on Tick")
	}
}
