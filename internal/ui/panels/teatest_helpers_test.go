package panels

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

const panelWaitDuration = 3 * time.Second

// panelAdapter wraps panel types that use typed Update signatures into
// a proper tea.Model so they can be used with teatest.
type panelAdapter struct {
	view     func() string
	updateFn func(tea.Msg) tea.Cmd
}

func (a panelAdapter) Init() tea.Cmd                           { return nil }
func (a panelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return a, a.updateFn(msg) }
func (a panelAdapter) View() string                            { return a.view() }

func wrapBOMForm(f *BOMForm) tea.Model {
	return panelAdapter{
		view: func() string { return f.View() },
		updateFn: func(msg tea.Msg) tea.Cmd {
			newF, cmd := f.Update(msg)
			*f = newF
			return cmd
		},
	}
}

func wrapLogView(lv *LogView) tea.Model {
	return panelAdapter{
		view: func() string { return lv.View() },
		updateFn: func(msg tea.Msg) tea.Cmd {
			newLV, cmd := lv.Update(msg)
			*lv = newLV
			return cmd
		},
	}
}

// waitForOutput waits until the teatest output contains substr.
func waitForOutput(tb testing.TB, tm *teatest.TestModel, substr string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool {
			return containsBytes(bts, []byte(substr))
		},
		teatest.WithDuration(panelWaitDuration),
	)
}

func containsBytes(haystack, needle []byte) bool {
	if len(needle) == 0 || len(haystack) < len(needle) {
		return false
	}
	for i := 0; i <= len(haystack)-len(needle); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
