package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/rs/zerolog"

	"github.com/pcbdeck/pcbdeck/internal/bus"
	"github.com/pcbdeck/pcbdeck/internal/config"
	"github.com/pcbdeck/pcbdeck/internal/process"
)

const waitDuration = 3 * time.Second

// appAdapter wraps the App (value receiver model) so teatest can drive
// it while tests still reach into the latest model state.
type appAdapter struct {
	app App
}

func newTestAppAdapter(tb testing.TB) *appAdapter {
	tb.Helper()
	cfg := config.DefaultConfig()
	b := bus.New()
	tb.Cleanup(func() { b.Close() })
	ctrl := process.NewController(b, zerolog.Nop(), 1000)
	return &appAdapter{app: NewApp(&cfg, ctrl, zerolog.Nop())}
}

func (a *appAdapter) Init() tea.Cmd {
	return nil
}

func (a *appAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.app.Update(msg)
	a.app = m.(App)
	return a, cmd
}

func (a *appAdapter) View() string {
	return a.app.View()
}

// waitForContains waits until the output contains the given substring.
func waitForContains(tb testing.TB, tm *teatest.TestModel, substr string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool { return bytesContains(bts, []byte(substr)) },
		teatest.WithDuration(waitDuration),
	)
}

// waitForAllContains waits until the output contains every given
// substring, checking them against one accumulated buffer.
func waitForAllContains(tb testing.TB, tm *teatest.TestModel, substrs ...string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool {
			for _, s := range substrs {
				if !bytesContains(bts, []byte(s)) {
					return false
				}
			}
			return true
		},
		teatest.WithDuration(waitDuration),
	)
}

func bytesContains(haystack, needle []byte) bool {
	if len(needle) == 0 || len(haystack) < len(needle) {
		return false
	}
	for i := 0; i <= len(haystack)-len(needle); i++ {
		found := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				found = false
				break
			}
		}
		if found {
			return true
		}
	}
	return false
}
