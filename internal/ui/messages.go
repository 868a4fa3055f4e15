package ui

import (
	"github.com/pcbdeck/pcbdeck/internal/bus"
	"github.com/pcbdeck/pcbdeck/internal/ui/panels"
)

// Type aliases to panels message types so callers import one package.

// OutputLineMsg is sent when a running tool produced a new output line.
type OutputLineMsg = panels.OutputLineMsg

// ClearFlashMsg signals the status bar flash should be cleared.
type ClearFlashMsg = panels.ClearFlashMsg

// RunDoneMsg is sent by the bus forwarder when a run finishes.
type RunDoneMsg struct {
	Done bus.RunDone
}

// UpdateAvailableMsg is sent when the startup check finds a newer release.
type UpdateAvailableMsg struct {
	Version string
}
