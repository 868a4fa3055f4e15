package panels

import "github.com/pcbdeck/pcbdeck/internal/task"

// SubmitBOMRunMsg is emitted by the BOM form when the user asks to run
// the converter. The app validates the form and launches the run.
type SubmitBOMRunMsg struct {
	Form task.BOMForm
}

// SubmitKiCadRunMsg is emitted by the KiCad form when the user asks to
// run the export pipeline.
type SubmitKiCadRunMsg struct {
	Form task.KiCadForm
}

// OutputLineMsg is sent when a running tool produced a new output line.
type OutputLineMsg struct {
	RunID string
	Kind  task.Kind
}

// YankMsg carries text the user copied out of the output log.
type YankMsg struct {
	Text string
}

// ClearFlashMsg signals the status bar flash should be cleared.
type ClearFlashMsg struct{}
