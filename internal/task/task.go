package task

import (
	"github.com/google/uuid"
)

// Kind identifies which panel a run belongs to. Each kind has its own
// log buffer and its own single-flight slot.
type Kind string

const (
	KindBOM   Kind = "bom"
	KindKiCad Kind = "kicad"
)

// State is the per-panel run state. There is no intermediate state:
// a run goes Idle → Running on launch and back to Idle on any outcome.
type State int

const (
	StateIdle State = iota
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

// Outcome classifies how a run ended.
type Outcome int

const (
	// OutcomeSuccess means the process ran and exited zero.
	OutcomeSuccess Outcome = iota
	// OutcomeExitError means the process ran but exited non-zero.
	OutcomeExitError
	// OutcomeLaunchFailed means the process never started (missing
	// executable, permission denied). Distinct from a non-zero exit.
	OutcomeLaunchFailed
)

// Request is a fully-resolved command line ready to hand to the runner.
// Requests are built once by a form, consumed once, and discarded.
type Request struct {
	ID      string
	Kind    Kind
	Command string
	Args    []string
	Dir     string
}

// NewRequest assigns a fresh run ID to a command line.
func NewRequest(kind Kind, command string, args []string, dir string) Request {
	return Request{
		ID:      uuid.NewString(),
		Kind:    kind,
		Command: command,
		Args:    args,
		Dir:     dir,
	}
}
