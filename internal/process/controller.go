package process

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pcbdeck/pcbdeck/internal/bus"
	"github.com/pcbdeck/pcbdeck/internal/task"
)

// ErrBusy is returned when a panel already has a run in flight. The UI
// disables the submit control while Running, so hitting this means a
// caller bypassed the form.
var ErrBusy = errors.New("a run is already in flight for this panel")

// Controller enforces single-flight per panel kind, owns the per-kind
// log buffers, and runs each accepted request on its own worker
// goroutine. All state transitions are published on the bus; the UI
// never touches the controller from anywhere but the event loop.
type Controller struct {
	bus      *bus.Bus
	log      zerolog.Logger
	bufLines int

	mu      sync.Mutex
	states  map[task.Kind]task.State
	buffers map[task.Kind]*RingBuffer
}

func NewController(b *bus.Bus, logger zerolog.Logger, bufferLines int) *Controller {
	return &Controller{
		bus:      b,
		log:      logger,
		bufLines: bufferLines,
		states:   make(map[task.Kind]task.State),
		buffers:  make(map[task.Kind]*RingBuffer),
	}
}

// State reports the current run state for a panel kind.
func (c *Controller) State(kind task.Kind) task.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.states[kind]
}

// Buffer returns the log buffer for a panel kind, creating it on first use.
func (c *Controller) Buffer(kind task.Kind) *RingBuffer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bufferLocked(kind)
}

func (c *Controller) bufferLocked(kind task.Kind) *RingBuffer {
	buf, ok := c.buffers[kind]
	if !ok {
		buf = NewRingBuffer(c.bufLines)
		c.buffers[kind] = buf
	}
	return buf
}

// Start accepts a request unless its panel is already Running, then runs
// it in the background. The buffer is cleared so each run reads as one
// transcript, and a command header is the first line.
func (c *Controller) Start(req task.Request) error {
	c.mu.Lock()
	if c.states[req.Kind] == task.StateRunning {
		c.mu.Unlock()
		return ErrBusy
	}
	c.states[req.Kind] = task.StateRunning
	buf := c.bufferLocked(req.Kind)
	c.mu.Unlock()

	c.log.Info().
		Str("run_id", req.ID).
		Str("kind", string(req.Kind)).
		Str("command", req.Command).
		Strs("args", req.Args).
		Str("dir", req.Dir).
		Msg("run started")

	buf.Reset()
	c.emitLine(req, buf, fmt.Sprintf("$ %s %s", req.Command, strings.Join(req.Args, " ")))

	go c.execute(req, buf)
	return nil
}

func (c *Controller) execute(req task.Request, buf *RingBuffer) {
	res := run(c.bus, req, buf)

	switch res.outcome {
	case task.OutcomeSuccess:
		c.emitLine(req, buf, "✓ completed successfully")
	case task.OutcomeExitError:
		c.emitLine(req, buf, fmt.Sprintf("✗ exited with code %d", res.exitCode))
	case task.OutcomeLaunchFailed:
		c.emitLine(req, buf, fmt.Sprintf("✗ launch failed: %v", res.err))
	}

	// Back to Idle before the done event goes out, so a resubmit
	// triggered by the event cannot race into ErrBusy.
	c.mu.Lock()
	c.states[req.Kind] = task.StateIdle
	c.mu.Unlock()

	var msg string
	if res.err != nil {
		msg = res.err.Error()
	}
	c.log.Info().
		Str("run_id", req.ID).
		Str("kind", string(req.Kind)).
		Int("outcome", int(res.outcome)).
		Int("exit_code", res.exitCode).
		Msg("run finished")

	_ = c.bus.PublishDone(bus.RunDone{
		RunID:    req.ID,
		Kind:     req.Kind,
		Outcome:  res.outcome,
		ExitCode: res.exitCode,
		Message:  msg,
	})
}

func (c *Controller) emitLine(req task.Request, buf *RingBuffer, line string) {
	buf.Append(line)
	_ = c.bus.PublishLine(bus.OutputLine{RunID: req.ID, Kind: req.Kind, Line: line})
}
