package process

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"golang.org/x/sync/errgroup"

	"github.com/pcbdeck/pcbdeck/internal/bus"
	"github.com/pcbdeck/pcbdeck/internal/task"
)

// maxLineSize bounds a single output line; the export script can emit
// long Gerber file listings.
const maxLineSize = 1024 * 1024

// result is the terminal outcome of one process execution.
type result struct {
	outcome  task.Outcome
	exitCode int
	err      error
}

// run launches the request's command with stdout and stderr merged into a
// single pipe, appends each line to buf and publishes it as it arrives,
// and blocks until the process exits. It never reads ahead of the
// subprocess: a long-running export is visible line by line.
func run(b *bus.Bus, req task.Request, buf *RingBuffer) result {
	cmd := exec.Command(req.Command, req.Args...)
	cmd.Dir = req.Dir

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pw.Close()
		return result{outcome: task.OutcomeLaunchFailed, err: err}
	}

	var g errgroup.Group
	g.Go(func() error {
		scanner := bufio.NewScanner(pr)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			line := scanner.Text()
			buf.Append(line)
			_ = b.PublishLine(bus.OutputLine{RunID: req.ID, Kind: req.Kind, Line: line})
		}
		// Keep draining after a scan error such as ErrTooLong. The pipe is
		// synchronous, so a stalled reader would block the subprocess's
		// writes and Wait would never return.
		_, _ = io.Copy(io.Discard, pr)
		return scanner.Err()
	})

	waitErr := cmd.Wait()
	pw.Close()
	if scanErr := g.Wait(); scanErr != nil {
		line := fmt.Sprintf("⚠ output dropped: %v", scanErr)
		buf.Append(line)
		_ = b.PublishLine(bus.OutputLine{RunID: req.ID, Kind: req.Kind, Line: line})
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return result{outcome: task.OutcomeExitError, exitCode: exitErr.ExitCode(), err: waitErr}
		}
		return result{outcome: task.OutcomeLaunchFailed, err: waitErr}
	}
	return result{outcome: task.OutcomeSuccess}
}
