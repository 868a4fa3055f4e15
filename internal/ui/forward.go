package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/pcbdeck/pcbdeck/internal/bus"
	"github.com/pcbdeck/pcbdeck/internal/ui/panels"
)

// Sender is the part of tea.Program the forwarder needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Forward subscribes to the run event topics and pumps each event into
// the bubbletea program. tea.Program.Send is the only safe way to hand
// data from worker goroutines to the UI loop, so this is the single
// crossing point. Returns when ctx is cancelled or the bus closes.
func Forward(ctx context.Context, b *bus.Bus, p Sender) error {
	lines, err := b.SubscribeOutput(ctx)
	if err != nil {
		return err
	}
	dones, err := b.SubscribeDone(ctx)
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error {
		for msg := range lines {
			line, err := bus.DecodeLine(msg)
			msg.Ack()
			if err != nil {
				continue
			}
			p.Send(panels.OutputLineMsg{RunID: line.RunID, Kind: line.Kind})
		}
		return nil
	})
	g.Go(func() error {
		for msg := range dones {
			done, err := bus.DecodeDone(msg)
			msg.Ack()
			if err != nil {
				continue
			}
			p.Send(RunDoneMsg{Done: done})
		}
		return nil
	})
	return g.Wait()
}
