package ui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pcbdeck/pcbdeck/internal/bus"
	"github.com/pcbdeck/pcbdeck/internal/task"
)

type recordingSender struct {
	mu   sync.Mutex
	msgs []any
}

func (r *recordingSender) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recordingSender) snapshot() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]any(nil), r.msgs...)
}

func TestForwardPumpsEvents(t *testing.T) {
	b := bus.New()
	t.Cleanup(func() { _ = b.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &recordingSender{}
	errCh := make(chan error, 1)
	go func() { errCh <- Forward(ctx, b, sender) }()

	// Give the subscriptions a moment to attach.
	time.Sleep(50 * time.Millisecond)

	if err := b.PublishLine(bus.OutputLine{RunID: "r1", Kind: task.KindBOM, Line: "converting"}); err != nil {
		t.Fatalf("PublishLine: %v", err)
	}
	if err := b.PublishDone(bus.RunDone{RunID: "r1", Kind: task.KindBOM, Outcome: task.OutcomeSuccess}); err != nil {
		t.Fatalf("PublishDone: %v", err)
	}

	deadline := time.After(3 * time.Second)
	var gotLine, gotDone bool
	for !gotLine || !gotDone {
		select {
		case <-deadline:
			t.Fatalf("timed out; got %v", sender.snapshot())
		case <-time.After(10 * time.Millisecond):
		}
		for _, m := range sender.snapshot() {
			switch msg := m.(type) {
			case OutputLineMsg:
				if msg.RunID == "r1" && msg.Kind == task.KindBOM {
					gotLine = true
				}
			case RunDoneMsg:
				if msg.Done.Outcome == task.OutcomeSuccess {
					gotDone = true
				}
			}
		}
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Forward returned %v after cancel", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Forward did not return after cancel")
	}
}

func TestForwardClosedBusReturnsError(t *testing.T) {
	b := bus.New()
	_ = b.Close()

	err := Forward(context.Background(), b, &recordingSender{})
	if err == nil {
		t.Fatal("expected an error subscribing on a closed bus")
	}
}
