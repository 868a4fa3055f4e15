// Package bus is the handoff between run worker goroutines and the UI
// event loop: workers publish, a single forwarder subscribes and turns
// events into bubbletea messages. Per-topic ordering is preserved, so
// log lines arrive in the order the subprocess wrote them.
package bus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/pcbdeck/pcbdeck/internal/task"
)

const (
	TopicRunOutput = "run.output"
	TopicRunDone   = "run.done"
)

// OutputLine is one merged stdout/stderr line from a running process.
type OutputLine struct {
	RunID string    `json:"run_id"`
	Kind  task.Kind `json:"kind"`
	Line  string    `json:"line"`
}

// RunDone is the terminal event for a run.
type RunDone struct {
	RunID    string       `json:"run_id"`
	Kind     task.Kind    `json:"kind"`
	Outcome  task.Outcome `json:"outcome"`
	ExitCode int          `json:"exit_code"`
	Message  string       `json:"message,omitempty"`
}

type Bus struct {
	pubsub *gochannel.GoChannel
}

func New() *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 256},
			watermill.NopLogger{},
		),
	}
}

func (b *Bus) PublishLine(line OutputLine) error {
	return b.publish(TopicRunOutput, line)
}

func (b *Bus) PublishDone(done RunDone) error {
	return b.publish(TopicRunDone, done)
}

func (b *Bus) publish(topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", topic, err)
	}
	return b.pubsub.Publish(topic, message.NewMessage(watermill.NewUUID(), data))
}

// SubscribeOutput returns the ordered stream of output-line events.
func (b *Bus) SubscribeOutput(ctx context.Context) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, TopicRunOutput)
}

// SubscribeDone returns the stream of run-completion events.
func (b *Bus) SubscribeDone(ctx context.Context) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, TopicRunDone)
}

func (b *Bus) Close() error {
	return b.pubsub.Close()
}

// DecodeLine unmarshals an output-line event. The message is not acked.
func DecodeLine(msg *message.Message) (OutputLine, error) {
	var line OutputLine
	if err := json.Unmarshal(msg.Payload, &line); err != nil {
		return OutputLine{}, fmt.Errorf("decode output line: %w", err)
	}
	return line, nil
}

// DecodeDone unmarshals a run-completion event. The message is not acked.
func DecodeDone(msg *message.Message) (RunDone, error) {
	var done RunDone
	if err := json.Unmarshal(msg.Payload, &done); err != nil {
		return RunDone{}, fmt.Errorf("decode run done: %w", err)
	}
	return done, nil
}
