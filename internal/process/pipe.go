package process

import "sync"

// RingBuffer holds the most recent output lines for one panel. Writers
// are worker goroutines; the UI reads snapshots on its own loop.
type RingBuffer struct {
	mu       sync.RWMutex
	lines    []string
	capacity int
	head     int
	count    int
}

func NewRingBuffer(capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = 10000
	}
	return &RingBuffer{
		lines:    make([]string, capacity),
		capacity: capacity,
	}
}

func (rb *RingBuffer) Append(line string) {
	rb.mu.Lock()
	rb.lines[rb.head] = line
	rb.head = (rb.head + 1) % rb.capacity
	if rb.count < rb.capacity {
		rb.count++
	}
	rb.mu.Unlock()
}

// Lines returns a copy of the buffered lines, oldest first.
func (rb *RingBuffer) Lines() []string {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	if rb.count == 0 {
		return nil
	}

	result := make([]string, rb.count)
	if rb.count < rb.capacity {
		copy(result, rb.lines[:rb.count])
	} else {
		// Buffer has wrapped: oldest is at head, newest is at head-1
		n := copy(result, rb.lines[rb.head:])
		copy(result[n:], rb.lines[:rb.head])
	}
	return result
}

func (rb *RingBuffer) Len() int {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.count
}

func (rb *RingBuffer) Reset() {
	rb.mu.Lock()
	rb.head = 0
	rb.count = 0
	rb.mu.Unlock()
}
