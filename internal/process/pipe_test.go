package process

import (
	"fmt"
	"sync"
	"testing"
)

func TestRingBufferAppend(t *testing.T) {
	rb := NewRingBuffer(10)

	rb.Append("line 1")
	rb.Append("line 2")
	rb.Append("line 3")

	lines := rb.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, want := range []string{"line 1", "line 2", "line 3"} {
		if lines[i] != want {
			t.Errorf("expected %q at index %d, got %q", want, i, lines[i])
		}
	}
}

func TestRingBufferOverflow(t *testing.T) {
	rb := NewRingBuffer(3)

	for _, s := range []string{"a", "b", "c", "d", "e"} {
		rb.Append(s)
	}

	lines := rb.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (capacity), got %d", len(lines))
	}
	// Oldest lines dropped
	for i, want := range []string{"c", "d", "e"} {
		if lines[i] != want {
			t.Errorf("expected %q at index %d, got %q", want, i, lines[i])
		}
	}
}

func TestRingBufferEmpty(t *testing.T) {
	rb := NewRingBuffer(5)
	if lines := rb.Lines(); lines != nil {
		t.Errorf("expected nil for empty buffer, got %v", lines)
	}
	if rb.Len() != 0 {
		t.Errorf("expected length 0, got %d", rb.Len())
	}
}

func TestRingBufferReset(t *testing.T) {
	rb := NewRingBuffer(5)
	rb.Append("a")
	rb.Append("b")

	rb.Reset()

	if rb.Len() != 0 {
		t.Errorf("expected length 0 after reset, got %d", rb.Len())
	}
	rb.Append("c")
	lines := rb.Lines()
	if len(lines) != 1 || lines[0] != "c" {
		t.Errorf("expected [c] after reset+append, got %v", lines)
	}
}

func TestRingBufferConcurrentAppend(t *testing.T) {
	rb := NewRingBuffer(1000)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				rb.Append(fmt.Sprintf("w%d-%d", w, i))
			}
		}(w)
	}
	wg.Wait()

	if rb.Len() != 400 {
		t.Errorf("expected 400 lines, got %d", rb.Len())
	}
}
