package runner

import (
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// Subscription receives snapshots from a Runner.
type Subscription struct {
	frames    chan engine.Snapshot
	mu        sync.Mutex
	closed    bool
	dropCount int
}

func newSubscription(buffer int) *Subscription {
	if buffer < 1 {
		buffer = 16
	}
	return &Subscription{frames: make(chan engine.Snapshot, buffer)}
}

// Frames returns the snapshot stream. It is closed when the runner stops or
// the subscription is removed.
func (s *Subscription) Frames() <-chan engine.Snapshot {
	return s.frames
}

// Dropped returns how many snapshots were discarded because the reader lagged.
func (s *Subscription) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropCount
}

// send never blocks. When the buffer is full the oldest snapshot is dropped.
func (s *Subscription) send(snap engine.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	select {
	case s.frames <- snap:
		return
	default:
	}

	select {
	case <-s.frames:
		s.dropCount++
	default:
	}
	select {
	case s.frames <- snap:
	default:
		s.dropCount++
	}
}

func (s *Subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.frames)
	}
}
