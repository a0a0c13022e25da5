package runner

import (
	"context"
	"time"
)

// Ticker is the part of Runner the Metronome drives.
type Ticker interface {
	Interval() time.Duration
	TickElapsed()
	Done() <-chan struct{}
}

// Metronome turns wall-clock time into tick signals. The interval is re-read
// after every tick, so gravity speeds up as soon as the game does.
type Metronome struct {
	target Ticker
}

// NewMetronome creates a clock for target.
func NewMetronome(target Ticker) *Metronome {
	return &Metronome{target: target}
}

// Run signals target each time its interval elapses, until ctx is cancelled
// or target is done. It always returns nil so it can sit in an errgroup
// beside the runner.
func (m *Metronome) Run(ctx context.Context) error {
	timer := time.NewTimer(m.target.Interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-m.target.Done():
			return nil
		case <-timer.C:
			m.target.TickElapsed()
			timer.Reset(m.target.Interval())
		}
	}
}
