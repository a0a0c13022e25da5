// Package runner owns a single engine.Game and serializes every call into it.
//
// Input events and tick signals may be produced from any goroutine; they are
// queued on buffered channels and consumed by Run, which is the only code
// that touches the game. Snapshots are fanned out to subscribers after each
// processed message.
package runner

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// ErrStopped is returned by Run when it is called on a stopped runner.
var ErrStopped = errors.New("runner: stopped")

const defaultInputBuffer = 64

// Runner is the single consumer for one game session.
type Runner struct {
	game   *engine.Game
	logger *log.Logger

	inputs chan engine.Event
	ticks  chan struct{} // capacity 1: a pending tick absorbs further ones

	interval atomic.Int64 // current tick interval, readable from any goroutine

	subsMu sync.Mutex
	subs   []*Subscription

	done     chan struct{}
	doneOnce sync.Once
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithInputBuffer sets how many input events may wait before Send drops them.
func WithInputBuffer(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.inputs = make(chan engine.Event, n)
		}
	}
}

// New wraps game. The runner takes ownership: callers must not touch the game
// directly once Run has started.
func New(game *engine.Game, opts ...Option) *Runner {
	r := &Runner{
		game:   game,
		logger: log.Default(),
		inputs: make(chan engine.Event, defaultInputBuffer),
		ticks:  make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.interval.Store(int64(game.TickInterval()))
	return r
}

// Send queues an input event without blocking.
// It returns false when the queue is full or the runner has stopped.
func (r *Runner) Send(ev engine.Event) bool {
	select {
	case <-r.done:
		return false
	default:
	}

	select {
	case r.inputs <- ev:
		return true
	default:
		r.logger.Debug("input dropped, queue full", "event", ev)
		return false
	}
}

// TickElapsed signals that the current tick interval has passed.
// It never blocks; a tick already pending absorbs this one.
func (r *Runner) TickElapsed() {
	select {
	case r.ticks <- struct{}{}:
	default:
	}
}

// Interval returns the game's current tick interval.
func (r *Runner) Interval() time.Duration {
	return time.Duration(r.interval.Load())
}

// Done is closed once the runner stops.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Stop ends Run and closes every subscription. It is safe to call repeatedly.
func (r *Runner) Stop() {
	r.doneOnce.Do(func() {
		close(r.done)

		r.subsMu.Lock()
		for _, s := range r.subs {
			s.close()
		}
		r.subs = nil
		r.subsMu.Unlock()
	})
}

// Run consumes events and ticks until a Quit event arrives, ctx is
// cancelled, or Stop is called. Quit and Stop return nil.
func (r *Runner) Run(ctx context.Context) error {
	select {
	case <-r.done:
		return ErrStopped
	default:
	}
	defer r.Stop()

	r.logger.Debug("runner started", "interval", r.Interval())
	r.publish()

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("runner cancelled", "error", ctx.Err())
			return ctx.Err()

		case <-r.done:
			return nil

		case ev := <-r.inputs:
			if ev == engine.EventQuit {
				r.logger.Info("quit requested", "score", r.game.Score(), "lines", r.game.Lines())
				return nil
			}
			r.step(func() { r.game.Apply(ev) })

		case <-r.ticks:
			r.step(func() { r.game.Tick() })
		}
	}
}

// step runs one engine operation and publishes the result.
func (r *Runner) step(op func()) {
	wasOver := r.game.Over()
	op()
	r.interval.Store(int64(r.game.TickInterval()))

	if !wasOver && r.game.Over() {
		r.logger.Info("game over", "score", r.game.Score(), "lines", r.game.Lines(), "pieces", r.game.Pieces())
	}
	r.publish()
}

func (r *Runner) publish() {
	snap := r.game.Snapshot()

	r.subsMu.Lock()
	defer r.subsMu.Unlock()
	for _, s := range r.subs {
		s.send(snap)
	}
}

// Subscribe returns a stream of snapshots taken after every processed message.
// Slow subscribers lose the oldest snapshots rather than stalling the game.
func (r *Runner) Subscribe(buffer int) *Subscription {
	s := newSubscription(buffer)

	r.subsMu.Lock()
	defer r.subsMu.Unlock()
	select {
	case <-r.done:
		s.close()
	default:
		r.subs = append(r.subs, s)
	}
	return s
}

// Unsubscribe detaches and closes s.
func (r *Runner) Unsubscribe(s *Subscription) {
	r.subsMu.Lock()
	defer r.subsMu.Unlock()
	for i, sub := range r.subs {
		if sub == s {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			s.close()
			return
		}
	}
}
