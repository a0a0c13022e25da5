package runner

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// onlyO always picks the O piece, which spawns at x=4 on a 10-wide board.
type onlyO struct{}

func (onlyO) Intn(int) int { return int(engine.KindO) }

func newTestRunner(t *testing.T, opts ...Option) (*Runner, *engine.Game) {
	t.Helper()
	game, err := engine.New(engine.DefaultConfig(), engine.WithPicker(onlyO{}))
	require.NoError(t, err)
	opts = append([]Option{WithLogger(log.New(io.Discard))}, opts...)
	return New(game, opts...), game
}

func runAsync(r *Runner) <-chan error {
	errc := make(chan error, 1)
	go func() { errc <- r.Run(context.Background()) }()
	return errc
}

func waitErr(t *testing.T, errc <-chan error) error {
	t.Helper()
	select {
	case err := <-errc:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop")
		return nil
	}
}

func nextFrame(t *testing.T, s *Subscription) engine.Snapshot {
	t.Helper()
	select {
	case snap, ok := <-s.Frames():
		require.True(t, ok, "frames closed")
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("no frame")
		return engine.Snapshot{}
	}
}

func TestRunnerAppliesEventsInOrder(t *testing.T) {
	r, game := newTestRunner(t)

	for _, ev := range []engine.Event{engine.EventMoveLeft, engine.EventMoveLeft, engine.EventMoveRight, engine.EventQuit} {
		require.True(t, r.Send(ev))
	}
	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, 3, game.Active().X)
	assert.Equal(t, 0, game.Active().Y)
}

func TestRunnerTickMovesPiece(t *testing.T) {
	r, _ := newTestRunner(t)
	sub := r.Subscribe(8)

	errc := runAsync(r)
	first := nextFrame(t, sub)
	assert.Equal(t, 0, first.Active[0].Y)

	r.TickElapsed()
	second := nextFrame(t, sub)
	assert.Equal(t, 1, second.Active[0].Y)

	r.Stop()
	assert.NoError(t, waitErr(t, errc))

	_, ok := <-sub.Frames()
	assert.False(t, ok, "frames close when the runner stops")
}

func TestRunnerTicksCoalesce(t *testing.T) {
	r, _ := newTestRunner(t)
	sub := r.Subscribe(8)
	for range 5 {
		r.TickElapsed()
	}

	errc := runAsync(r)
	nextFrame(t, sub)
	snap := nextFrame(t, sub)
	assert.Equal(t, 1, snap.Active[0].Y)

	select {
	case extra := <-sub.Frames():
		t.Fatalf("unexpected frame at y=%d", extra.Active[0].Y)
	case <-time.After(50 * time.Millisecond):
	}

	r.Stop()
	assert.NoError(t, waitErr(t, errc))
}

func TestRunnerIntervalFollowsLocks(t *testing.T) {
	r, game := newTestRunner(t)
	assert.Equal(t, 300*time.Millisecond, r.Interval())

	// 18 moves reach the floor, the 19th locks.
	for range 19 {
		require.True(t, r.Send(engine.EventSoftDrop))
	}
	require.True(t, r.Send(engine.EventQuit))
	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, 1, game.Pieces())
	assert.Equal(t, 298*time.Millisecond, r.Interval())
}

func TestRunnerContextCancel(t *testing.T) {
	r, _ := newTestRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, r.Send(engine.EventMoveLeft), "stopped runner rejects input")
}

func TestRunnerRunAfterStop(t *testing.T) {
	r, _ := newTestRunner(t)
	r.Stop()
	r.Stop()

	assert.True(t, errors.Is(r.Run(context.Background()), ErrStopped))

	sub := r.Subscribe(1)
	_, ok := <-sub.Frames()
	assert.False(t, ok, "late subscribers get a closed stream")
}

func TestRunnerSendDropsWhenFull(t *testing.T) {
	r, _ := newTestRunner(t, WithInputBuffer(2))
	assert.True(t, r.Send(engine.EventMoveLeft))
	assert.True(t, r.Send(engine.EventMoveLeft))
	assert.False(t, r.Send(engine.EventMoveLeft))
}

func TestUnsubscribe(t *testing.T) {
	r, _ := newTestRunner(t)
	sub := r.Subscribe(1)
	r.Unsubscribe(sub)

	_, ok := <-sub.Frames()
	assert.False(t, ok)
	r.Unsubscribe(sub)
}

func TestSubscriptionDropsOldest(t *testing.T) {
	s := newSubscription(2)
	for score := 1; score <= 3; score++ {
		s.send(engine.Snapshot{Score: score})
	}

	assert.Equal(t, 2, (<-s.Frames()).Score)
	assert.Equal(t, 3, (<-s.Frames()).Score)
	assert.Equal(t, 1, s.Dropped())

	s.close()
	s.send(engine.Snapshot{Score: 4})
	s.close()
	_, ok := <-s.Frames()
	assert.False(t, ok)
}

type fakeTicker struct {
	interval time.Duration
	ticks    atomic.Int32
	done     chan struct{}
}

func (f *fakeTicker) Interval() time.Duration { return f.interval }
func (f *fakeTicker) TickElapsed()            { f.ticks.Add(1) }
func (f *fakeTicker) Done() <-chan struct{}   { return f.done }

func TestMetronomeSignalsEachInterval(t *testing.T) {
	ft := &fakeTicker{interval: 5 * time.Millisecond, done: make(chan struct{})}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, NewMetronome(ft).Run(ctx))
	assert.GreaterOrEqual(t, ft.ticks.Load(), int32(5))
}

func TestMetronomeStopsWithTarget(t *testing.T) {
	ft := &fakeTicker{interval: time.Hour, done: make(chan struct{})}
	close(ft.done)

	require.NoError(t, NewMetronome(ft).Run(context.Background()))
	assert.Zero(t, ft.ticks.Load())
}

func TestMetronomeDrivesRunner(t *testing.T) {
	game, err := engine.New(engine.Config{
		Width:         10,
		Height:        20,
		Speed:         engine.SpeedConfig{Initial: 2 * time.Millisecond, Min: time.Millisecond, Step: 0},
		PointsPerLine: 100,
	}, engine.WithPicker(onlyO{}))
	require.NoError(t, err)
	r := New(game, WithLogger(log.New(io.Discard)))
	sub := r.Subscribe(64)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go NewMetronome(r).Run(ctx) //nolint:errcheck // always nil
	errc := runAsync(r)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap := <-sub.Frames():
			if snap.Pieces > 0 {
				r.Stop()
				assert.NoError(t, waitErr(t, errc))
				return
			}
		case <-deadline:
			t.Fatal("gravity never locked a piece")
		}
	}
}
