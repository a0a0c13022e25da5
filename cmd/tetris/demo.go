package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/runner"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// demoOptions controls a headless scripted game.
type demoOptions struct {
	script   string
	delay    time.Duration
	duration time.Duration
	frames   bool
	save     bool
}

var demo demoOptions

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted game without a terminal UI",
	Long: `Play a game headlessly: a script of moves is fed to the game on a
fixed delay, gravity runs in real time, and the final board is printed.
The script repeats until the game ends or --duration passes.

Script letters (case-insensitive):
  L  move left     R  move right
  D  soft drop     U  rotate
  X  restart       Q  quit

Comma or space separated names also work: "left,left,rotate,down".

Examples:
  tetris demo
  tetris demo --script RRUDDD --delay 50ms --seed 7
  tetris demo --frames --duration 5s
  tetris demo --difficulty hard --save`,
	Args: cobra.NoArgs,
	RunE: runDemoCmd,
}

func init() {
	f := demoCmd.Flags()
	f.StringVar(&demo.script, "script", "LLUDDDDRRRUDDDD", "Moves to play, repeated until the game ends")
	f.DurationVar(&demo.delay, "delay", 80*time.Millisecond, "Pause between scripted moves")
	f.DurationVar(&demo.duration, "duration", 30*time.Second, "Stop after this long even if the game is still running")
	f.BoolVar(&demo.frames, "frames", false, "Print a status line for every frame")
	f.BoolVar(&demo.save, "save", false, "Record the final score as player \"demo\"")
}

func runDemoCmd(cmd *cobra.Command, _ []string) error {
	tuning, preset, err := loadTuning()
	if err != nil {
		return err
	}
	config.ApplyTetrisPreset(&tuning, preset)

	seed := host.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engCfg, err := tuning.ToEngine(seed)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), "demo")
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	final, err := runDemo(ctx, cmd.OutOrStdout(), engCfg, demo, logger)
	if err != nil {
		return err
	}

	if demo.save && final.Score > 0 {
		store, err := storage.Open(host.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if _, err := store.SaveScore(storage.Result{
			GameID: "tetris",
			Player: "demo",
			Score:  final.Score,
			Lines:  final.Lines,
		}); err != nil {
			return err
		}
		logger.Info("score saved", "score", final.Score)
	}
	return nil
}

// runDemo plays engCfg with a repeating script until the game ends, the
// script quits, ctx is cancelled or opts.duration passes. It prints the final
// board to out and returns the last snapshot.
func runDemo(ctx context.Context, out io.Writer, engCfg engine.Config, opts demoOptions, logger *log.Logger) (engine.Snapshot, error) {
	if opts.delay <= 0 {
		return engine.Snapshot{}, fmt.Errorf("demo: --delay must be positive, got %s", opts.delay)
	}
	game, err := engine.New(engCfg)
	if err != nil {
		return engine.Snapshot{}, err
	}

	r := runner.New(game, runner.WithLogger(logger))
	frames := r.Subscribe(64)
	events := engine.ParseScript(opts.script)

	if opts.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := r.Run(gctx)
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		return runner.NewMetronome(r).Run(gctx)
	})

	if len(events) > 0 {
		g.Go(func() error {
			ticker := time.NewTicker(opts.delay)
			defer ticker.Stop()
			for i := 0; ; i++ {
				select {
				case <-gctx.Done():
					return nil
				case <-r.Done():
					return nil
				case <-ticker.C:
					r.Send(events[i%len(events)])
				}
			}
		})
	}

	var last engine.Snapshot
	g.Go(func() error {
		for snap := range frames.Frames() {
			last = snap
			if opts.frames {
				fmt.Fprintln(out, statusLine(snap))
			}
			if snap.Phase == engine.PhaseGameOver {
				r.Unsubscribe(frames)
				r.Stop()
				return nil
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return last, err
	}
	if n := frames.Dropped(); n > 0 {
		logger.Debug("frames dropped", "count", n)
	}

	fmt.Fprint(out, boardText(last))
	fmt.Fprintln(out, statusLine(last))
	return last, nil
}

// statusLine summarizes a snapshot on one line.
func statusLine(s engine.Snapshot) string {
	return fmt.Sprintf("%s score=%d lines=%d pieces=%d interval=%dms",
		s.Phase, s.Score, s.Lines, s.Pieces, s.TickIntervalMs)
}

// boardText draws the composited board with '#' for blocks, framed by walls.
func boardText(s engine.Snapshot) string {
	var b strings.Builder
	for _, row := range s.Composite() {
		b.WriteByte('|')
		for _, c := range row {
			if c == engine.ColorEmpty {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteString("|\n")
	}
	b.WriteByte('+')
	b.WriteString(strings.Repeat("-", s.Width))
	b.WriteString("+\n")
	return b.String()
}
