package engine

import (
	"errors"
	"fmt"
	"time"
)

// Default speed schedule.
const (
	DefaultInitialInterval = 300 * time.Millisecond
	DefaultMinInterval     = 150 * time.Millisecond
	DefaultIntervalStep    = 2 * time.Millisecond
)

// ErrInvalidSpeed is returned for a speed schedule that cannot be applied.
var ErrInvalidSpeed = errors.New("engine: invalid speed schedule")

// SpeedConfig describes the gravity interval schedule.
type SpeedConfig struct {
	Initial time.Duration // interval at the start of a session
	Min     time.Duration // floor the interval never drops below
	Step    time.Duration // reduction applied once per lock
}

// DefaultSpeedConfig returns the 300ms -> 150ms schedule with 2ms steps.
func DefaultSpeedConfig() SpeedConfig {
	return SpeedConfig{
		Initial: DefaultInitialInterval,
		Min:     DefaultMinInterval,
		Step:    DefaultIntervalStep,
	}
}

// Validate checks that the schedule is positive and well ordered.
func (c SpeedConfig) Validate() error {
	switch {
	case c.Initial <= 0:
		return fmt.Errorf("%w: initial interval %v must be positive", ErrInvalidSpeed, c.Initial)
	case c.Min <= 0:
		return fmt.Errorf("%w: min interval %v must be positive", ErrInvalidSpeed, c.Min)
	case c.Min > c.Initial:
		return fmt.Errorf("%w: min interval %v exceeds initial %v", ErrInvalidSpeed, c.Min, c.Initial)
	case c.Step < 0:
		return fmt.Errorf("%w: step %v must not be negative", ErrInvalidSpeed, c.Step)
	}
	return nil
}

// Speed tracks the current gravity interval. It only ever decreases within a
// session and is floored at Min.
type Speed struct {
	cfg     SpeedConfig
	current time.Duration
}

// NewSpeed starts a schedule at its initial interval.
func NewSpeed(cfg SpeedConfig) Speed {
	return Speed{cfg: cfg, current: cfg.Initial}
}

// Interval returns the current gravity interval.
func (s *Speed) Interval() time.Duration {
	return s.current
}

// OnLock shortens the interval by one step, regardless of lines cleared.
func (s *Speed) OnLock() {
	s.current = max(s.cfg.Min, s.current-s.cfg.Step)
}

// Reset restores the initial interval.
func (s *Speed) Reset() {
	s.current = s.cfg.Initial
}
