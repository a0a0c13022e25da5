package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpeedRampsDownToFloor(t *testing.T) {
	s := NewSpeed(DefaultSpeedConfig())
	assert.Equal(t, 300*time.Millisecond, s.Interval())

	s.OnLock()
	assert.Equal(t, 298*time.Millisecond, s.Interval())

	prev := s.Interval()
	for range 200 {
		s.OnLock()
		assert.LessOrEqual(t, s.Interval(), prev)
		assert.GreaterOrEqual(t, s.Interval(), 150*time.Millisecond)
		prev = s.Interval()
	}
	assert.Equal(t, 150*time.Millisecond, s.Interval())

	s.Reset()
	assert.Equal(t, 300*time.Millisecond, s.Interval())
}

func TestSpeedFixedSchedule(t *testing.T) {
	s := NewSpeed(SpeedConfig{Initial: 200 * time.Millisecond, Min: 200 * time.Millisecond, Step: 5 * time.Millisecond})
	for range 10 {
		s.OnLock()
	}
	assert.Equal(t, 200*time.Millisecond, s.Interval())
}

func TestSpeedConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  SpeedConfig
		ok   bool
	}{
		{"defaults", DefaultSpeedConfig(), true},
		{"zero step", SpeedConfig{Initial: time.Second, Min: time.Second}, true},
		{"zero initial", SpeedConfig{Min: time.Millisecond}, false},
		{"zero min", SpeedConfig{Initial: time.Second}, false},
		{"min above initial", SpeedConfig{Initial: time.Millisecond, Min: time.Second}, false},
		{"negative step", SpeedConfig{Initial: time.Second, Min: time.Millisecond, Step: -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, ErrInvalidSpeed), "got %v", err)
			}
		})
	}
}
