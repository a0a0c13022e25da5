package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEvent(t *testing.T) {
	tests := []struct {
		in   string
		want Event
		ok   bool
	}{
		{"left", EventMoveLeft, true},
		{"L", EventMoveLeft, true},
		{" Right ", EventMoveRight, true},
		{"down", EventSoftDrop, true},
		{"d", EventSoftDrop, true},
		{"rotate", EventRotate, true},
		{"U", EventRotate, true},
		{"quit", EventQuit, true},
		{"x", EventRestart, true},
		{"restart", EventRestart, true},
		{"hold", EventNone, false},
		{"", EventNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseEvent(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEventStringRoundTrips(t *testing.T) {
	for ev := EventMoveLeft; ev <= EventRestart; ev++ {
		got, ok := ParseEvent(ev.String())
		assert.True(t, ok, ev.String())
		assert.Equal(t, ev, got)
	}
}

func TestParseScript(t *testing.T) {
	assert.Equal(t,
		[]Event{EventMoveRight, EventMoveRight, EventRotate, EventSoftDrop},
		ParseScript("RR?UD"),
	)
	assert.Equal(t,
		[]Event{EventMoveLeft, EventRotate, EventRestart},
		ParseScript("left, rotate,bogus restart"),
	)
	assert.Empty(t, ParseScript(""))
}
