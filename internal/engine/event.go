package engine

import "strings"

// Event is a discrete input the engine understands.
type Event int

const (
	EventNone Event = iota
	EventMoveLeft
	EventMoveRight
	EventSoftDrop
	EventRotate
	EventQuit
	EventRestart
)

// String returns the event name as accepted by ParseEvent.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventMoveLeft:
		return "left"
	case EventMoveRight:
		return "right"
	case EventSoftDrop:
		return "down"
	case EventRotate:
		return "rotate"
	case EventQuit:
		return "quit"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// ParseEvent maps an event name or a single-letter script code
// (L, R, D, U, Q, X) to an Event. Matching is case-insensitive.
func ParseEvent(s string) (Event, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return EventMoveLeft, true
	case "right", "r":
		return EventMoveRight, true
	case "down", "drop", "d":
		return EventSoftDrop, true
	case "rotate", "up", "u":
		return EventRotate, true
	case "quit", "q":
		return EventQuit, true
	case "restart", "x":
		return EventRestart, true
	}
	return EventNone, false
}

// ParseScript splits a compact script such as "RRRDU" or "right,right,rotate"
// into events. Unrecognized tokens are skipped.
func ParseScript(script string) []Event {
	var tokens []string
	if strings.ContainsAny(script, ", ") {
		tokens = strings.FieldsFunc(script, func(r rune) bool { return r == ',' || r == ' ' })
	} else {
		for _, r := range script {
			tokens = append(tokens, string(r))
		}
	}

	events := make([]Event, 0, len(tokens))
	for _, tok := range tokens {
		if ev, ok := ParseEvent(tok); ok {
			events = append(events, ev)
		}
	}
	return events
}
