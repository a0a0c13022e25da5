package core

// Action is a semantic input, decoupled from physical keys.
// Games react to actions; the platform decides which keys produce them.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionUp             // menu navigation
	ActionDown           // S, Down arrow - soft drop in game, navigation in menus
	ActionRotate         // W, Up arrow, Space
	ActionConfirm        // Enter
	ActionBack           // B, Escape
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionRotate:
		return "Rotate"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one host tick.
// Order is preserved so that "left, rotate" and "rotate, left" stay distinct.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set appends an action to this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the triggered actions in arrival order.
func (f InputFrame) Actions() []Action {
	out := make([]Action, len(f.actions))
	copy(out, f.actions)
	return out
}

// Empty reports whether nothing was pressed this frame.
func (f InputFrame) Empty() bool {
	return len(f.actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
