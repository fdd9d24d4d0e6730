package core

// Action represents a semantic game command, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left arrow, A, H - shift tiles left
	ActionMoveRight        // Right arrow, D, L - shift tiles right
	ActionMoveUp           // Up arrow, W, K - shift tiles up
	ActionMoveDown         // Down arrow, S, J - shift tiles down
	ActionConfirm          // Enter - start a new game
	ActionCancel           // Esc, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions delivered during one tick.
// Actions keep their delivery order; the game applies them one by one.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an action to the frame. ActionNone is dropped.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Actions returns the actions of this frame in delivery order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Clear resets the frame for the next tick, keeping its storage.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
