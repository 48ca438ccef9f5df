package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the engine to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone   Action = iota
	ActionRotate        // Up, R - rotate clockwise
	ActionLeft          // Left, A - move left
	ActionRight         // Right, D - move right
	ActionDrop          // Down - hard drop (edge-triggered)
	ActionQuit          // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotate:
		return "Rotate"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDrop:
		return "Drop"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyboardInput is the polling surface the engine reads once per tick.
type KeyboardInput interface {
	// IsDown is level-triggered: true for as long as the key is held.
	IsDown(a Action) bool
	// WasPressed is edge-triggered: true at most once per physical press.
	WasPressed(a Action) bool
}

// InputFrame is an immutable-by-convention snapshot of the key state for one tick.
// It implements KeyboardInput so the engine never touches shared state directly.
type InputFrame struct {
	// Held contains actions whose key is currently down.
	Held map[Action]bool
	// Pressed contains actions whose key went down since the previous snapshot.
	Pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Press marks an action as freshly pressed. A fresh press is also held.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.Hold(a)
}

// IsDown returns true if the action's key is held in this frame.
func (f InputFrame) IsDown(a Action) bool {
	return f.Held[a]
}

// WasPressed returns true if the action's key was freshly pressed in this frame.
func (f InputFrame) WasPressed(a Action) bool {
	return f.Pressed[a]
}

// Empty reports whether no key is held or pressed.
func (f InputFrame) Empty() bool {
	return len(f.Held) == 0 && len(f.Pressed) == 0
}
