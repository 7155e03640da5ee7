package core

import "fmt"

// Key identifies a physical control on the input device.
// The layout mirrors a small handheld: a d-pad plus OK and Back.
type Key int

const (
	KeyNone    Key = iota
	KeyUp          // d-pad up
	KeyDown        // d-pad down
	KeyLeft        // d-pad left
	KeyRight       // d-pad right
	KeyConfirm     // OK - drop the box, start/resume
	KeyBack        // Back - pause, return to menu; long press quits
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyConfirm:
		return "Confirm"
	case KeyBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// InputKind describes what happened to a key.
type InputKind int

const (
	InputPress     InputKind = iota // key went down
	InputRelease                    // key went up
	InputLongPress                  // key held past the long-press threshold
	InputRepeat                     // auto-repeat while held
)

// String returns a human-readable name for the input kind.
func (k InputKind) String() string {
	switch k {
	case InputPress:
		return "Press"
	case InputRelease:
		return "Release"
	case InputLongPress:
		return "LongPress"
	case InputRepeat:
		return "Repeat"
	default:
		return "Unknown"
	}
}

// InputEvent is a single discrete event delivered by the input source.
type InputEvent struct {
	Key  Key
	Kind InputKind
}

// Press returns a press event for the key.
func Press(k Key) InputEvent {
	return InputEvent{Key: k, Kind: InputPress}
}

// Release returns a release event for the key.
func Release(k Key) InputEvent {
	return InputEvent{Key: k, Kind: InputRelease}
}

// LongPress returns a long-press event for the key.
func LongPress(k Key) InputEvent {
	return InputEvent{Key: k, Kind: InputLongPress}
}

// Is reports whether the event is the given kind on the given key.
func (e InputEvent) Is(k Key, kind InputKind) bool {
	return e.Key == k && e.Kind == kind
}

func (e InputEvent) String() string {
	return fmt.Sprintf("%s/%s", e.Key, e.Kind)
}
