package core

import "time"

// Button identifies one of the four board switches.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonFire
	ButtonStart

	ButtonCount
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonFire:
		return "fire"
	case ButtonStart:
		return "start"
	default:
		return "unknown"
	}
}

// Buttons is one instantaneous sample of all switches; true means engaged.
type Buttons [ButtonCount]bool

// Pressed reports whether b is engaged in this sample.
func (s Buttons) Pressed(b Button) bool {
	if b < 0 || b >= ButtonCount {
		return false
	}
	return s[b]
}

// Rising reports a false-to-true transition of b between prev and s.
func (s Buttons) Rising(prev Buttons, b Button) bool {
	return s.Pressed(b) && !prev.Pressed(b)
}

// Frame is the input handed to a game for one tick: the current and
// previous samples plus the clock reading taken with them.
type Frame struct {
	Now  time.Time
	Held Buttons
	Prev Buttons
}

// Pressed reports whether b is held this tick.
func (f Frame) Pressed(b Button) bool {
	return f.Held.Pressed(b)
}

// Rising reports whether b went down since the previous tick.
func (f Frame) Rising(b Button) bool {
	return f.Held.Rising(f.Prev, b)
}
