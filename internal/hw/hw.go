// Package hw declares the narrow hardware surface the games run against:
// digital input lines, a PWM output, a monochrome display and a clock.
// Board bring-up (bus, pin modes, panel init) happens outside and hands in
// values that satisfy these interfaces.
package hw

import (
	"time"

	"github.com/vovakirdan/pico-arcade/internal/core"
)

// Pin is a digital input line. Get returns the raw level, true for high.
type Pin interface {
	Get() bool
}

// PWM is a pulse-width modulated output driving the piezo.
// Frequency changes are only guaranteed safe while the duty cycle is 0.
type PWM interface {
	SetFrequency(hz int) error
	SetDutyCycle(fraction float64) error
}

// Display is a 1 bit per pixel panel with origin at the top-left.
type Display interface {
	Clear()
	FillRect(x, y, w, h int, c core.Color)
	DrawText(s string, x, y int, c core.Color)
	Show() error
}

// Clock reads monotonic wall time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// PinFunc adapts a function to the Pin interface.
type PinFunc func() bool

// Get calls f.
func (f PinFunc) Get() bool {
	return f()
}

// SilentPWM accepts every setting and produces no sound.
type SilentPWM struct{}

// SetFrequency does nothing.
func (SilentPWM) SetFrequency(int) error { return nil }

// SetDutyCycle does nothing.
func (SilentPWM) SetDutyCycle(float64) error { return nil }
