package tui

import (
	"sync"
	"time"

	"github.com/vovakirdan/pico-arcade/internal/core"
	"github.com/vovakirdan/pico-arcade/internal/hw"
	"github.com/vovakirdan/pico-arcade/internal/input"
)

// HeldKeys turns key presses into button pin levels. Terminals send no
// key-up events, so a button reads as held until the hold window after its
// last press or auto-repeat has passed.
type HeldKeys struct {
	mu    sync.Mutex
	clock hw.Clock
	hold  time.Duration
	last  [core.ButtonCount]time.Time
}

// NewHeldKeys creates virtual buttons with the given hold window.
func NewHeldKeys(clock hw.Clock, hold time.Duration) *HeldKeys {
	return &HeldKeys{clock: clock, hold: hold}
}

// Press records a press or auto-repeat of b at now.
func (h *HeldKeys) Press(b core.Button, now time.Time) {
	if b >= core.ButtonCount {
		return
	}
	h.mu.Lock()
	h.last[b] = now
	h.mu.Unlock()
}

// Held reports whether b reads as held at now.
func (h *HeldKeys) Held(b core.Button, now time.Time) bool {
	if b >= core.ButtonCount {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	last := h.last[b]
	return !last.IsZero() && now.Sub(last) < h.hold
}

// Pin returns an idle-high line for b: low while held.
func (h *HeldKeys) Pin(b core.Button) hw.Pin {
	return hw.PinFunc(func() bool {
		return !h.Held(b, h.clock.Now())
	})
}

// Pins wires all four buttons.
func (h *HeldKeys) Pins() input.Pins {
	return input.Pins{
		Left:  h.Pin(core.ButtonLeft),
		Right: h.Pin(core.ButtonRight),
		Fire:  h.Pin(core.ButtonFire),
		Start: h.Pin(core.ButtonStart),
	}
}
