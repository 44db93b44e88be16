package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/pico-arcade/internal/config"
	"github.com/vovakirdan/pico-arcade/internal/core"
	"github.com/vovakirdan/pico-arcade/internal/input"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestHeldKeysWindow(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	h := NewHeldKeys(clock, 120*time.Millisecond)

	if h.Held(core.ButtonFire, clock.now) {
		t.Error("no press yet, should be released")
	}

	h.Press(core.ButtonFire, clock.now)
	clock.advance(119 * time.Millisecond)
	if !h.Held(core.ButtonFire, clock.now) {
		t.Error("should be held inside the window")
	}

	clock.advance(time.Millisecond)
	if h.Held(core.ButtonFire, clock.now) {
		t.Error("should be released at the end of the window")
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	h := NewHeldKeys(clock, 120*time.Millisecond)

	h.Press(core.ButtonLeft, clock.now)
	for range 5 {
		clock.advance(100 * time.Millisecond)
		h.Press(core.ButtonLeft, clock.now)
		if !h.Held(core.ButtonLeft, clock.now) {
			t.Fatal("auto-repeat should keep the button held")
		}
	}
	if h.Held(core.ButtonRight, clock.now) {
		t.Error("other buttons should stay released")
	}
}

func TestHeldKeysPinsAreIdleHigh(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	h := NewHeldKeys(clock, 120*time.Millisecond)
	pins := h.Pins()

	if !pins.Fire.Get() {
		t.Error("released button should read high")
	}
	h.Press(core.ButtonFire, clock.now)
	if pins.Fire.Get() {
		t.Error("held button should read low")
	}

	buttons := input.NewSampler(pins).Sample()
	if !buttons.Pressed(core.ButtonFire) || buttons.Pressed(core.ButtonStart) {
		t.Errorf("sampled %v, expected only fire", buttons)
	}
}

func TestDefaultHoldBridgesAutoRepeatDelay(t *testing.T) {
	start := time.Unix(100, 0)
	clock := &fakeClock{now: start}
	h := NewHeldKeys(clock, config.Default().Input.Hold)
	sampler := input.NewSampler(h.Pins())

	// One press, then auto-repeat from 500ms every 33ms, sampled every 50ms.
	var presses []time.Duration
	presses = append(presses, 0)
	for d := 500 * time.Millisecond; d <= 2*time.Second; d += 33 * time.Millisecond {
		presses = append(presses, d)
	}

	var prev core.Buttons
	rising := 0
	next := 0
	for tick := time.Duration(0); tick <= 2*time.Second; tick += 50 * time.Millisecond {
		clock.now = start.Add(tick)
		for next < len(presses) && presses[next] <= tick {
			h.Press(core.ButtonFire, start.Add(presses[next]))
			next++
		}
		cur := sampler.Sample()
		if cur.Rising(prev, core.ButtonFire) {
			rising++
		}
		prev = cur
	}

	if rising != 1 {
		t.Errorf("rising edges: got %d, expected 1 for a held key", rising)
	}
}
