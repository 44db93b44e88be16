// Package input samples the four board switches.
package input

import (
	"github.com/vovakirdan/pico-arcade/internal/core"
	"github.com/vovakirdan/pico-arcade/internal/hw"
)

// Pins maps each board switch to its input line.
type Pins struct {
	Left  hw.Pin
	Right hw.Pin
	Fire  hw.Pin
	Start hw.Pin
}

// Sampler reads the switches. Lines are pulled up, so an engaged switch
// reads low and the raw level is inverted. There is no debouncing.
type Sampler struct {
	pins [core.ButtonCount]hw.Pin
}

// NewSampler creates a sampler over the given lines. A nil line reads as
// never pressed.
func NewSampler(p Pins) *Sampler {
	return &Sampler{
		pins: [core.ButtonCount]hw.Pin{
			core.ButtonLeft:  p.Left,
			core.ButtonRight: p.Right,
			core.ButtonFire:  p.Fire,
			core.ButtonStart: p.Start,
		},
	}
}

// Sample returns the instantaneous state of every switch.
func (s *Sampler) Sample() core.Buttons {
	var b core.Buttons
	for i, pin := range s.pins {
		if pin == nil {
			continue
		}
		b[i] = !pin.Get()
	}
	return b
}
