package core

import "time"

// Board dimensions of the SSD1306 panel the games are written for.
const (
	ScreenW = 128
	ScreenH = 64
)

// Color is a monochrome pixel value.
type Color uint8

const (
	ColorOff Color = iota // Pixel dark
	ColorOn               // Pixel lit
)

// Beeper starts a single bounded tone. Implementations must not block.
type Beeper interface {
	StartBeep(hz int, d time.Duration)
}

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the panel and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int           // Panel width in pixels
	ScreenH    int           // Panel height in pixels
	TickPeriod time.Duration // Target loop period
	Seed       int64         // RNG seed for deterministic gameplay
	Start      time.Time     // Clock reading at reset; zero means "first Step"
	Beeper     Beeper        // Audio sink; nil means silent
}

// DefaultConfig returns a RuntimeConfig for the 128x64 board at 20 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    ScreenW,
		ScreenH:    ScreenH,
		TickPeriod: 50 * time.Millisecond,
		Seed:       0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the loop owner.
type GameState struct {
	Terminated bool   // Game reached its inert terminal state
	Phase      string // Human-readable phase name, for logs
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
