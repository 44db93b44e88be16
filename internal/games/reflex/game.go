// Package reflex implements a reaction timer. START arms a random delay,
// the whole panel lights when it expires, and the time to the next FIRE
// press is shown in milliseconds. Pressing FIRE before the flash aborts
// the round.
package reflex

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/pico-arcade/internal/core"
	"github.com/vovakirdan/pico-arcade/internal/hw"
	"github.com/vovakirdan/pico-arcade/internal/registry"
)

// Flash delay bounds.
const (
	DelayMin = 1500 * time.Millisecond
	DelayMax = 4000 * time.Millisecond
)

// Phase is the timer's state.
type Phase int

const (
	PhaseIntro   Phase = iota // Waiting for START
	PhaseWaiting              // Armed, panel dark until the flash
	PhaseFlashed              // Panel lit, timing the FIRE press
	PhaseResult               // Showing the measured time
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseWaiting:
		return "waiting"
	case PhaseFlashed:
		return "flashed"
	case PhaseResult:
		return "result"
	default:
		return "unknown"
	}
}

// Source supplies uniform random numbers in [0, 1).
type Source interface {
	Float64() float64
}

// Game implements the reaction timer.
type Game struct {
	phase     Phase
	early     bool // Last round ended with a press before the flash
	justArmed bool // Arming happened on the latest tick
	flashAt   time.Time
	flashedAt time.Time
	resultMS  int
	rng       Source
	config    core.RuntimeConfig
}

// New creates a new reaction timer.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "reflex"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Reflexes"
}

// Reset returns to the intro screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	if g.config.ScreenW <= 0 || g.config.ScreenH <= 0 {
		g.config.ScreenW, g.config.ScreenH = core.ScreenW, core.ScreenH
	}
	g.phase = PhaseIntro
	g.early = false
	g.justArmed = false
	g.resultMS = 0
	g.rng = rand.New(rand.NewSource(cfg.Seed))
}

// Step advances the timer by one tick.
func (g *Game) Step(in core.Frame) core.StepResult {
	g.justArmed = false

	switch g.phase {
	case PhaseIntro, PhaseResult:
		if in.Rising(core.ButtonStart) {
			g.arm(in.Now)
		}

	case PhaseWaiting:
		if in.Rising(core.ButtonFire) {
			g.early = true
			g.phase = PhaseIntro
			break
		}
		if !in.Now.Before(g.flashAt) {
			g.flashedAt = in.Now
			g.phase = PhaseFlashed
		}

	case PhaseFlashed:
		if in.Rising(core.ButtonFire) {
			g.resultMS = int(in.Now.Sub(g.flashedAt) / time.Millisecond)
			g.phase = PhaseResult
		}
	}

	return core.StepResult{State: g.State()}
}

// arm schedules the flash at a uniformly random delay.
func (g *Game) arm(now time.Time) {
	spread := float64(DelayMax - DelayMin)
	g.flashAt = now.Add(DelayMin + time.Duration(g.rng.Float64()*spread))
	g.early = false
	g.justArmed = true
	g.phase = PhaseWaiting
}

// Render draws the screen for the current phase.
func (g *Game) Render(dst hw.Display) error {
	dst.Clear()

	switch g.phase {
	case PhaseIntro:
		if g.early {
			g.centerText(dst, "FIRE!!", 20)
			g.centerText(dst, "RESTART = red", 36)
		} else {
			g.centerText(dst, "Reflexes game", 10)
			g.centerText(dst, "START = red", 26)
			g.centerText(dst, "Light up,push yerrow!!!", 42)
		}
	case PhaseWaiting:
		if g.justArmed {
			g.centerText(dst, "black out...", 24)
		}
	case PhaseFlashed:
		dst.FillRect(0, 0, g.config.ScreenW, g.config.ScreenH, core.ColorOn)
	case PhaseResult:
		g.centerText(dst, "time", 10)
		g.centerText(dst, fmt.Sprintf("%d ms", g.resultMS), 28)
		g.centerText(dst, "RESTART = red", 46)
	}

	if err := dst.Show(); err != nil {
		return fmt.Errorf("reflex: present frame: %w", err)
	}
	return nil
}

// centerText draws text horizontally centred, clamped to the left edge.
func (g *Game) centerText(dst hw.Display, text string, y int) {
	x := core.Max(0, (g.config.ScreenW-core.TextWidth(text))/2)
	dst.DrawText(text, x, y, core.ColorOn)
}

// State returns the current game state. The timer never terminates.
func (g *Game) State() core.GameState {
	return core.GameState{Phase: g.phase.String()}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// ResultMS returns the last measured reaction time.
func (g *Game) ResultMS() int {
	return g.resultMS
}

// Register the game with the registry
func init() {
	registry.Register("reflex", func() registry.Game {
		return New()
	})
}
