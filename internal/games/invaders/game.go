// Package invaders implements a single-screen shooter for the 128x64 board.
// Rows of enemies drop from the top; the player slides along the bottom and
// fires upward. An enemy reaching the bottom ends the game.
package invaders

import (
	"github.com/vovakirdan/pico-arcade/internal/core"
	"github.com/vovakirdan/pico-arcade/internal/hw"
	"github.com/vovakirdan/pico-arcade/internal/registry"
)

// Game adapts a Simulation to the registry's Game interface.
type Game struct {
	sim    *Simulation
	config core.RuntimeConfig
}

// New creates a new invaders game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Invaders"
}

// Reset starts a fresh world.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.sim = NewSimulation(cfg, nil)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.Frame) core.StepResult {
	g.sim.Step(in)
	return core.StepResult{State: g.State()}
}

// Render draws the world, or the game over screen once terminated.
func (g *Game) Render(dst hw.Display) error {
	if g.sim.Terminated() {
		return DrawGameOver(dst)
	}
	return Draw(dst, g.sim.World())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim != nil && g.sim.Terminated() {
		return core.GameState{Terminated: true, Phase: "game_over"}
	}
	return core.GameState{Phase: "playing"}
}

// Snapshot returns counters for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return g.sim.Snapshot()
}

// Register the game with the registry
func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}
