package invaders

import (
	"time"

	"github.com/vovakirdan/pico-arcade/internal/core"
)

// Player is the ship at the bottom of the screen. Only X changes.
type Player struct {
	X, Y int
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, PlayerWidth, PlayerHeight)
}

// Projectile is a shot travelling up. X is fixed at creation.
type Projectile struct {
	X, Y int
}

// Rect returns the projectile's bounding box.
func (p Projectile) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, ProjectileWidth, ProjectileHeight)
}

// Enemy descends from a grid column. Y accumulates sub-pixel motion and is
// truncated only when a rectangle is needed.
type Enemy struct {
	X int
	Y float64
}

// Rect returns the enemy's bounding box at its truncated position.
func (e Enemy) Rect() core.Rect {
	return core.NewRect(e.X, int(e.Y), EnemySize, EnemySize)
}

// Bottom returns the real-valued lower edge.
func (e Enemy) Bottom() float64 {
	return e.Y + EnemySize
}

// WorldState is everything the simulation advances. It is owned by a
// Simulation; renderers only read it.
type WorldState struct {
	Player      Player
	Enemies     []Enemy      // Spawn order
	Projectiles []Projectile // Creation order
	LastSpawn   time.Time    // Time of the last spawn batch
	Terminated  bool
}

// NewWorldState places the player centred at the bottom of a w x h screen.
func NewWorldState(w, h int, now time.Time) WorldState {
	return WorldState{
		Player: Player{
			X: w/2 - PlayerWidth/2,
			Y: h - PlayerHeight - PlayerBottomGap,
		},
		Enemies:     make([]Enemy, 0, 32),
		Projectiles: make([]Projectile, 0, 16),
		LastSpawn:   now,
	}
}

// Snapshot captures the world for determinism checks.
type Snapshot struct {
	Tick        uint64
	PlayerX     int
	Enemies     int
	Projectiles int
	Destroyed   int
	Terminated  bool
}
