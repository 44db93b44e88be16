package invaders

import "time"

// Entity sizes in pixels.
const (
	PlayerWidth      = 8
	PlayerHeight     = 4
	PlayerBottomGap  = 2 // Pixels between the player and the bottom edge
	EnemySize        = 6
	EnemyColumnGap   = 4 // Horizontal gap between spawn columns
	ProjectileWidth  = 2
	ProjectileHeight = 4
)

// Per-tick motion. Enemies descend at 1/8 of the projectile speed and keep
// their fractional position between ticks.
const (
	PlayerStep      = 2
	ProjectileSpeed = 2
	EnemySpeed      = 0.25
)

// Spawning.
const (
	SpawnInterval = 6 * time.Second
	SpawnChance   = 0.5
)

// Fire tone.
const (
	FireToneHz       = 1800
	FireToneDuration = 50 * time.Millisecond
)

// Terminal message placement.
const (
	GameOverText = "GAME OVER"
	GameOverX    = 30
	GameOverY    = 30
)
