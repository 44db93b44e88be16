package invaders

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/pico-arcade/internal/core"
)

// Source supplies uniform random numbers in [0, 1).
type Source interface {
	Float64() float64
}

// Simulation advances a WorldState one tick at a time.
type Simulation struct {
	world     WorldState
	rng       Source
	beeper    core.Beeper
	screenW   int
	screenH   int
	clockSet  bool // LastSpawn holds a real clock reading
	tick      uint64
	destroyed int
}

// NewSimulation creates a simulation for the given config. A nil rng is
// replaced by a math/rand generator seeded from cfg.Seed.
func NewSimulation(cfg core.RuntimeConfig, rng Source) *Simulation {
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	w, h := cfg.ScreenW, cfg.ScreenH
	if w <= 0 || h <= 0 {
		w, h = core.ScreenW, core.ScreenH
	}
	return &Simulation{
		world:    NewWorldState(w, h, cfg.Start),
		rng:      rng,
		beeper:   cfg.Beeper,
		screenW:  w,
		screenH:  h,
		clockSet: !cfg.Start.IsZero(),
	}
}

// World returns the current world. Callers must not modify it.
func (s *Simulation) World() WorldState {
	return s.world
}

// Terminated reports whether the game has reached its terminal state.
func (s *Simulation) Terminated() bool {
	return s.world.Terminated
}

// Step runs one tick. Phases run in a fixed order and each sees the result
// of the one before. Once terminated, Step does nothing.
func (s *Simulation) Step(in core.Frame) {
	if s.world.Terminated {
		return
	}
	if !s.clockSet {
		s.world.LastSpawn = in.Now
		s.clockSet = true
	}
	s.tick++

	s.movePlayer(in)
	s.fire(in)
	s.spawn(in.Now)
	s.advanceProjectiles()
	s.advanceEnemies()
	s.destroyed += s.resolveCollisions()
	s.world.Terminated = s.reachedBottom()
}

// movePlayer applies left and right independently, clamping to the screen.
func (s *Simulation) movePlayer(in core.Frame) {
	maxX := s.screenW - PlayerWidth
	if in.Pressed(core.ButtonLeft) {
		s.world.Player.X = core.Clamp(s.world.Player.X-PlayerStep, 0, maxX)
	}
	if in.Pressed(core.ButtonRight) {
		s.world.Player.X = core.Clamp(s.world.Player.X+PlayerStep, 0, maxX)
	}
}

// fire spawns one projectile per press of the fire button.
func (s *Simulation) fire(in core.Frame) {
	if !in.Rising(core.ButtonFire) {
		return
	}
	p := s.world.Player
	s.world.Projectiles = append(s.world.Projectiles, Projectile{
		X: p.X + PlayerWidth/2 - ProjectileWidth/2,
		Y: p.Y,
	})
	if s.beeper != nil {
		s.beeper.StartBeep(FireToneHz, FireToneDuration)
	}
}

// spawn drops a batch once the interval has strictly elapsed. Each column
// is an independent coin flip; the timer resets even for an empty batch.
func (s *Simulation) spawn(now time.Time) {
	if now.Sub(s.world.LastSpawn) <= SpawnInterval {
		return
	}
	for x := 0; x < s.screenW; x += EnemySize + EnemyColumnGap {
		if s.rng.Float64() < SpawnChance {
			s.world.Enemies = append(s.world.Enemies, Enemy{X: x, Y: 0})
		}
	}
	s.world.LastSpawn = now
}

// advanceProjectiles moves shots up and drops those at or past the top.
func (s *Simulation) advanceProjectiles() {
	kept := s.world.Projectiles[:0]
	for _, p := range s.world.Projectiles {
		p.Y -= ProjectileSpeed
		if p.Y > 0 {
			kept = append(kept, p)
		}
	}
	s.world.Projectiles = kept
}

func (s *Simulation) advanceEnemies() {
	for i := range s.world.Enemies {
		s.world.Enemies[i].Y += EnemySpeed
	}
}

// resolveCollisions pairs each enemy with the first not-yet-used projectile
// that overlaps it, in creation order. Hits are marked first and both
// collections rebuilt afterwards, so a projectile destroys at most one enemy
// and an enemy absorbs at most one projectile. Returns the enemies destroyed.
func (s *Simulation) resolveCollisions() int {
	if len(s.world.Enemies) == 0 || len(s.world.Projectiles) == 0 {
		return 0
	}

	used := make([]bool, len(s.world.Projectiles))
	hit := make([]bool, len(s.world.Enemies))
	destroyed := 0

	for i, e := range s.world.Enemies {
		er := e.Rect()
		for j, p := range s.world.Projectiles {
			if used[j] || !p.Rect().Intersects(er) {
				continue
			}
			used[j] = true
			hit[i] = true
			destroyed++
			break
		}
	}

	enemies := s.world.Enemies[:0]
	for i, e := range s.world.Enemies {
		if !hit[i] {
			enemies = append(enemies, e)
		}
	}
	s.world.Enemies = enemies

	projectiles := s.world.Projectiles[:0]
	for j, p := range s.world.Projectiles {
		if !used[j] {
			projectiles = append(projectiles, p)
		}
	}
	s.world.Projectiles = projectiles

	return destroyed
}

// reachedBottom reports whether any enemy's lower edge touches the screen
// bottom.
func (s *Simulation) reachedBottom() bool {
	limit := float64(s.screenH)
	for _, e := range s.world.Enemies {
		if e.Bottom() >= limit {
			return true
		}
	}
	return false
}

// Snapshot returns counters for determinism verification.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Tick:        s.tick,
		PlayerX:     s.world.Player.X,
		Enemies:     len(s.world.Enemies),
		Projectiles: len(s.world.Projectiles),
		Destroyed:   s.destroyed,
		Terminated:  s.world.Terminated,
	}
}
