// Package config provides YAML-based configuration loading for the board
// emulator: loop periods, key bindings, audio and panel settings.
// Game rules are fixed and not configurable.
package config

import (
	"errors"
	"fmt"
	"time"
)

// DefaultTick is the loop period used for games without an entry.
const DefaultTick = 50 * time.Millisecond

// Config contains all emulator configuration.
type Config struct {
	Games   map[string]GameConfig `yaml:"games"`
	Keys    KeysConfig            `yaml:"keys"`
	Input   InputConfig           `yaml:"input"`
	Audio   AudioConfig           `yaml:"audio"`
	Display DisplayConfig         `yaml:"display"`
}

// GameConfig holds per-game loop settings.
type GameConfig struct {
	Tick time.Duration `yaml:"tick"` // Target loop period
}

// KeysConfig maps board buttons to terminal keys.
type KeysConfig struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Fire  []string `yaml:"fire"`
	Start []string `yaml:"start"`
	Quit  []string `yaml:"quit"`
}

// InputConfig defines key-hold emulation.
type InputConfig struct {
	Hold time.Duration `yaml:"hold"` // How long a key reads as held after a press
}

// AudioConfig defines the piezo emulation.
type AudioConfig struct {
	Enabled    bool          `yaml:"enabled"`
	SampleRate int           `yaml:"sample_rate"`
	Buffer     time.Duration `yaml:"buffer"`
	Volume     float64       `yaml:"volume"` // 0.0 to 1.0
}

// DisplayConfig defines how the panel is drawn in the terminal.
type DisplayConfig struct {
	Scale int `yaml:"scale"` // Terminal columns per pixel, 1 or 2
}

// TickFor returns the loop period for a game.
func (c Config) TickFor(gameID string) time.Duration {
	if g, ok := c.Games[gameID]; ok && g.Tick > 0 {
		return g.Tick
	}
	return DefaultTick
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	for id, g := range c.Games {
		if g.Tick < 0 {
			return fmt.Errorf("games.%s.tick: negative period %v", id, g.Tick)
		}
	}
	if c.Input.Hold <= 0 {
		return errors.New("input.hold: must be positive")
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate: invalid rate %d", c.Audio.SampleRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume: %v outside [0, 1]", c.Audio.Volume)
	}
	if c.Display.Scale < 1 || c.Display.Scale > 2 {
		return fmt.Errorf("display.scale: %d not in {1, 2}", c.Display.Scale)
	}
	for name, keys := range map[string][]string{
		"left":  c.Keys.Left,
		"right": c.Keys.Right,
		"fire":  c.Keys.Fire,
		"start": c.Keys.Start,
		"quit":  c.Keys.Quit,
	} {
		if len(keys) == 0 {
			return fmt.Errorf("keys.%s: no keys bound", name)
		}
	}
	return nil
}
