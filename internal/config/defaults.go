package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/picoarcade.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/picoarcade.yaml.
func Default() Config {
	return Config{
		Games: map[string]GameConfig{
			"invaders": {Tick: 50 * time.Millisecond},
			"reflex":   {Tick: 10 * time.Millisecond},
		},
		Keys: KeysConfig{
			Left:  []string{"left", "a"},
			Right: []string{"right", "d"},
			Fire:  []string{"space", "z"},
			Start: []string{"enter", "s"},
			Quit:  []string{"q", "esc", "ctrl+c"},
		},
		Input: InputConfig{
			Hold: 600 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Buffer:     50 * time.Millisecond,
			Volume:     0.3,
		},
		Display: DisplayConfig{
			Scale: 1,
		},
	}
}
