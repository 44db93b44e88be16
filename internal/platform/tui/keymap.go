package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pico-arcade/internal/config"
	"github.com/vovakirdan/pico-arcade/internal/core"
)

// KeyMap defines the emulator key bindings.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Fire  key.Binding
	Start key.Binding
	Shot  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Start, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire, k.Start},
		{k.Shot, k.Help, k.Quit},
	}
}

// NewKeyMap builds bindings from configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Left:  binding(cfg.Left, "left"),
		Right: binding(cfg.Right, "right"),
		Fire:  binding(cfg.Fire, "fire"),
		Start: binding(cfg.Start, "start"),
		Shot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: binding(cfg.Quit, "quit"),
	}
}

// binding creates a key binding. Bubble Tea reports the space bar as " ",
// so "space" in the config binds both spellings.
func binding(names []string, desc string) key.Binding {
	keys := make([]string, 0, len(names))
	for _, n := range names {
		if n == "space" {
			keys = append(keys, " ")
		}
		keys = append(keys, n)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// Button maps a key message to the board button it presses.
func (k KeyMap) Button(msg tea.KeyMsg) (core.Button, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.ButtonLeft, true
	case key.Matches(msg, k.Right):
		return core.ButtonRight, true
	case key.Matches(msg, k.Fire):
		return core.ButtonFire, true
	case key.Matches(msg, k.Start):
		return core.ButtonStart, true
	}
	return 0, false
}
