// Package tui emulates the board in a terminal with Bubble Tea: keys drive
// virtual button pins, the panel is drawn with half-block glyphs and the
// piezo plays through the host speaker.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a loop iteration.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one period.
func tickCmd(period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
