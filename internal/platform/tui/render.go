package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pico-arcade/internal/core"
)

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Foreground(lipgloss.Color("14"))

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// halfBlocks indexes glyphs by top pixel (bit 1) and bottom pixel (bit 0).
var halfBlocks = [4]rune{' ', '▄', '▀', '█'}

// Panel is the emulated display. Games draw into the back buffer and Show
// copies it to the front buffer the view reads.
type Panel struct {
	*core.Framebuffer

	mu    sync.Mutex
	front *core.Framebuffer
	shows int
}

// NewPanel creates a blank panel of the board's size.
func NewPanel() *Panel {
	return &Panel{
		Framebuffer: core.NewFramebuffer(core.ScreenW, core.ScreenH),
		front:       core.NewFramebuffer(core.ScreenW, core.ScreenH),
	}
}

// Show presents the back buffer.
func (p *Panel) Show() error {
	p.mu.Lock()
	p.front.CopyFrom(p.Framebuffer.Snapshot())
	p.shows++
	p.mu.Unlock()
	return nil
}

// Shows returns the number of presented frames.
func (p *Panel) Shows() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.shows
}

// Presented returns the last presented frame as '#'/'.' text.
func (p *Panel) Presented() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.front.String()
}

// Render draws the presented frame with two pixel rows per terminal line.
// Each pixel takes scale columns.
func (p *Panel) Render(scale int) string {
	if scale < 1 {
		scale = 1
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	w, h := p.front.Width(), p.front.Height()
	var sb strings.Builder
	sb.Grow((w*scale*3 + 1) * (h + 1) / 2)

	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range w {
			idx := 0
			if p.front.Get(x, y) {
				idx |= 2
			}
			if y+1 < h && p.front.Get(x, y+1) {
				idx |= 1
			}
			for range scale {
				sb.WriteRune(halfBlocks[idx])
			}
		}
	}
	return sb.String()
}

// RenderPanel renders the presented frame inside the panel border.
func RenderPanel(p *Panel, scale int) string {
	return panelStyle.Render(p.Render(scale))
}
