package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pico-arcade/internal/audio/piezo"
	"github.com/vovakirdan/pico-arcade/internal/config"
	"github.com/vovakirdan/pico-arcade/internal/engine"
	"github.com/vovakirdan/pico-arcade/internal/hw"
	"github.com/vovakirdan/pico-arcade/internal/registry"
)

// Model is the Bubble Tea model for the emulated board.
type Model struct {
	loop     *engine.Loop
	panel    *Panel
	held     *HeldKeys
	clock    hw.Clock
	keys     KeyMap
	help     help.Model
	scale    int
	logger   *log.Logger
	status   string
	err      error
	quitting bool
}

// NewModel creates a model around a loop already wired to panel and held.
func NewModel(loop *engine.Loop, panel *Panel, held *HeldKeys, clock hw.Clock, cfg config.Config, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		loop:   loop,
		panel:  panel,
		held:   held,
		clock:  clock,
		keys:   NewKeyMap(cfg.Keys),
		help:   help.New(),
		scale:  cfg.Display.Scale,
		logger: logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.loop.Period())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Shot):
		m.status = m.saveScreenshot()
		return m, nil
	}

	if b, ok := m.keys.Button(msg); ok {
		m.held.Press(b, m.clock.Now())
	}
	return m, nil
}

// handleTick runs one loop iteration. Ticking stops once the game is over;
// the terminal frame stays up until the player quits.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res, err := m.loop.Iterate()
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	if res.State.Terminated {
		return m, nil
	}
	return m, tickCmd(m.loop.Period())
}

// saveScreenshot writes the presented frame to a text file and returns a
// status line.
func (m Model) saveScreenshot() string {
	dir := filepath.Join(os.Getenv("HOME"), ".picoarcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.loop.Game().ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.panel.Presented()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

// Err returns the fault that stopped the loop, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the board.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.loop.Game().Title()))
	sb.WriteRune('\n')
	sb.WriteString(RenderPanel(m.panel, m.scale))
	sb.WriteRune('\n')

	switch {
	case m.err != nil:
		sb.WriteString(errorStyle.Render(m.err.Error()))
	case m.status != "":
		sb.WriteString(statusStyle.Render(m.status))
	default:
		sb.WriteString(statusStyle.Render(m.loop.Game().State().Phase))
	}
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Options configures an emulator session.
type Options struct {
	Game   registry.Game
	Config config.Config
	PWM    hw.PWM // Buzzer output shared across sessions; silent if nil
	Seed   int64  // 0 means seed from the clock
	Logger *log.Logger
}

// OpenSpeaker opens the host piezo once for the whole process. It falls
// back to a silent PWM when audio is disabled or the sound card cannot be
// initialised. The returned func releases the speaker.
func OpenSpeaker(cfg config.AudioConfig, logger *log.Logger) (hw.PWM, func()) {
	if !cfg.Enabled {
		return hw.SilentPWM{}, func() {}
	}

	p, err := piezo.Open(piezo.Config{
		SampleRate: cfg.SampleRate,
		Buffer:     cfg.Buffer,
		Volume:     cfg.Volume,
	})
	if err != nil {
		if logger != nil {
			logger.Warn("speaker unavailable, running silent", "error", err)
		}
		return hw.SilentPWM{}, func() {}
	}
	return p, p.Close
}

// newSession wires a game to a fresh panel and virtual buttons. The
// returned func silences the buzzer when the session ends.
func newSession(opts Options, clock hw.Clock) (Model, func()) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Config

	seed := opts.Seed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}

	panel := NewPanel()
	held := NewHeldKeys(clock, cfg.Input.Hold)
	loop := engine.New(opts.Game, engine.Board{
		Pins:    held.Pins(),
		PWM:     opts.PWM,
		Display: panel,
		Clock:   clock,
	}, engine.Options{
		Period: cfg.TickFor(opts.Game.ID()),
		Seed:   seed,
		Logger: logger,
	})

	return NewModel(loop, panel, held, clock, cfg, logger), loop.Silence
}

// Run emulates the board in the terminal until the player quits or the
// display faults.
func Run(ctx context.Context, opts Options) error {
	model, end := newSession(opts, hw.SystemClock{})
	defer end()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
