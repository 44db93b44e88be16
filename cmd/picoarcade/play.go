package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pico-arcade/internal/config"
	"github.com/vovakirdan/pico-arcade/internal/core"
	"github.com/vovakirdan/pico-arcade/internal/hw"
	"github.com/vovakirdan/pico-arcade/internal/platform/tui"
	"github.com/vovakirdan/pico-arcade/internal/registry"
)

// Terminal lines needed around the panel: title, border, status and help.
const chromeLines = 5

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start the specified game on the emulated board.

Controls (default bindings, see the config file to change them):
  Left/A     - Left button
  Right/D    - Right button
  Space/Z    - Fire button
  Enter/S    - Start button
  Ctrl+S     - Save a screenshot to ~/.picoarcade/screenshots
  ?          - Toggle full help
  Q/Esc      - Quit

Terminals only report key presses, so a button stays held for a window
after its last press or key repeat (input.hold in the config, 600ms by
default). The window must outlast your terminal's key repeat delay or a
held key fires twice; taps closer together than the window count as one
press.

Examples:
  picoarcade play invaders
  picoarcade play reflex --seed 7
  picoarcade play invaders --config ./my-picoarcade.yaml --log-file play.log`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'picoarcade list' to see available games", gameID)
	}

	// The alternate screen owns stdout; log only to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	if err := checkTerminal(cfg.Display.Scale); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pwm, closeSpeaker := tui.OpenSpeaker(cfg.Audio, logger)
	defer closeSpeaker()

	return playGame(ctx, gameID, cfg, pwm, logger)
}

// playGame runs one game in the emulator until the player quits. The
// speaker is opened once per process and shared through pwm.
func playGame(ctx context.Context, gameID string, cfg config.Config, pwm hw.PWM, logger *log.Logger) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}

	err = tui.Run(ctx, tui.Options{
		Game:   game,
		Config: cfg,
		PWM:    pwm,
		Seed:   flagSeed,
		Logger: logger,
	})
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		logger.Error("game stopped", "game", gameID, "error", err)
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// checkTerminal verifies stdout is a terminal large enough for the panel.
func checkTerminal(scale int) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("play needs an interactive terminal, try 'picoarcade simulate'")
	}

	w, h, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("failed to read terminal size: %w", err)
	}

	needW := core.ScreenW*scale + 2
	needH := core.ScreenH/2 + chromeLines
	if w < needW || h < needH {
		return fmt.Errorf("terminal is %dx%d, the board needs at least %dx%d", w, h, needW, needH)
	}
	return nil
}
