package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pico-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick games from a menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Quitting a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q/Esc        - Quit

Examples:
  picoarcade menu
  picoarcade menu --log-file arcade.log`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	// Menu loop
	for ctx.Err() == nil {
		gameID, err := tui.RunMenu()
		if err != nil {
			return err
		}
		if gameID == "" {
			return nil
		}

		logger.Info("menu selection", "game", gameID)
		if err := playGame(ctx, gameID, cfg, pwm, logger); err != nil {
			return err
		}
	}
	return nil
}
