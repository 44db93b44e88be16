// picoarcade runs monochrome 128x64 handheld games in a terminal board
// emulator.
//
// Usage:
//
//	picoarcade list                   - List available games
//	picoarcade play <game>            - Play a game in the board emulator
//	picoarcade menu                   - Pick games from a menu
//	picoarcade simulate <game>        - Run a game headless and print the last frame
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.picoarcade, ./configs, embedded)
//	--seed <value>      - RNG seed for reproducible gameplay
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pico-arcade/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/pico-arcade/internal/games/invaders"
	_ "github.com/vovakirdan/pico-arcade/internal/games/reflex"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "picoarcade",
	Short: "Pico Arcade - handheld games on an emulated 128x64 board",
	Long: `Pico Arcade runs games written for a small handheld board: a 128x64
monochrome panel, four buttons and a piezo buzzer. The board is emulated in
the terminal.

Available commands:
  list      - Show all available games
  play      - Play a game in the board emulator
  menu      - Interactive game picker
  simulate  - Run a game headless with scripted buttons

Examples:
  picoarcade list
  picoarcade play invaders
  picoarcade play reflex --seed 42
  picoarcade menu
  picoarcade simulate invaders --ticks 400 --fire-every 10`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger creates the command logger. Logs go to --log-file when set and
// to fallback otherwise. The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "picoarcade",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig loads the configuration and logs where it came from.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}
