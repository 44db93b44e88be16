package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pico-arcade/internal/core"
	"github.com/vovakirdan/pico-arcade/internal/engine"
	"github.com/vovakirdan/pico-arcade/internal/hw"
	"github.com/vovakirdan/pico-arcade/internal/input"
	"github.com/vovakirdan/pico-arcade/internal/registry"
)

var (
	flagTicks      int
	flagFireEvery  int
	flagStartEvery int
	flagHold       string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <game>",
	Short: "Run a game headless with scripted buttons",
	Long: `Runs the game loop without a terminal UI on a simulated clock that
advances one loop period per tick, then prints the last presented frame
as text ('#' lit, '.' dark).

Buttons are scripted: fire and start are pressed for one tick every N
ticks, and --hold keeps left or right held for the whole run.

Examples:
  picoarcade simulate invaders --ticks 2400 --fire-every 8 --seed 1
  picoarcade simulate invaders --ticks 200 --hold left
  picoarcade simulate reflex --ticks 500 --start-every 100`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 200, "Number of loop iterations")
	simulateCmd.Flags().IntVar(&flagFireEvery, "fire-every", 0, "Press fire every N ticks (0 = never)")
	simulateCmd.Flags().IntVar(&flagStartEvery, "start-every", 0, "Press start every N ticks (0 = never)")
	simulateCmd.Flags().StringVar(&flagHold, "hold", "", "Hold a direction for the whole run: left or right")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'picoarcade list' to see available games", gameID)
	}
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}
	if flagHold != "" && flagHold != "left" && flagHold != "right" {
		return fmt.Errorf("--hold must be left or right, got %q", flagHold)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}

	res, err := simulate(game, simulation{
		Period:     cfg.TickFor(gameID),
		Seed:       flagSeed,
		Ticks:      flagTicks,
		FireEvery:  flagFireEvery,
		StartEvery: flagStartEvery,
		Hold:       flagHold,
	}, logger)
	if err != nil {
		return err
	}

	return printResult(cmd.OutOrStdout(), gameID, res)
}

// simulation describes a scripted headless run.
type simulation struct {
	Period     time.Duration
	Seed       int64
	Ticks      int
	FireEvery  int
	StartEvery int
	Hold       string // "left", "right" or empty
}

// simResult is what a headless run leaves behind.
type simResult struct {
	Ticks   uint64
	Elapsed time.Duration
	State   core.GameState
	Frame   *core.Framebuffer
}

// stepClock is a clock that only moves when told to.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

// script drives the button pins from the tick counter.
type script struct {
	sim  simulation
	tick int
}

func (s *script) pressedEvery(n int) hw.Pin {
	return hw.PinFunc(func() bool {
		return !(n > 0 && s.tick >= 0 && s.tick%n == 0)
	})
}

func (s *script) held(dir string) hw.Pin {
	return hw.PinFunc(func() bool {
		return s.sim.Hold != dir
	})
}

func (s *script) pins() input.Pins {
	return input.Pins{
		Left:  s.held("left"),
		Right: s.held("right"),
		Fire:  s.pressedEvery(s.sim.FireEvery),
		Start: s.pressedEvery(s.sim.StartEvery),
	}
}

// tonePWM logs the piezo commands a headless run would have sent.
type tonePWM struct {
	logger *log.Logger
}

func (p tonePWM) SetFrequency(hz int) error {
	p.logger.Debug("pwm frequency", "hz", hz)
	return nil
}

func (p tonePWM) SetDutyCycle(fraction float64) error {
	p.logger.Debug("pwm duty", "fraction", fraction)
	return nil
}

// simulate steps the game on a simulated clock. It stops early once the
// game reaches its terminal state.
func simulate(game registry.Game, sim simulation, logger *log.Logger) (simResult, error) {
	clock := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	start := clock.now
	sc := &script{sim: sim, tick: -1}
	frame := core.NewFramebuffer(core.ScreenW, core.ScreenH)

	loop := engine.New(game, engine.Board{
		Pins:    sc.pins(),
		PWM:     tonePWM{logger: logger},
		Display: frame,
		Clock:   clock,
	}, engine.Options{
		Period: sim.Period,
		Seed:   sim.Seed,
		Logger: logger,
	})

	var state core.GameState
	for sc.tick = 0; sc.tick < sim.Ticks; sc.tick++ {
		res, err := loop.Iterate()
		if err != nil {
			return simResult{}, err
		}
		state = res.State
		if state.Terminated {
			break
		}
		clock.now = clock.now.Add(loop.Period())
	}

	return simResult{
		Ticks:   loop.Ticks(),
		Elapsed: clock.now.Sub(start),
		State:   state,
		Frame:   frame,
	}, nil
}

func printResult(w io.Writer, gameID string, res simResult) error {
	if _, err := fmt.Fprintln(w, res.Frame.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %d ticks, %v simulated, phase %s, terminated %t\n",
		gameID, res.Ticks, res.Elapsed, res.State.Phase, res.State.Terminated)
	return err
}
