// Package engine runs a game on a board: it owns the fixed-interval loop
// that samples the buttons, services the audio deadline, steps the game and
// presents the frame.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pico-arcade/internal/audio"
	"github.com/vovakirdan/pico-arcade/internal/core"
	"github.com/vovakirdan/pico-arcade/internal/hw"
	"github.com/vovakirdan/pico-arcade/internal/input"
	"github.com/vovakirdan/pico-arcade/internal/registry"
)

// ErrDisplayFault wraps any failure to present a frame. Display faults are
// fatal to the loop; there is no retry.
var ErrDisplayFault = errors.New("engine: display fault")

// DefaultPeriod is the target loop period, 20 ticks per second.
const DefaultPeriod = 50 * time.Millisecond

// Board bundles the hardware a loop runs against.
type Board struct {
	Pins    input.Pins
	PWM     hw.PWM
	Display hw.Display
	Clock   hw.Clock
}

// Options configures a Loop.
type Options struct {
	Period time.Duration // Target period; DefaultPeriod if zero
	Seed   int64         // RNG seed handed to the game
	Logger *log.Logger   // Discarded if nil
}

// Loop drives one game. It is single-threaded: every method must be called
// from the goroutine that owns the loop.
type Loop struct {
	game    registry.Game
	sampler *input.Sampler
	audio   *audio.Actuator
	display hw.Display
	clock   hw.Clock
	period  time.Duration
	logger  *log.Logger

	prev       core.Buttons
	ticks      uint64
	terminated bool
}

// New resets game against board and returns a loop ready to iterate.
func New(game registry.Game, board Board, opts Options) *Loop {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := board.Clock
	if clock == nil {
		clock = hw.SystemClock{}
	}
	pwm := board.PWM
	if pwm == nil {
		pwm = hw.SilentPWM{}
	}
	period := opts.Period
	if period <= 0 {
		period = DefaultPeriod
	}

	l := &Loop{
		game:    game,
		sampler: input.NewSampler(board.Pins),
		audio:   audio.NewActuator(pwm, clock, logger.WithPrefix("audio")),
		display: board.Display,
		clock:   clock,
		period:  period,
		logger:  logger,
	}

	cfg := core.DefaultConfig()
	cfg.TickPeriod = period
	cfg.Seed = opts.Seed
	cfg.Start = clock.Now()
	cfg.Beeper = l.audio
	game.Reset(cfg)

	// Treat switches already held at power-up as old presses.
	l.prev = l.sampler.Sample()

	logger.Info("game started", "game", game.ID(), "period", period)
	return l
}

// Iterate runs one loop iteration: sample input, service the audio
// deadline, step the game and render. After the game terminates, Iterate
// no longer samples input or steps; it only keeps the terminal frame shown.
func (l *Loop) Iterate() (core.StepResult, error) {
	if l.terminated {
		return core.StepResult{State: l.game.State()}, nil
	}

	now := l.clock.Now()
	held := l.sampler.Sample()
	frame := core.Frame{Now: now, Held: held, Prev: l.prev}
	l.prev = held

	l.audio.Tick(now)
	result := l.game.Step(frame)
	l.ticks++

	if err := l.game.Render(l.display); err != nil {
		l.logger.Error("display fault", "tick", l.ticks, "error", err)
		return result, fmt.Errorf("%w: %w", ErrDisplayFault, err)
	}

	if result.State.Terminated {
		l.terminated = true
		l.audio.Silence()
		l.logger.Info("game over", "game", l.game.ID(), "ticks", l.ticks)
	}
	return result, nil
}

// Run iterates at the target period until the game terminates, then waits
// inertly with the terminal frame on screen. Only ctx ends the wait. A tick
// that overruns its budget is not an error; the next one just starts late.
func (l *Loop) Run(ctx context.Context) error {
	for !l.terminated {
		start := l.clock.Now()

		if _, err := l.Iterate(); err != nil {
			return err
		}

		if remaining := l.period - l.clock.Now().Sub(start); remaining > 0 {
			if err := sleep(ctx, remaining); err != nil {
				return err
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
	}

	<-ctx.Done()
	return ctx.Err()
}

// Silence stops any beep in progress. Owners call it when they abandon the
// loop so a shared PWM is left quiet.
func (l *Loop) Silence() {
	l.audio.Silence()
}

// Terminated reports whether the game has reached its terminal state.
func (l *Loop) Terminated() bool {
	return l.terminated
}

// Ticks returns the number of completed game steps.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Period returns the target loop period.
func (l *Loop) Period() time.Duration {
	return l.period
}

// Game returns the game being run.
func (l *Loop) Game() registry.Game {
	return l.game
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
