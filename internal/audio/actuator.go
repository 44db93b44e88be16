// Package audio drives the piezo: a deadline-polled single beep on top of a
// PWM output.
package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pico-arcade/internal/hw"
)

// BeepDuty is the duty cycle used while a tone sounds (32768/65536).
const BeepDuty = 0.5

// Actuator plays one bounded tone at a time without blocking the loop.
// The tone is stopped by Tick once its deadline passes, so Tick must be
// called every loop iteration whether or not a beep is pending.
type Actuator struct {
	pwm    hw.PWM
	clock  hw.Clock
	logger *log.Logger

	deadline time.Time
	pending  bool
}

// NewActuator creates an actuator over pwm. A nil logger discards output.
func NewActuator(pwm hw.PWM, clock hw.Clock, logger *log.Logger) *Actuator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Actuator{
		pwm:    pwm,
		clock:  clock,
		logger: logger,
	}
}

// StartBeep starts a square wave at hz for d. A beep already sounding is
// cut over to the new one; nothing is queued. PWM failures are not
// returned: the actuator falls back to silence and logs a warning.
func (a *Actuator) StartBeep(hz int, d time.Duration) {
	if err := a.configure(hz); err != nil {
		a.pending = false
		a.deadline = time.Time{}
		if zeroErr := a.pwm.SetDutyCycle(0); zeroErr != nil {
			a.logger.Debug("could not zero duty cycle after fault", "error", zeroErr)
		}
		a.logger.Warn("beep failed, staying silent", "hz", hz, "error", err)
		return
	}

	a.deadline = a.clock.Now().Add(d)
	a.pending = true
}

// configure zeroes the duty cycle before touching the frequency, which is
// the only order the PWM guarantees to be safe.
func (a *Actuator) configure(hz int) error {
	if err := a.pwm.SetDutyCycle(0); err != nil {
		return fmt.Errorf("audio: silence before retune: %w", err)
	}
	if err := a.pwm.SetFrequency(hz); err != nil {
		return fmt.Errorf("audio: set frequency %d: %w", hz, err)
	}
	if err := a.pwm.SetDutyCycle(BeepDuty); err != nil {
		return fmt.Errorf("audio: set duty cycle: %w", err)
	}
	return nil
}

// Tick stops the pending beep once now reaches its deadline.
func (a *Actuator) Tick(now time.Time) {
	if !a.pending || now.Before(a.deadline) {
		return
	}
	a.stop()
}

// Silence stops any pending beep immediately.
func (a *Actuator) Silence() {
	a.stop()
}

// Sounding reports whether a beep deadline is pending.
func (a *Actuator) Sounding() bool {
	return a.pending
}

// Deadline returns the pending stop time, zero when silent.
func (a *Actuator) Deadline() time.Time {
	return a.deadline
}

func (a *Actuator) stop() {
	if err := a.pwm.SetDutyCycle(0); err != nil {
		a.logger.Warn("could not silence piezo", "error", err)
	}
	a.pending = false
	a.deadline = time.Time{}
}
