// Package piezo stands in for the board's PWM buzzer on a host machine: it
// renders the pulse train as a square wave on the sound card.
package piezo

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// ErrRetuneWhileSounding mirrors the board PWM, which only accepts a new
// frequency while the duty cycle is zero.
var ErrRetuneWhileSounding = errors.New("piezo: frequency change with non-zero duty cycle")

// Config configures the sound-card piezo.
type Config struct {
	SampleRate int           // Output sample rate in Hz
	Buffer     time.Duration // Speaker buffer length
	Volume     float64       // Peak amplitude in [0, 1]
}

// Piezo is an hw.PWM that renders the pulse train as audio samples. It is
// a beep.Streamer played on the speaker; the loop adjusts it through the
// PWM methods from another goroutine, hence the mutex.
type Piezo struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	freq   float64
	duty   float64
	phase  float64
}

// Open initialises the speaker and starts streaming a silent piezo. The
// speaker can only be initialised once per process, so callers open one
// Piezo and share it across sessions.
func Open(cfg Config) (*Piezo, error) {
	p := newPiezo(beep.SampleRate(cfg.SampleRate), cfg.Volume)

	if err := speaker.Init(p.rate, p.rate.N(cfg.Buffer)); err != nil {
		return nil, fmt.Errorf("piezo: init speaker: %w", err)
	}
	speaker.Play(p)
	return p, nil
}

func newPiezo(rate beep.SampleRate, volume float64) *Piezo {
	return &Piezo{
		rate:   rate,
		volume: math.Max(0, math.Min(1, volume)),
	}
}

// SetFrequency sets the pulse frequency. It fails while the duty cycle is
// non-zero, like the hardware it stands in for.
func (p *Piezo) SetFrequency(hz int) error {
	if hz <= 0 {
		return fmt.Errorf("piezo: invalid frequency %d", hz)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.duty != 0 {
		return ErrRetuneWhileSounding
	}
	p.freq = float64(hz)
	p.phase = 0
	return nil
}

// SetDutyCycle sets the high fraction of each period; 0 is silent.
func (p *Piezo) SetDutyCycle(fraction float64) error {
	if fraction < 0 || fraction > 1 || math.IsNaN(fraction) {
		return fmt.Errorf("piezo: invalid duty cycle %v", fraction)
	}

	p.mu.Lock()
	p.duty = fraction
	p.mu.Unlock()
	return nil
}

// Stream fills samples with the current pulse train. It never ends.
func (p *Piezo) Stream(samples [][2]float64) (n int, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.duty == 0 || p.freq == 0 {
		for i := range samples {
			samples[i] = [2]float64{}
		}
		return len(samples), true
	}

	step := p.freq / float64(p.rate)
	for i := range samples {
		val := -p.volume
		if p.phase < p.duty {
			val = p.volume
		}
		samples[i][0] = val
		samples[i][1] = val

		p.phase += step
		p.phase -= math.Floor(p.phase) // Keep in [0, 1)
	}
	return len(samples), true
}

// Err always returns nil.
func (p *Piezo) Err() error { return nil }

// Close stops playback and releases the audio device. The speaker cannot
// be reopened afterwards.
func (p *Piezo) Close() {
	speaker.Clear()
	speaker.Close()
}
