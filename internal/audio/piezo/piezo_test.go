package piezo

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/pico-arcade/internal/audio"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func TestPiezoSilentAtZeroDuty(t *testing.T) {
	p := newPiezo(8000, 0.5)
	if err := p.SetFrequency(1000); err != nil {
		t.Fatalf("SetFrequency() failed: %v", err)
	}

	samples := make([][2]float64, 64)
	n, ok := p.Stream(samples)
	if !ok || n != 64 {
		t.Fatalf("Stream() = (%d, %v), expected (64, true)", n, ok)
	}
	for i, s := range samples {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d = %v, expected silence", i, s)
		}
	}
}

func TestPiezoSquareWave(t *testing.T) {
	// 1 kHz at 8 kHz sampling: 4 samples high, 4 low per period.
	p := newPiezo(8000, 0.5)
	if err := p.SetFrequency(1000); err != nil {
		t.Fatalf("SetFrequency() failed: %v", err)
	}
	if err := p.SetDutyCycle(audio.BeepDuty); err != nil {
		t.Fatalf("SetDutyCycle() failed: %v", err)
	}

	samples := make([][2]float64, 16)
	p.Stream(samples)

	high := 0
	for i, s := range samples {
		if s[0] != s[1] {
			t.Fatalf("sample %d channels differ: %v", i, s)
		}
		if s[0] != 0.5 && s[0] != -0.5 {
			t.Fatalf("sample %d = %v, expected +-0.5", i, s[0])
		}
		if s[0] > 0 {
			high++
		}
	}
	if high != 8 {
		t.Errorf("high samples = %d, expected 8 at 50%% duty", high)
	}
	if samples[0][0] <= 0 || samples[4][0] >= 0 {
		t.Errorf("expected period to start high and flip at sample 4, got %v / %v", samples[0][0], samples[4][0])
	}
}

func TestPiezoRejectsRetuneWhileSounding(t *testing.T) {
	p := newPiezo(8000, 1)
	if err := p.SetFrequency(1800); err != nil {
		t.Fatalf("SetFrequency() failed: %v", err)
	}
	if err := p.SetDutyCycle(audio.BeepDuty); err != nil {
		t.Fatalf("SetDutyCycle() failed: %v", err)
	}

	err := p.SetFrequency(900)
	if !errors.Is(err, ErrRetuneWhileSounding) {
		t.Errorf("SetFrequency() while sounding = %v, expected ErrRetuneWhileSounding", err)
	}
}

func TestPiezoValidation(t *testing.T) {
	p := newPiezo(8000, 2)

	if p.volume != 1 {
		t.Errorf("volume = %v, expected clamp to 1", p.volume)
	}
	if err := p.SetFrequency(0); err == nil {
		t.Error("SetFrequency(0) should fail")
	}
	if err := p.SetDutyCycle(1.5); err == nil {
		t.Error("SetDutyCycle(1.5) should fail")
	}
	if err := p.SetDutyCycle(-0.1); err == nil {
		t.Error("SetDutyCycle(-0.1) should fail")
	}
	if p.Err() != nil {
		t.Errorf("Err() = %v, expected nil", p.Err())
	}
}

func TestActuatorOverPiezo(t *testing.T) {
	p := newPiezo(8000, 0.5)
	a := audio.NewActuator(p, &fakeClock{now: time.Unix(0, 0)}, nil)

	a.StartBeep(1800, 0)
	a.StartBeep(1200, 0)

	if p.freq != 1200 {
		t.Errorf("retune through the actuator failed, frequency = %v", p.freq)
	}
	if a.Sounding() != true {
		t.Error("beep should be pending until the next Tick")
	}
}
