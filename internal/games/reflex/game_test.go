package reflex

import (
	"testing"
	"time"

	"github.com/vovakirdan/pico-arcade/internal/core"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func newTestGame(r float64) *Game {
	g := New()
	g.Reset(core.DefaultConfig())
	g.rng = fixedSource(r)
	return g
}

func tap(b core.Button) core.Buttons {
	var held core.Buttons
	held[b] = true
	return held
}

func TestFullRound(t *testing.T) {
	g := newTestGame(0) // flash after exactly DelayMin

	g.Step(core.Frame{Now: t0, Held: tap(core.ButtonStart)})
	if g.Phase() != PhaseWaiting {
		t.Fatalf("phase = %s, expected waiting after START", g.Phase())
	}

	g.Step(core.Frame{Now: t0.Add(DelayMin - time.Millisecond)})
	if g.Phase() != PhaseWaiting {
		t.Fatalf("phase = %s, expected to keep waiting before the delay", g.Phase())
	}

	flash := t0.Add(DelayMin)
	g.Step(core.Frame{Now: flash})
	if g.Phase() != PhaseFlashed {
		t.Fatalf("phase = %s, expected flashed at the delay", g.Phase())
	}

	g.Step(core.Frame{Now: flash.Add(237*time.Millisecond + 600*time.Microsecond), Held: tap(core.ButtonFire)})
	if g.Phase() != PhaseResult {
		t.Fatalf("phase = %s, expected result after FIRE", g.Phase())
	}
	if g.ResultMS() != 237 {
		t.Errorf("result = %d ms, expected 237 (truncated)", g.ResultMS())
	}

	g.Step(core.Frame{Now: flash.Add(time.Second), Held: tap(core.ButtonStart)})
	if g.Phase() != PhaseWaiting {
		t.Errorf("phase = %s, expected START to re-arm from the result screen", g.Phase())
	}
}

func TestDelayBounds(t *testing.T) {
	for _, r := range []float64{0, 0.5, 0.999} {
		g := newTestGame(r)
		g.Step(core.Frame{Now: t0, Held: tap(core.ButtonStart)})

		delay := g.flashAt.Sub(t0)
		if delay < DelayMin || delay >= DelayMax {
			t.Errorf("r=%v: delay = %v, expected within [%v, %v)", r, delay, DelayMin, DelayMax)
		}
	}
}

func TestEarlyPressAborts(t *testing.T) {
	g := newTestGame(0.5)

	g.Step(core.Frame{Now: t0, Held: tap(core.ButtonStart)})
	g.Step(core.Frame{Now: t0.Add(500 * time.Millisecond), Held: tap(core.ButtonFire)})

	if g.Phase() != PhaseIntro {
		t.Fatalf("phase = %s, expected intro after an early press", g.Phase())
	}
	if !g.early {
		t.Error("early press should be remembered for the intro screen")
	}

	g.Step(core.Frame{Now: t0.Add(time.Second), Held: tap(core.ButtonStart)})
	if g.Phase() != PhaseWaiting || g.early {
		t.Error("START should re-arm and clear the early flag")
	}
}

func TestHeldFireDoesNotStopTimer(t *testing.T) {
	g := newTestGame(0)
	fire := tap(core.ButtonFire)

	g.Step(core.Frame{Now: t0, Held: tap(core.ButtonStart)})
	g.phase = PhaseFlashed
	g.flashedAt = t0

	// Fire held since before the flash is not a new press.
	g.Step(core.Frame{Now: t0.Add(100 * time.Millisecond), Held: fire, Prev: fire})
	if g.Phase() != PhaseFlashed {
		t.Errorf("phase = %s, expected flashed while fire is only held", g.Phase())
	}
}

func TestStartIgnoredWhileTiming(t *testing.T) {
	g := newTestGame(0)

	g.Step(core.Frame{Now: t0, Held: tap(core.ButtonStart)})
	g.Step(core.Frame{Now: t0.Add(DelayMin)})
	g.Step(core.Frame{Now: t0.Add(DelayMin + time.Millisecond), Held: tap(core.ButtonStart)})

	if g.Phase() != PhaseFlashed {
		t.Errorf("phase = %s, START should not interrupt the timer", g.Phase())
	}
	if g.State().Terminated {
		t.Error("reaction timer never terminates")
	}
}

func TestRenderPhases(t *testing.T) {
	g := newTestGame(0)
	fb := core.NewFramebuffer(core.ScreenW, core.ScreenH)

	if err := g.Render(fb); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if fb.Lit() == 0 {
		t.Error("intro screen should show text")
	}

	g.Step(core.Frame{Now: t0, Held: tap(core.ButtonStart)})
	g.Render(fb)
	if fb.Lit() == 0 {
		t.Error("arming tick should show the black out message")
	}

	g.Step(core.Frame{Now: t0.Add(time.Millisecond)})
	g.Render(fb)
	if fb.Lit() != 0 {
		t.Errorf("waiting screen should be dark, %d pixels lit", fb.Lit())
	}

	g.Step(core.Frame{Now: t0.Add(DelayMin)})
	g.Render(fb)
	if fb.Lit() != core.ScreenW*core.ScreenH {
		t.Errorf("flash should light the whole panel, %d pixels lit", fb.Lit())
	}

	g.Step(core.Frame{Now: t0.Add(DelayMin + 300*time.Millisecond), Held: tap(core.ButtonFire)})
	g.Render(fb)
	want := core.NewFramebuffer(core.ScreenW, core.ScreenH)
	want.DrawText("time", 52, 10, core.ColorOn)
	want.DrawText("300 ms", 46, 28, core.ColorOn)
	want.DrawText("RESTART = red", 25, 46, core.ColorOn)
	if fb.String() != want.String() {
		t.Error("result screen layout mismatch")
	}
}

func TestCenterTextClampsLongLines(t *testing.T) {
	g := newTestGame(0)
	fb := core.NewFramebuffer(core.ScreenW, core.ScreenH)

	// 23 characters is 138 px, wider than the panel.
	g.centerText(fb, "Light up,push yerrow!!!", 0)

	want := core.NewFramebuffer(core.ScreenW, core.ScreenH)
	want.DrawText("Light up,push yerrow!!!", 0, 0, core.ColorOn)
	if fb.String() != want.String() {
		t.Error("overlong text should start at x=0")
	}
}
