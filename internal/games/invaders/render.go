package invaders

import (
	"fmt"

	"github.com/vovakirdan/pico-arcade/internal/core"
	"github.com/vovakirdan/pico-arcade/internal/hw"
)

// Draw rasterizes the world and pushes the full frame to the display.
func Draw(dst hw.Display, w WorldState) error {
	dst.Clear()

	fillRect(dst, w.Player.Rect())
	for _, e := range w.Enemies {
		fillRect(dst, e.Rect())
	}
	for _, p := range w.Projectiles {
		fillRect(dst, p.Rect())
	}

	if err := dst.Show(); err != nil {
		return fmt.Errorf("invaders: present frame: %w", err)
	}
	return nil
}

// DrawGameOver presents the terminal message on a blank screen.
func DrawGameOver(dst hw.Display) error {
	dst.Clear()
	dst.DrawText(GameOverText, GameOverX, GameOverY, core.ColorOn)

	if err := dst.Show(); err != nil {
		return fmt.Errorf("invaders: present game over: %w", err)
	}
	return nil
}

func fillRect(dst hw.Display, r core.Rect) {
	dst.FillRect(r.X, r.Y, r.W, r.H, core.ColorOn)
}
