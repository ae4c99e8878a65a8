package terminalhost

import (
	"fmt"
	"time"
)

// HUD renders an FPS/instance-count overlay directly to the terminal with
// raw ANSI positioning, the way trophy's own overlay worked.
type HUD struct {
	fps       float64
	fpsFrames int
	fpsTime   time.Time
	Visible   bool
}

// NewHUD returns a visible HUD.
func NewHUD() *HUD {
	return &HUD{fpsTime: time.Now(), Visible: true}
}

// Tick updates the FPS counter; call once per frame.
func (h *HUD) Tick() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Render draws the overlay's top and bottom rows, or clears them if the
// HUD is hidden.
func (h *HUD) Render(width, height, instanceCount int) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		bgBlack   = "\x1b[40m"
		fgGreen   = "\x1b[92m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)
	moveTo := func(row, col int) string { return fmt.Sprintf("\x1b[%d;%dH", row, col) }

	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	if !h.Visible {
		return
	}

	fmt.Print(fmt.Sprintf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset))

	instStr := fmt.Sprintf("%s%s%s %d instances %s", bgBlack, fgCyan, bold, instanceCount, reset)
	col := max(width-16, 1)
	fmt.Print(moveTo(1, col) + instStr)

	hint := fmt.Sprintf("%s%s WASD/QE: orbit  Shift+L/R arrows: light  +/-: zoom  ?: hud  Esc: quit %s", bgBlack, fgGreen, reset)
	fmt.Print(moveTo(height, 1) + hint)
}
