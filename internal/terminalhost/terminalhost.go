// Package terminalhost adapts a render.Framebuffer to a terminal screen
// using charmbracelet/ultraviolet's half-block cell renderer, and exposes
// the terminal's raw event stream. It does not interpret those events;
// mapping them to scene inputs is left to the caller.
package terminalhost

import (
	"context"
	"fmt"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/vcam/pkg/render"
)

// Host owns the terminal session: alt-screen lifecycle, mouse reporting,
// and the double-buffered screen that a Framebuffer is blitted into each
// frame.
type Host struct {
	term   *uv.Terminal
	screen uv.ScreenBuffer

	Width, Height int // terminal cells
}

// Open starts a terminal session in the alternate screen with mouse
// tracking enabled, sized to the terminal's current dimensions.
func Open() (*Host, error) {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return nil, fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return nil, fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)
	enableMouse()

	return &Host{
		term:   term,
		screen: uv.NewScreenBuffer(width, height),
		Width:  width,
		Height: height,
	}, nil
}

// Close restores the terminal to its original state.
func (h *Host) Close() {
	disableMouse()
	h.term.ExitAltScreen()
	h.term.ShowCursor()
	h.term.Shutdown(context.Background())
}

// Events exposes the terminal's raw event stream (key presses, mouse
// motion, resizes).
func (h *Host) Events() <-chan uv.Event {
	return h.term.Events()
}

// Resize adjusts the host's recorded terminal size and screen buffer,
// called in response to a uv.WindowSizeEvent.
func (h *Host) Resize(width, height int) {
	h.Width, h.Height = width, height
	h.term.Erase()
	h.term.Resize(width, height)
	h.screen = uv.NewScreenBuffer(width, height)
}

// FramebufferSize returns the pixel dimensions a Framebuffer should use to
// exactly fill this host's terminal cells (each cell holds two pixel rows
// via the half-block character).
func (h *Host) FramebufferSize() (width, height int) {
	return h.Width, h.Height * 2
}

// Present blits a rendered Framebuffer to the terminal and flushes it to
// the screen.
func (h *Host) Present(fb *render.Framebuffer) error {
	area := uv.Rect(0, 0, h.Width, h.Height)
	fb.Draw(h.screen, area)
	h.term.Draw(h.screen)
	return h.term.Display()
}

func enableMouse() {
	fmt.Print("\x1b[?1003h") // any-event mouse tracking
	fmt.Print("\x1b[?1006h") // SGR extended mouse mode
}

func disableMouse() {
	fmt.Print("\x1b[?1003l")
	fmt.Print("\x1b[?1006l")
}
