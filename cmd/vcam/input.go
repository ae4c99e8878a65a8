package main

import (
	"context"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/vcam/internal/scene"
	"github.com/taigrr/vcam/pkg/math3d"
)

const (
	orbitTorque  = 3.0
	zoomStep     = 0.5
	minZoom      = 1.0
	maxZoom      = 40.0
	initialZoomZ = -5.0
)

// inputState tracks which movement keys are currently held and the
// camera's orbit distance, since key-release events are not delivered
// reliably by every terminal.
type inputState struct {
	pitch, yaw, roll float64 // held torque, applied every frame
	lightLeft        bool
	lightRight       bool
	boost            bool
	zoomZ            float64
	hud              *boolToggle
	axes             *boolToggle
}

type boolToggle struct{ on bool }

func newInputState() *inputState {
	return &inputState{zoomZ: initialZoomZ, hud: &boolToggle{on: true}, axes: &boolToggle{}}
}

// applyTo feeds this frame's held input into the orbit and light updaters
// and the camera entity's distance from the origin.
func (in *inputState) applyTo(orbit *scene.OrbitUpdater, light *scene.LightUpdater, cameraEntity *scene.Entity) {
	orbit.ImpulsePitch += in.pitch
	orbit.ImpulseYaw += in.yaw
	orbit.ImpulseRoll += in.roll

	light.MoveLeft = in.lightLeft
	light.MoveRight = in.lightRight
	light.Boost = in.boost

	cameraEntity.Position = math3d.V3(cameraEntity.Position.X, cameraEntity.Position.Y, in.zoomZ)
}

// handleEvent updates input state from a single terminal event. It
// returns true when the host should shut down.
func (in *inputState) handleEvent(ev uv.Event, host interface{ Resize(int, int) }, cancel context.CancelFunc) bool {
	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		host.Resize(ev.Width, ev.Height)

	case uv.KeyPressEvent:
		switch {
		case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
			cancel()
			return true
		case ev.MatchString("w", "up"):
			in.pitch = -orbitTorque
		case ev.MatchString("s", "down"):
			in.pitch = orbitTorque
		case ev.MatchString("a", "left"):
			in.yaw = -orbitTorque
		case ev.MatchString("d", "right"):
			in.yaw = orbitTorque
		case ev.MatchString("q"):
			in.roll = -orbitTorque
		case ev.MatchString("e"):
			in.roll = orbitTorque
		case ev.MatchString("shift+left"):
			in.lightLeft = true
		case ev.MatchString("shift+right"):
			in.lightRight = true
		case ev.MatchString("shift"):
			in.boost = true
		case ev.MatchString("+", "="):
			in.zoomZ = clamp(in.zoomZ+zoomStep, -maxZoom, -minZoom)
		case ev.MatchString("-", "_"):
			in.zoomZ = clamp(in.zoomZ-zoomStep, -maxZoom, -minZoom)
		case ev.MatchString("r"):
			in.zoomZ = initialZoomZ
		case ev.MatchString("?"), ev.MatchString("shift+/"):
			in.hud.on = !in.hud.on
		case ev.MatchString("g"):
			in.axes.on = !in.axes.on
		}

	case uv.KeyReleaseEvent:
		switch {
		case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
			in.pitch = 0
		case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
			in.yaw = 0
		case ev.MatchString("q"), ev.MatchString("e"):
			in.roll = 0
		case ev.MatchString("shift+left"):
			in.lightLeft = false
		case ev.MatchString("shift+right"):
			in.lightRight = false
		case ev.MatchString("shift"):
			in.boost = false
		}

	case uv.MouseWheelEvent:
		switch ev.Button {
		case uv.MouseWheelUp:
			in.zoomZ = clamp(in.zoomZ-zoomStep, -maxZoom, -minZoom)
		case uv.MouseWheelDown:
			in.zoomZ = clamp(in.zoomZ+zoomStep, -maxZoom, -minZoom)
		}
	}

	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
