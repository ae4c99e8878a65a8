package scene

import (
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/vcam/pkg/math3d"
)

// springAxis tracks a rotation angle and an angular velocity that
// harmonica critically damps back to zero, the way trophy's own
// RotationAxis animates spin decay.
type springAxis struct {
	Position float64
	Velocity float64
	spring   harmonica.Spring
	accel    float64
}

func newSpringAxis(fps int) springAxis {
	return springAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *springAxis) update() {
	a.Position += a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
}

// OrbitUpdater stands in for the movement controller the rendering core
// leaves external: it accumulates torque impulses (from key input, set by
// the host each frame) into pitch/yaw/roll velocities and
// lets harmonica spring them back to rest, driving the entity's Rotation.
// This has no equivalent in the original source; it exists so the CLI has
// some way to move something.
type OrbitUpdater struct {
	pitch, yaw, roll springAxis

	// ImpulsePitch/Yaw/Roll are added to the corresponding axis' velocity
	// on the next Update call, then reset to zero.
	ImpulsePitch, ImpulseYaw, ImpulseRoll float64
}

// NewOrbitUpdater returns an OrbitUpdater paced at fps frames per second.
func NewOrbitUpdater(fps int) *OrbitUpdater {
	return &OrbitUpdater{
		pitch: newSpringAxis(fps),
		yaw:   newSpringAxis(fps),
		roll:  newSpringAxis(fps),
	}
}

// Update implements Updater.
func (o *OrbitUpdater) Update(e *Entity, _ time.Duration) {
	o.pitch.Velocity += o.ImpulsePitch
	o.yaw.Velocity += o.ImpulseYaw
	o.roll.Velocity += o.ImpulseRoll
	o.ImpulsePitch, o.ImpulseYaw, o.ImpulseRoll = 0, 0, 0

	o.pitch.update()
	o.yaw.update()
	o.roll.update()

	e.Rotation = math3d.V3(o.pitch.Position, o.yaw.Position, o.roll.Position)
}

// Reset zeroes rotation and velocity on all three axes.
func (o *OrbitUpdater) Reset(fps int) {
	o.pitch = newSpringAxis(fps)
	o.yaw = newSpringAxis(fps)
	o.roll = newSpringAxis(fps)
}
