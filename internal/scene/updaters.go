package scene

import (
	"time"

	"github.com/taigrr/vcam/pkg/math3d"
	"github.com/taigrr/vcam/pkg/render"
)

// CameraUpdater pushes an entity's pose into a RenderSystem as the active
// camera every frame. VFOV defaults to 30 degrees, matching the original
// component, and is clamped to [1,90] the way the rendering core itself
// requires.
type CameraUpdater struct {
	RenderSystem *render.RenderSystem
	VFOV         float64
}

// NewCameraUpdater returns a CameraUpdater with the default field of view.
func NewCameraUpdater(rs *render.RenderSystem) *CameraUpdater {
	return &CameraUpdater{RenderSystem: rs, VFOV: 30}
}

// Update implements Updater.
func (c *CameraUpdater) Update(e *Entity, _ time.Duration) {
	cam := render.NewCamera()
	cam.Position = e.Position
	cam.Rotation = e.Rotation
	cam.SetVFOV(c.VFOV)
	c.RenderSystem.SetCamera(cam)
}

// LightUpdater pushes an entity's position into a RenderSystem as the
// active point light. MoveLeft/MoveRight/Boost are set by the host's input
// layer each frame, standing in for the original's keypad 4/6 handling;
// the entity moves along its own local X axis at MoveSpeed units/sec,
// doubled when Boost is set.
type LightUpdater struct {
	RenderSystem *render.RenderSystem
	Ambient      math3d.Vec3
	Diffuse      math3d.Vec3
	Specular     math3d.Vec3
	MoveSpeed    float64

	MoveLeft, MoveRight, Boost bool
}

// NewLightUpdater returns a LightUpdater with a plain white light.
func NewLightUpdater(rs *render.RenderSystem) *LightUpdater {
	return &LightUpdater{
		RenderSystem: rs,
		Ambient:      math3d.V3(0.2, 0.2, 0.2),
		Diffuse:      math3d.V3(0.8, 0.8, 0.8),
		Specular:     math3d.V3(1, 1, 1),
		MoveSpeed:    2.5,
	}
}

// Update implements Updater.
func (l *LightUpdater) Update(e *Entity, dt time.Duration) {
	speed := l.MoveSpeed
	if l.Boost {
		speed *= 2
	}

	var dx float64
	if l.MoveLeft {
		dx -= speed * dt.Seconds()
	}
	if l.MoveRight {
		dx += speed * dt.Seconds()
	}

	if dx != 0 {
		localDelta := math3d.TransformMatrix(math3d.V3(dx, 0, 0), math3d.Vec3{}, math3d.V3(1, 1, 1))
		localToScene := e.Transform()
		newLocalToScene := localToScene.Mul(localDelta)
		e.Position = newLocalToScene.MulVec3(math3d.Vec3{})
	}

	l.RenderSystem.SetLight(render.Light{
		Position: e.Position,
		Ambient:  l.Ambient,
		Diffuse:  l.Diffuse,
		Specular: l.Specular,
	})
}

// RenderUpdater submits an entity's mesh instance to a RenderSystem every
// frame using the entity's own model-to-scene transform.
type RenderUpdater struct {
	RenderSystem *render.RenderSystem
	Model        *render.Model
}

// NewRenderUpdater returns a RenderUpdater for the given model.
func NewRenderUpdater(rs *render.RenderSystem, model *render.Model) *RenderUpdater {
	return &RenderUpdater{RenderSystem: rs, Model: model}
}

// Update implements Updater.
func (r *RenderUpdater) Update(e *Entity, _ time.Duration) {
	r.RenderSystem.SubmitInstance(r.Model, e.Transform())
}
