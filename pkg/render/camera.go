package render

import (
	"math"

	"github.com/taigrr/vcam/pkg/math3d"
)

const (
	zNear = 0.01
	zFar  = 1000.0
)

// Camera describes a pose and vertical field of view. Position and
// Rotation place the camera in scene space using the same
// translate*rotateY*rotateX*rotateZ convention as every other pose in the
// pipeline; the camera looks down +Z in its own space.
type Camera struct {
	Position math3d.Vec3
	Rotation math3d.Vec3 // Euler Y (yaw), X (pitch), Z (roll), radians
	VFOV     float64     // degrees
}

// NewCamera returns a camera at the origin with the default 30 degree
// vertical field of view, matching the original component's default.
func NewCamera() Camera {
	return Camera{VFOV: 30}
}

// SetVFOV clamps the field of view to [1, 90] degrees, per the vfov > 0
// invariant and the setter's documented clamp.
func (c *Camera) SetVFOV(degrees float64) {
	switch {
	case degrees < 1:
		degrees = 1
	case degrees > 90:
		degrees = 90
	}
	c.VFOV = degrees
}

// Light is a single point light: a scene-space position and three RGB
// intensities used directly in the Phong equation (no hard-coded
// substitutes).
type Light struct {
	Position math3d.Vec3
	Ambient  math3d.Vec3
	Diffuse  math3d.Vec3
	Specular math3d.Vec3
}

// NewLight returns a white light with modest ambient contribution.
func NewLight(position math3d.Vec3) Light {
	return Light{
		Position: position,
		Ambient:  math3d.V3(0.2, 0.2, 0.2),
		Diffuse:  math3d.V3(0.8, 0.8, 0.8),
		Specular: math3d.V3(1, 1, 1),
	}
}

// sceneToCamera returns the inverse of the camera's own model transform,
// i.e. the matrix that maps scene-space points into camera space.
func sceneToCamera(c Camera) math3d.Mat4 {
	cameraToScene := math3d.TransformMatrix(c.Position, c.Rotation, math3d.V3(1, 1, 1))
	return cameraToScene.Inverse()
}

// cameraToClip builds the reverse-Z perspective matrix described by the
// camera's vertical field of view and the render target's aspect ratio.
// Near maps to clip z=w (NDC z=1) and far to z=0; a point's w after this
// matrix equals its camera-space z, so 1/w is a valid perspective
// attribute.
func cameraToClip(vfovDegrees, aspect float64) math3d.Mat4 {
	h := math.Tan(math3d.ToRadians(vfovDegrees) / 2)
	return math3d.Mat4{
		1 / (h * aspect), 0, 0, 0,
		0, 1 / h, 0, 0,
		0, 0, zNear / (zNear - zFar), 1,
		0, 0, (zNear * zFar) / (zFar - zNear), 0,
	}
}

// clipToViewport maps clip-space xy into pixel space, flips y for a
// screen-down convention, and passes z through unchanged.
func clipToViewport(width, height float64) math3d.Mat4 {
	return math3d.Mat4{
		width / 2, 0, 0, 0,
		0, -height / 2, 0, 0,
		0, 0, 1, 0,
		width / 2, height / 2, 0, 1,
	}
}
