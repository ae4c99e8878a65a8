package render

import (
	"errors"
	"image/color"

	"github.com/taigrr/vcam/pkg/math3d"
)

// instance is a non-owning reference to a Model paired with the matrix
// that places it in scene space. The submitter guarantees the Model
// outlives the frame it was submitted for.
type instance struct {
	model        *Model
	modelToScene math3d.Mat4
}

// RenderSystem is the façade external collaborators drive: it owns the
// current camera and light, the per-frame instance queue, and the
// transient color/depth surfaces. It is not safe for concurrent use;
// SubmitInstance must not be called while RenderFrame is running.
type RenderSystem struct {
	camera     Camera
	light      Light
	instances  []instance
	background color.RGBA

	fb    *Framebuffer
	depth *depthBuffer
}

// NewRenderSystem returns a RenderSystem with a default camera, no light,
// and the given clear color.
func NewRenderSystem(background color.RGBA) *RenderSystem {
	return &RenderSystem{
		camera:     NewCamera(),
		background: background,
	}
}

// SetCamera replaces the current camera; it takes effect on the next
// RenderFrame.
func (rs *RenderSystem) SetCamera(c Camera) {
	rs.camera = c
}

// SetLight replaces the current scene-space light.
func (rs *RenderSystem) SetLight(l Light) {
	rs.light = l
}

// SubmitInstance enqueues a Model for the next frame's render. Order among
// instances does not affect the final image; the depth buffer resolves
// overlap regardless of submission order.
func (rs *RenderSystem) SubmitInstance(model *Model, modelToScene math3d.Mat4) {
	rs.instances = append(rs.instances, instance{model: model, modelToScene: modelToScene})
}

// ErrInvalidTarget is returned by RenderFrame when asked to render into a
// non-positive-area surface.
var ErrInvalidTarget = errors.New("render: invalid target dimensions")

// RenderFrame runs the full pipeline — transform, project, clip,
// normalize, viewport, rasterize — for every submitted instance against a
// width x height target, and clears the instance queue regardless of
// outcome. It returns an error only for host-side resource failures
// (an invalid target size); per-frame data-shape problems never escape as
// errors and instead degrade gracefully (empty meshes draw nothing, NaN
// barycentrics fail the depth test).
func (rs *RenderSystem) RenderFrame(width, height int) (*Framebuffer, error) {
	defer func() { rs.instances = rs.instances[:0] }()

	if width <= 0 || height <= 0 {
		return nil, ErrInvalidTarget
	}

	if rs.fb == nil || rs.fb.Width != width || rs.fb.Height != height {
		rs.fb = NewFramebuffer(width, height)
		rs.depth = newDepthBuffer(width, height)
	}
	rs.fb.Clear(rs.background)
	rs.depth.clear()

	sceneToCam := sceneToCamera(rs.camera)
	camToClip := cameraToClip(rs.camera.VFOV, float64(width)/float64(height))
	clipToVp := clipToViewport(float64(width), float64(height))

	ctx := shadingContext{
		clipToCamera:   camToClip.Inverse(),
		viewportToClip: clipToVp.Inverse(),
	}

	// Transform a local copy of the light into camera space every frame;
	// the externally-owned Light must never be mutated, or a second
	// RenderFrame call would double-transform it.
	camLight := rs.light
	camLight.Position = sceneToCam.MulVec3(rs.light.Position)
	ctx.light = camLight

	frustum := frustumFromCamera(camToClip)

	for _, inst := range rs.instances {
		modelToCamera := sceneToCam.Mul(inst.modelToScene)

		// Coarse per-instance reject: a mesh whose camera-space bounding
		// box lies fully outside any one frustum plane can't contribute a
		// pixel, so skip
		// the full transform/clip/rasterize pipeline for it entirely.
		if !frustum.IntersectAABB(inst.model.Mesh.Bounds().Transform(modelToCamera)) {
			continue
		}

		scratch := newScratchModel(inst.model)
		scratch.transform(modelToCamera)
		scratch.project(camToClip)
		scratch.clip()
		scratch.normalize()
		scratch.viewport(clipToVp)
		scratch.rasterize(rs.fb, rs.depth, ctx)
	}

	return rs.fb, nil
}
