package render

import (
	"image/color"

	"github.com/taigrr/vcam/pkg/math3d"
)

// Wireframe draws debug overlays — axes, grids, bounding boxes — straight
// onto a Framebuffer using the same camera pose a RenderSystem would use for
// a frame, bypassing the triangle pipeline entirely. It has no depth test;
// lines draw over whatever the rasterizer already wrote.
type Wireframe struct {
	Camera Camera
	fb     *Framebuffer
}

// NewWireframe returns a Wireframe that projects through camera onto fb.
func NewWireframe(camera Camera, fb *Framebuffer) *Wireframe {
	return &Wireframe{Camera: camera, fb: fb}
}

// worldToScreen projects a scene-space point through the camera the way
// RenderFrame does (scene -> camera -> clip -> viewport), returning the
// screen-space x, y and whether the point is in front of the camera at all
// (positive clip w).
func (w *Wireframe) worldToScreen(p math3d.Vec3) (x, y float64, visible bool) {
	aspect := float64(w.fb.Width) / float64(w.fb.Height)
	sceneToCam := sceneToCamera(w.Camera)
	camToClip := cameraToClip(w.Camera.VFOV, aspect)
	clipToVp := clipToViewport(float64(w.fb.Width), float64(w.fb.Height))

	camPoint := sceneToCam.MulVec3(p)
	clip := camToClip.MulVec4(math3d.V4(camPoint.X, camPoint.Y, camPoint.Z, 1))
	if clip.W <= 0 {
		return 0, 0, false
	}

	ndc := math3d.V4(clip.X/clip.W, clip.Y/clip.W, clip.Z/clip.W, 1)
	screen := clipToVp.MulVec4(ndc)
	return screen.X, screen.Y, true
}

// DrawLine3D draws a line between two scene-space points, skipping it
// entirely if both endpoints fall behind the camera.
func (w *Wireframe) DrawLine3D(p1, p2 math3d.Vec3, c color.RGBA) {
	x1, y1, vis1 := w.worldToScreen(p1)
	x2, y2, vis2 := w.worldToScreen(p2)
	if !vis1 && !vis2 {
		return
	}
	w.fb.DrawLine(int(x1), int(y1), int(x2), int(y2), c)
}

// DrawAABB draws the 12 edges of a scene-space axis-aligned bounding box.
// RenderFrame's frustum cull tests a box that is axis-aligned in camera
// space instead, so the two boxes coincide only while the camera is
// unrotated.
func (w *Wireframe) DrawAABB(box AABB, c color.RGBA) {
	corners := [8]math3d.Vec3{
		{X: box.Min.X, Y: box.Min.Y, Z: box.Min.Z},
		{X: box.Max.X, Y: box.Min.Y, Z: box.Min.Z},
		{X: box.Max.X, Y: box.Max.Y, Z: box.Min.Z},
		{X: box.Min.X, Y: box.Max.Y, Z: box.Min.Z},
		{X: box.Min.X, Y: box.Min.Y, Z: box.Max.Z},
		{X: box.Max.X, Y: box.Min.Y, Z: box.Max.Z},
		{X: box.Max.X, Y: box.Max.Y, Z: box.Max.Z},
		{X: box.Min.X, Y: box.Max.Y, Z: box.Max.Z},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range edges {
		w.DrawLine3D(corners[e[0]], corners[e[1]], c)
	}
}

// DrawAxes draws the scene-space X/Y/Z axes through the origin, length units
// long, in red/green/blue.
func (w *Wireframe) DrawAxes(length float64) {
	origin := math3d.Zero3()
	w.DrawLine3D(origin, math3d.V3(length, 0, 0), RGB(220, 60, 60))
	w.DrawLine3D(origin, math3d.V3(0, length, 0), RGB(60, 220, 60))
	w.DrawLine3D(origin, math3d.V3(0, 0, length), RGB(60, 60, 220))
}

// DrawGrid draws a size x size grid of lines spaced step apart on the XZ
// plane at y=0.
func (w *Wireframe) DrawGrid(size, step float64, c color.RGBA) {
	half := size / 2
	for x := -half; x <= half; x += step {
		w.DrawLine3D(math3d.V3(x, 0, -half), math3d.V3(x, 0, half), c)
	}
	for z := -half; z <= half; z += step {
		w.DrawLine3D(math3d.V3(-half, 0, z), math3d.V3(half, 0, z), c)
	}
}
