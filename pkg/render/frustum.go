package render

import "github.com/taigrr/vcam/pkg/math3d"

// Plane is Ax + By + Cz + D = 0, with (A,B,C) the unit normal and D the
// signed distance from the origin along that normal.
type Plane struct {
	Normal math3d.Vec3
	D      float64
}

// normalize scales the plane so its normal has unit length, leaving
// DistanceToPoint's result in real units.
func (p *Plane) normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Scale(1.0 / l)
	p.D /= l
}

// DistanceToPoint returns the signed distance from the plane to point:
// positive on the normal's side, negative on the other.
func (p Plane) DistanceToPoint(point math3d.Vec3) float64 {
	return p.Normal.Dot(point) + p.D
}

// frustumPlane indices into Frustum.Planes.
const (
	frustumLeft = iota
	frustumRight
	frustumBottom
	frustumTop
	frustumNear
	frustumFar
)

// Frustum is the 6 half-spaces of a camera's view volume, normals pointing
// inward, extracted from a combined camera-to-clip matrix by the
// Gribb/Hartmann method.
type Frustum struct {
	Planes [6]Plane
}

// frustumFromClipMatrix extracts a Frustum from a matrix that carries points
// into clip space (camera-to-clip, or model-to-clip for a frustum expressed
// in model space). Depth planes follow the reverse-Z range: near is z <= w
// (NDC z=1) and far is z >= 0 (NDC z=0).
func frustumFromClipMatrix(m math3d.Mat4) Frustum {
	var f Frustum

	// For column-major m, row i is (m[i], m[i+4], m[i+8], m[i+12]).
	row := func(i int) (float64, float64, float64, float64) {
		return m[i], m[i+4], m[i+8], m[i+12]
	}
	r0x, r0y, r0z, r0w := row(0)
	r1x, r1y, r1z, r1w := row(1)
	r2x, r2y, r2z, r2w := row(2)
	r3x, r3y, r3z, r3w := row(3)

	f.Planes[frustumLeft] = Plane{math3d.V3(r3x+r0x, r3y+r0y, r3z+r0z), r3w + r0w}
	f.Planes[frustumRight] = Plane{math3d.V3(r3x-r0x, r3y-r0y, r3z-r0z), r3w - r0w}
	f.Planes[frustumBottom] = Plane{math3d.V3(r3x+r1x, r3y+r1y, r3z+r1z), r3w + r1w}
	f.Planes[frustumTop] = Plane{math3d.V3(r3x-r1x, r3y-r1y, r3z-r1z), r3w - r1w}
	f.Planes[frustumNear] = Plane{math3d.V3(r3x-r2x, r3y-r2y, r3z-r2z), r3w - r2w}
	f.Planes[frustumFar] = Plane{math3d.V3(r2x, r2y, r2z), r2w}

	for i := range f.Planes {
		f.Planes[i].normalize()
	}
	return f
}

// frustumFromCamera returns the Frustum a Camera sees through its own
// reverse-Z projection, in camera space — the same camToClip matrix
// RenderFrame builds each frame.
func frustumFromCamera(camToClip math3d.Mat4) Frustum {
	return frustumFromClipMatrix(camToClip)
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min math3d.Vec3
	Max math3d.Vec3
}

// Transform returns the AABB that bounds all 8 corners of box after being
// carried through m; used to turn a mesh's model-space bounds into a
// camera-space box for frustum testing.
func (b AABB) Transform(m math3d.Mat4) AABB {
	corners := [8]math3d.Vec3{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}

	newMin := m.MulVec3(corners[0])
	newMax := newMin
	for i := 1; i < 8; i++ {
		p := m.MulVec3(corners[i])
		newMin = newMin.Min(p)
		newMax = newMax.Max(p)
	}
	return AABB{Min: newMin, Max: newMax}
}

func selectComponent(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}

// IntersectAABB reports whether any part of box lies inside every plane of
// f, testing only the corner furthest along each plane's normal (the
// "positive vertex" trick) so a fully-outside box is rejected in one pass
// per plane.
func (f Frustum) IntersectAABB(box AABB) bool {
	for _, plane := range f.Planes {
		pVertex := math3d.V3(
			selectComponent(plane.Normal.X >= 0, box.Max.X, box.Min.X),
			selectComponent(plane.Normal.Y >= 0, box.Max.Y, box.Min.Y),
			selectComponent(plane.Normal.Z >= 0, box.Max.Z, box.Min.Z),
		)
		if plane.DistanceToPoint(pVertex) < 0 {
			return false
		}
	}
	return true
}

// Bounds returns the axis-aligned box enclosing every vertex of the mesh,
// in the mesh's own model space.
func (m *Mesh) Bounds() AABB {
	if len(m.Vertices) == 0 {
		return AABB{}
	}
	box := AABB{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		box.Min = box.Min.Min(v)
		box.Max = box.Max.Max(v)
	}
	return box
}
