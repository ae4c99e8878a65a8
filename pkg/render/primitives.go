package render

import "github.com/taigrr/vcam/pkg/math3d"

// NewCubeModel returns an axis-aligned cube of the given half-extent,
// centered on the origin, with flat per-face normals and a plain matte
// material. It exists as a fallback model for hosts that have nothing
// else to show.
func NewCubeModel(halfExtent float64) *Model {
	h := halfExtent
	corners := [8]math3d.Vec3{
		math3d.V3(-h, -h, -h), math3d.V3(h, -h, -h), math3d.V3(h, h, -h), math3d.V3(-h, h, -h),
		math3d.V3(-h, -h, h), math3d.V3(h, -h, h), math3d.V3(h, h, h), math3d.V3(-h, h, h),
	}

	// Each face lists its four corners in CW winding (front-facing once
	// screen-space y is flipped), paired with its outward normal.
	faces := []struct {
		idx [4]int
		n   math3d.Vec3
	}{
		{[4]int{0, 1, 2, 3}, math3d.V3(0, 0, -1)}, // back
		{[4]int{5, 4, 7, 6}, math3d.V3(0, 0, 1)},  // front
		{[4]int{4, 0, 3, 7}, math3d.V3(-1, 0, 0)}, // left
		{[4]int{1, 5, 6, 2}, math3d.V3(1, 0, 0)},  // right
		{[4]int{3, 2, 6, 7}, math3d.V3(0, 1, 0)},  // top
		{[4]int{4, 5, 1, 0}, math3d.V3(0, -1, 0)}, // bottom
	}

	vertices := make([]math3d.Vec3, 0, len(faces)*4)
	var triangles []Triangle
	var normals []TriangleNormals

	for _, f := range faces {
		base := len(vertices)
		for _, ci := range f.idx {
			vertices = append(vertices, corners[ci])
		}
		tris := [2]Triangle{{base, base + 1, base + 2}, {base, base + 2, base + 3}}
		for _, t := range tris {
			triangles = append(triangles, t)
			normals = append(normals, TriangleNormals{f.n, f.n, f.n})
		}
	}

	mesh := NewMesh(vertices, triangles, normals)
	return NewModel(mesh, DefaultMaterial())
}
