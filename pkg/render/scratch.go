package render

import "github.com/taigrr/vcam/pkg/math3d"

// clipPlane names one of the six homogeneous clip-space half-spaces.
type clipPlane int

const (
	clipLeft clipPlane = iota
	clipRight
	clipBottom
	clipTop
	clipNear
	clipFar
)

var clipPlanes = [6]clipPlane{clipLeft, clipRight, clipBottom, clipTop, clipNear, clipFar}

// clipDistance returns the signed distance of v from the given plane; v is
// inside (and thus not clipped away) when the distance is >= 0.
func clipDistance(v math3d.Vec4, p clipPlane) float64 {
	switch p {
	case clipLeft:
		return v.X + v.W
	case clipRight:
		return v.W - v.X
	case clipBottom:
		return v.Y + v.W
	case clipTop:
		return v.W - v.Y
	case clipNear:
		return v.Z + v.W
	case clipFar:
		return v.W - v.Z
	}
	return 0
}

// ScratchModel is the mutable per-instance working buffer the pipeline
// stages operate on. It starts as a homogeneous copy of a Model's mesh and
// is transformed in place through the stage sequence; Vertices only grows
// (clipping appends new intersection vertices), while Triangles and
// TriangleNormals are replaced wholesale by Clip.
type ScratchModel struct {
	Model           *Model
	Vertices        []math3d.Vec4
	Triangles       []Triangle
	TriangleNormals []TriangleNormals
}

// newScratchModel builds a ScratchModel from a Model, with headroom
// reserved for the vertices clipping may append.
func newScratchModel(model *Model) *ScratchModel {
	mesh := model.Mesh
	s := &ScratchModel{
		Model:           model,
		Vertices:        make([]math3d.Vec4, len(mesh.Vertices), len(mesh.Vertices)+6*len(mesh.Triangles)),
		Triangles:       append([]Triangle(nil), mesh.Triangles...),
		TriangleNormals: append([]TriangleNormals(nil), mesh.TriangleNormals...),
	}
	for i, v := range mesh.Vertices {
		s.Vertices[i] = math3d.V4FromV3(v, 1)
	}
	return s
}

// transform multiplies every vertex by modelToCamera and every corner
// normal by its inverse-transpose, so non-uniform scale does not distort
// shading normals.
func (s *ScratchModel) transform(modelToCamera math3d.Mat4) {
	for i, v := range s.Vertices {
		s.Vertices[i] = modelToCamera.MulVec4(v)
	}
	normalMatrix := modelToCamera.NormalMatrix()
	for i, tri := range s.TriangleNormals {
		for j, n := range tri {
			s.TriangleNormals[i][j] = normalMatrix.MulVec3Dir(n)
		}
	}
}

// project multiplies every vertex by cameraToClip without dividing by w;
// clipping must run in homogeneous clip space.
func (s *ScratchModel) project(cameraToClip math3d.Mat4) {
	for i, v := range s.Vertices {
		s.Vertices[i] = cameraToClip.MulVec4(v)
	}
}

// clip runs Sutherland-Hodgman against all six clip planes per source
// triangle, interpolating position and normals at each new intersection,
// then fan-triangulates the surviving polygon from its first vertex.
func (s *ScratchModel) clip() {
	clippedTriangles := make([]Triangle, 0, len(s.Triangles)*2)
	clippedNormals := make([]TriangleNormals, 0, len(s.Triangles)*2)

	for i, tri := range s.Triangles {
		normals := s.TriangleNormals[i]

		polygon := []int{tri[0], tri[1], tri[2]}
		polygonNormals := []math3d.Vec3{normals[0], normals[1], normals[2]}

		for _, plane := range clipPlanes {
			if len(polygon) == 0 {
				break
			}

			nextPolygon := make([]int, 0, len(polygon)+3)
			nextNormals := make([]math3d.Vec3, 0, len(polygon)+3)

			for k := range polygon {
				i0 := polygon[k]
				i1 := polygon[(k+1)%len(polygon)]
				n0 := polygonNormals[k]
				n1 := polygonNormals[(k+1)%len(polygon)]

				d0 := clipDistance(s.Vertices[i0], plane)
				d1 := clipDistance(s.Vertices[i1], plane)

				in0 := d0 >= 0
				in1 := d1 >= 0

				if in0 {
					nextPolygon = append(nextPolygon, i0)
					nextNormals = append(nextNormals, n0)
				}

				if in0 != in1 {
					t := d0 / (d0 - d1)
					mixed := s.Vertices[i0].Lerp(s.Vertices[i1], t)
					mixedNormal := n0.Lerp(n1, t)

					s.Vertices = append(s.Vertices, mixed)
					nextPolygon = append(nextPolygon, len(s.Vertices)-1)
					nextNormals = append(nextNormals, mixedNormal)
				}
			}

			polygon = nextPolygon
			polygonNormals = nextNormals
		}

		if len(polygon) < 3 {
			continue
		}

		for k := 1; k+1 < len(polygon); k++ {
			clippedTriangles = append(clippedTriangles, Triangle{polygon[0], polygon[k], polygon[k+1]})
			clippedNormals = append(clippedNormals, TriangleNormals{polygonNormals[0], polygonNormals[k], polygonNormals[k+1]})
		}
	}

	s.Triangles = clippedTriangles
	s.TriangleNormals = clippedNormals
}

// normalize performs the perspective divide: each vertex is scaled by
// inv_w = 1/w, and w is overwritten with inv_w so it survives for
// perspective-correct interpolation. Corner normals are pre-scaled by
// their vertex's inv_w for the same reason.
func (s *ScratchModel) normalize() {
	for i, v := range s.Vertices {
		invW := 1 / v.W
		s.Vertices[i] = math3d.Vec4{X: v.X * invW, Y: v.Y * invW, Z: v.Z * invW, W: invW}
	}
	for i, tri := range s.Triangles {
		for j := range s.TriangleNormals[i] {
			s.TriangleNormals[i][j] = s.TriangleNormals[i][j].Scale(s.Vertices[tri[j]].W)
		}
	}
}

// viewport maps each vertex's xy into pixel space and preserves z and the
// carried inv_w.
func (s *ScratchModel) viewport(clipToViewport math3d.Mat4) {
	for i, v := range s.Vertices {
		invW := v.W
		mapped := clipToViewport.MulVec4(math3d.Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1})
		mapped.W = invW
		s.Vertices[i] = mapped
	}
}
