package render

import (
	"testing"

	"github.com/taigrr/vcam/pkg/math3d"
)

func TestNewMeshParallelSlices(t *testing.T) {
	verts := []math3d.Vec3{math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0)}
	tris := []Triangle{{0, 1, 2}}
	normals := []TriangleNormals{{math3d.V3(0, 0, 1), math3d.V3(0, 0, 1), math3d.V3(0, 0, 1)}}

	mesh := NewMesh(verts, tris, normals)

	if len(mesh.Triangles) != len(mesh.TriangleNormals) {
		t.Fatalf("triangles/normals length mismatch: %d vs %d", len(mesh.Triangles), len(mesh.TriangleNormals))
	}
	for _, tri := range mesh.Triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= len(mesh.Vertices) {
				t.Fatalf("triangle index %d out of range for %d vertices", idx, len(mesh.Vertices))
			}
		}
	}
}

func TestDefaultMaterialInUnitRange(t *testing.T) {
	mat := DefaultMaterial()

	channels := []math3d.Vec3{mat.Color, mat.Ambient, mat.Diffuse, mat.Specular}
	for _, c := range channels {
		for _, v := range []float64{c.X, c.Y, c.Z} {
			if v < 0 || v > 1 {
				t.Errorf("reflectance component %v out of [0,1]", v)
			}
		}
	}
	if mat.Shininess <= 0 {
		t.Errorf("expected positive shininess, got %v", mat.Shininess)
	}
}

func TestNewCubeModelHasTwelveTriangles(t *testing.T) {
	model := NewCubeModel(1)

	if len(model.Mesh.Triangles) != 12 {
		t.Errorf("expected 12 triangles (6 faces x 2), got %d", len(model.Mesh.Triangles))
	}
	if len(model.Mesh.Triangles) != len(model.Mesh.TriangleNormals) {
		t.Errorf("triangles/normals length mismatch")
	}
}
