package render

import "github.com/taigrr/vcam/pkg/math3d"

// Triangle is a triple of vertex indices into a Mesh's Vertices.
type Triangle [3]int

// TriangleNormals holds one unit normal per corner of a triangle, parallel
// to Mesh.Triangles.
type TriangleNormals [3]math3d.Vec3

// Mesh is an immutable triangle mesh: vertex positions plus a parallel
// per-corner normal for every triangle. Triangles and TriangleNormals must
// have the same length, and every index in Triangles must be < len(Vertices).
type Mesh struct {
	Vertices        []math3d.Vec3
	Triangles       []Triangle
	TriangleNormals []TriangleNormals
}

// NewMesh constructs a Mesh from parallel vertex, triangle, and normal
// slices. It does not copy the slices.
func NewMesh(vertices []math3d.Vec3, triangles []Triangle, normals []TriangleNormals) *Mesh {
	return &Mesh{
		Vertices:        vertices,
		Triangles:       triangles,
		TriangleNormals: normals,
	}
}

// Material describes how a Mesh's surface reflects light under the Phong
// model. Reflectance components are expected in [0,1] and Shininess must be
// positive.
type Material struct {
	Color     math3d.Vec3 // diffuse base color, multiplied into the final illumination
	Shininess float64
	Specular  math3d.Vec3
	Diffuse   math3d.Vec3
	Ambient   math3d.Vec3
}

// DefaultMaterial returns a plausible matte-white material.
func DefaultMaterial() Material {
	return Material{
		Color:     math3d.V3(1, 1, 1),
		Shininess: 32,
		Specular:  math3d.V3(0.5, 0.5, 0.5),
		Diffuse:   math3d.V3(0.8, 0.8, 0.8),
		Ambient:   math3d.V3(0.2, 0.2, 0.2),
	}
}

// Model owns a Mesh and a Material. A Model is immutable after
// construction; the pipeline only ever reads through a const reference.
type Model struct {
	Mesh     *Mesh
	Material Material
}

// NewModel constructs a Model from a Mesh and Material.
func NewModel(mesh *Mesh, material Material) *Model {
	return &Model{Mesh: mesh, Material: material}
}
