package scene

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/vcam/pkg/math3d"
	"github.com/taigrr/vcam/pkg/render"
)

// LoadGLTF loads the triangle primitives of every mesh in a glTF or GLB
// document into a single render.Mesh with per-corner normals (taken from
// the mesh's own vertex normals when present, or the flat geometric face
// normal otherwise), plus a best-effort render.Material whose color is the
// PBR metallic-roughness base color of the last primitive that has one.
func LoadGLTF(path string) (*render.Mesh, render.Material, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, render.Material{}, fmt.Errorf("open gltf %s: %w", path, err)
	}

	var vertices []math3d.Vec3
	var triangles []render.Triangle
	var triNormals []render.TriangleNormals
	material := render.DefaultMaterial()

	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}

			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := readVec3Accessor(doc, posIdx)
			if err != nil {
				return nil, render.Material{}, fmt.Errorf("read positions: %w", err)
			}

			var normals []math3d.Vec3
			if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
				normals, err = readVec3Accessor(doc, normIdx)
				if err != nil {
					return nil, render.Material{}, fmt.Errorf("read normals: %w", err)
				}
			}

			baseVertex := len(vertices)
			vertices = append(vertices, positions...)

			var indices []int
			if prim.Indices != nil {
				indices, err = readIndices(doc, *prim.Indices)
				if err != nil {
					return nil, render.Material{}, fmt.Errorf("read indices: %w", err)
				}
			} else {
				indices = make([]int, len(positions))
				for i := range indices {
					indices[i] = i
				}
			}

			// glTF uses CCW winding for front faces; the pipeline's
			// screen-space y-flip makes CW the front-facing winding, so
			// swap the last two indices of every triangle.
			for i := 0; i+2 < len(indices); i += 3 {
				a, b, c := baseVertex+indices[i], baseVertex+indices[i+2], baseVertex+indices[i+1]
				tri := render.Triangle{a, b, c}
				triangles = append(triangles, tri)

				var n render.TriangleNormals
				if len(normals) > 0 {
					n = render.TriangleNormals{
						normalAt(normals, indices[i]),
						normalAt(normals, indices[i+2]),
						normalAt(normals, indices[i+1]),
					}
				} else {
					face := faceNormal(vertices[a], vertices[b], vertices[c])
					n = render.TriangleNormals{face, face, face}
				}
				triNormals = append(triNormals, n)
			}

			if pbr := prim.Material; pbr != nil && doc.Materials[*pbr].PBRMetallicRoughness != nil {
				bc := doc.Materials[*pbr].PBRMetallicRoughness.BaseColorFactor
				if bc != nil {
					material.Color = math3d.V3(float64(bc[0]), float64(bc[1]), float64(bc[2]))
				}
			}
		}
	}

	mesh := render.NewMesh(vertices, triangles, triNormals)
	return mesh, material, nil
}

func normalAt(normals []math3d.Vec3, i int) math3d.Vec3 {
	if i < len(normals) {
		return normals[i]
	}
	return math3d.V3(0, 0, 1)
}

func faceNormal(a, b, c math3d.Vec3) math3d.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// readVec3Accessor reads Vec3 data from a glTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}

	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}

	floats, ok := data.([][3]float32)
	if !ok {
		return nil, fmt.Errorf("unexpected data type for VEC3")
	}

	result := make([]math3d.Vec3, len(floats))
	for i, f := range floats {
		result[i] = math3d.V3(float64(f[0]), float64(f[1]), float64(f[2]))
	}
	return result, nil
}

// readIndices reads index data from a glTF accessor, widening whatever
// component type it stores to int.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]

	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}

	switch v := data.(type) {
	case []uint8:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	case []uint16:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	case []uint32:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	default:
		return nil, fmt.Errorf("unexpected index type: %T", data)
	}
}

// readAccessorData reads raw data from a glTF accessor's buffer view.
// Only embedded (GLB) buffers are supported.
func readAccessorData(doc *gltf.Document, accessor *gltf.Accessor) (any, error) {
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]

	bufData := buffer.Data
	if bufData == nil {
		return nil, fmt.Errorf("buffer has no embedded data (external buffers are not supported)")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	count := accessor.Count

	switch accessor.Type {
	case gltf.AccessorVec3:
		if stride == 0 {
			stride = 12
		}
		result := make([][3]float32, count)
		for i := range count {
			offset := start + i*stride
			for j := range 3 {
				result[i][j] = math.Float32frombits(readUint32LE(bufData[offset+j*4:]))
			}
		}
		return result, nil

	case gltf.AccessorScalar:
		if stride == 0 {
			switch accessor.ComponentType {
			case gltf.ComponentUbyte:
				stride = 1
			case gltf.ComponentUshort:
				stride = 2
			case gltf.ComponentUint:
				stride = 4
			}
		}

		switch accessor.ComponentType {
		case gltf.ComponentUbyte:
			result := make([]uint8, count)
			for i := range count {
				result[i] = bufData[start+i*stride]
			}
			return result, nil
		case gltf.ComponentUshort:
			result := make([]uint16, count)
			for i := range count {
				offset := start + i*stride
				result[i] = uint16(bufData[offset]) | uint16(bufData[offset+1])<<8
			}
			return result, nil
		case gltf.ComponentUint:
			result := make([]uint32, count)
			for i := range count {
				offset := start + i*stride
				result[i] = readUint32LE(bufData[offset:])
			}
			return result, nil
		}
	}

	return nil, fmt.Errorf("unsupported accessor type: %v / %v", accessor.Type, accessor.ComponentType)
}

func readUint32LE(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
