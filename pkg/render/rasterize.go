package render

import (
	"image/color"
	"math"

	"github.com/taigrr/vcam/pkg/math3d"
)

// depthBuffer is a width*height grid of inverted-Z depth values, cleared
// to negative infinity so every real depth value wins the first test.
// Larger stored values mean closer to the camera.
type depthBuffer struct {
	width, height int
	values        []float32
}

func newDepthBuffer(width, height int) *depthBuffer {
	return &depthBuffer{width: width, height: height, values: make([]float32, width*height)}
}

func (d *depthBuffer) clear() {
	for i := range d.values {
		d.values[i] = float32(math.Inf(-1))
	}
}

// boundingBox returns the pixel-space bounding box of three post-viewport
// vertices, clamped to [0,width]x[0,height] with the min floored and the
// max ceiled.
func boundingBox(v0, v1, v2 math3d.Vec4, width, height int) (minX, minY, maxX, maxY int) {
	clamp := func(v, lo, hi int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	minXf := math.Min(v0.X, math.Min(v1.X, v2.X))
	minYf := math.Min(v0.Y, math.Min(v1.Y, v2.Y))
	maxXf := math.Max(v0.X, math.Max(v1.X, v2.X))
	maxYf := math.Max(v0.Y, math.Max(v1.Y, v2.Y))

	minX = clamp(int(math.Floor(minXf)), 0, width)
	minY = clamp(int(math.Floor(minYf)), 0, height)
	maxX = clamp(int(math.Ceil(maxXf)), 0, width)
	maxY = clamp(int(math.Ceil(maxYf)), 0, height)
	return
}

// edge2D is the 2D edge function used both for the back-face test and for
// barycentric weights: twice the signed area of the triangle (a,b,c).
func edge2D(ax, ay, bx, by, cx, cy float64) float64 {
	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}

// isBackFace reports whether the triangle, wound in post-viewport screen
// space, faces away from the viewer: a positive 2D cross product after the
// viewport's y-flip indicates a clockwise (back) face.
func isBackFace(v0, v1, v2 math3d.Vec4) bool {
	return edge2D(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y) > 0
}

// barycentric computes the barycentric weights of point p with respect to
// triangle (a,b,c) using the edge-function method. Any negative component
// means the point is outside the triangle; the function then returns
// weights containing NaN, which is the load-bearing signal the depth test
// relies on to skip the fragment.
func barycentric(a, b, c, p [2]float64) math3d.Vec3 {
	area := edge2D(a[0], a[1], b[0], b[1], c[0], c[1])
	alpha := edge2D(p[0], p[1], b[0], b[1], c[0], c[1]) / area
	beta := edge2D(a[0], a[1], p[0], p[1], c[0], c[1]) / area
	gamma := edge2D(a[0], a[1], b[0], b[1], p[0], p[1]) / area

	if alpha < 0 || beta < 0 || gamma < 0 {
		nan := math.NaN()
		return math3d.V3(nan, nan, nan)
	}
	return math3d.V3(alpha, beta, gamma)
}

func lerpBary3(a, b, c float64, lambda math3d.Vec3) float64 {
	return a*lambda.X + b*lambda.Y + c*lambda.Z
}

func lerpBaryVec3(a, b, c math3d.Vec3, lambda math3d.Vec3) math3d.Vec3 {
	return math3d.Vec3{
		X: lerpBary3(a.X, b.X, c.X, lambda),
		Y: lerpBary3(a.Y, b.Y, c.Y, lambda),
		Z: lerpBary3(a.Z, b.Z, c.Z, lambda),
	}
}

func lerpBaryVec4(a, b, c math3d.Vec4, lambda math3d.Vec3) math3d.Vec4 {
	return math3d.Vec4{
		X: lerpBary3(a.X, b.X, c.X, lambda),
		Y: lerpBary3(a.Y, b.Y, c.Y, lambda),
		Z: lerpBary3(a.Z, b.Z, c.Z, lambda),
		W: lerpBary3(a.W, b.W, c.W, lambda),
	}
}

// calculateDepth returns the inverted-Z depth at a fragment: the
// barycentric interpolation of the three vertices' clip z divided by the
// barycentric interpolation of their stored 1/w.
func calculateDepth(v0, v1, v2 math3d.Vec4, lambda math3d.Vec3) float64 {
	invW := lerpBary3(v0.W, v1.W, v2.W, lambda)
	return lerpBary3(v0.Z, v1.Z, v2.Z, lambda) / invW
}

// shadingContext carries the matrices needed to reconstruct a fragment's
// camera-space position from its interpolated viewport-space vertex.
type shadingContext struct {
	clipToCamera   math3d.Mat4
	viewportToClip math3d.Mat4
	light          Light
}

// illuminate computes the Phong-lit linear color of a fragment, using the
// light's own ambient/diffuse/specular intensities (never hard-coded
// substitutes, correcting a known bug in the source material).
func illuminate(v0, v1, v2 math3d.Vec4, n0, n1, n2 math3d.Vec3, lambda math3d.Vec3, mat Material, ctx shadingContext) math3d.Vec3 {
	invW := lerpBary3(v0.W, v1.W, v2.W, lambda)
	normal := lerpBaryVec3(n0, n1, n2, lambda).Scale(1 / invW).Normalize()

	viewportPos := lerpBaryVec4(v0, v1, v2, lambda)
	clipPos := ctx.viewportToClip.MulVec4(math3d.Vec4{X: viewportPos.X, Y: viewportPos.Y, Z: viewportPos.Z, W: 1})
	clipPos = clipPos.Scale(1 / viewportPos.W)
	position := ctx.clipToCamera.MulVec4(clipPos).Vec3()

	l := ctx.light.Position.Sub(position).Normalize()
	v := position.Negate().Normalize()
	r := normal.Scale(2 * l.Dot(normal)).Sub(l).Normalize()

	ambient := mat.Ambient.Mul(ctx.light.Ambient)
	diffuse := mat.Diffuse.Scale(math.Max(l.Dot(normal), 0)).Mul(ctx.light.Diffuse)
	specular := mat.Specular.Scale(math.Pow(math.Max(r.Dot(v), 0), mat.Shininess)).Mul(ctx.light.Specular)

	return ambient.Add(diffuse).Add(specular)
}

// gammaEncode raises each channel to 1/2.2 and packs it into an 8-bit
// sRGB-encoded color.
func gammaEncode(linear math3d.Vec3) color.RGBA {
	encode := func(c float64) uint8 {
		if c < 0 {
			c = 0
		}
		if c > 1 {
			c = 1
		}
		return uint8(math.Round(255 * math.Pow(c, 1/2.2)))
	}
	return color.RGBA{R: encode(linear.X), G: encode(linear.Y), B: encode(linear.Z), A: 255}
}

// rasterize scans every surviving triangle's screen-space bounding box,
// culls back faces, depth-tests each covered pixel against db, and writes
// Phong-shaded, gamma-encoded pixels into fb.
func (s *ScratchModel) rasterize(fb *Framebuffer, db *depthBuffer, ctx shadingContext) {
	material := s.Model.Material

	for i, tri := range s.Triangles {
		v0, v1, v2 := s.Vertices[tri[0]], s.Vertices[tri[1]], s.Vertices[tri[2]]

		if isBackFace(v0, v1, v2) {
			continue
		}

		minX, minY, maxX, maxY := boundingBox(v0, v1, v2, db.width, db.height)

		normals := s.TriangleNormals[i]

		for y := minY; y < maxY; y++ {
			for x := minX; x < maxX; x++ {
				lambda := barycentric(
					[2]float64{v0.X, v0.Y}, [2]float64{v1.X, v1.Y}, [2]float64{v2.X, v2.Y},
					[2]float64{float64(x) + 0.5, float64(y) + 0.5},
				)

				depth := calculateDepth(v0, v1, v2, lambda)

				idx := y*db.width + x
				if math.IsNaN(depth) || float32(depth) <= db.values[idx] {
					continue
				}

				illum := illuminate(v0, v1, v2, normals[0], normals[1], normals[2], lambda, material, ctx)
				linear := material.Color.Mul(illum)

				db.values[idx] = float32(depth)
				fb.SetPixel(x, y, gammaEncode(linear))
			}
		}
	}
}
