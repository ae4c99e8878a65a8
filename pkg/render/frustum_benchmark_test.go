package render

import (
	"math/rand"
	"testing"

	"github.com/taigrr/vcam/pkg/math3d"
)

func BenchmarkFrustumFromCamera(b *testing.B) {
	m := cameraToClip(60, 16.0/9.0)
	for b.Loop() {
		_ = frustumFromCamera(m)
	}
}

func BenchmarkFrustumIntersectAABB(b *testing.B) {
	frustum := frustumFromCamera(cameraToClip(60, 16.0/9.0))
	box := AABB{Min: math3d.V3(-1, -1, 5), Max: math3d.V3(1, 1, 15)}

	for b.Loop() {
		_ = frustum.IntersectAABB(box)
	}
}

func BenchmarkAABBTransform(b *testing.B) {
	box := AABB{Min: math3d.V3(-1, -1, -1), Max: math3d.V3(1, 1, 1)}
	transform := math3d.Translate(math3d.V3(10, 5, 20)).Mul(math3d.RotateY(0.5))

	for b.Loop() {
		_ = box.Transform(transform)
	}
}

// BenchmarkRenderFrameCullingScenario measures RenderFrame's per-instance
// frustum reject against a field of objects half in view, half behind the
// camera, the same mix BenchmarkCullingScenario exercised before the
// rasterizer it benchmarked was replaced.
func BenchmarkRenderFrameCullingScenario(b *testing.B) {
	rs := NewRenderSystem(RGB(0, 0, 0))
	rs.SetCamera(Camera{Position: math3d.V3(0, 10, 20), VFOV: 60})

	cube := NewCubeModel(1)
	rng := rand.New(rand.NewSource(42))
	const objectCount = 100
	transforms := make([]math3d.Mat4, objectCount)
	for i := range transforms {
		var z float64
		if i%2 == 0 {
			z = 20 + rng.Float64()*30 // in front of the camera (forward is +Z from z=20)
		} else {
			z = rng.Float64()*20 - 30 // behind the camera
		}
		x := rng.Float64()*40 - 20
		y := rng.Float64() * 10
		transforms[i] = math3d.Translate(math3d.V3(x, y, z))
	}

	for b.Loop() {
		for _, t := range transforms {
			rs.SubmitInstance(cube, t)
		}
		_, _ = rs.RenderFrame(160, 120)
	}
}
