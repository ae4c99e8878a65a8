package render

import (
	"testing"

	"github.com/taigrr/vcam/pkg/math3d"
)

func TestWireframeDrawLine3DSkipsWhenBothPointsBehindCamera(t *testing.T) {
	fb := NewFramebuffer(16, 16)
	fb.Clear(RGB(0, 0, 0))
	w := NewWireframe(Camera{VFOV: 60}, fb)

	// Camera looks down +Z; both points at negative Z are behind it.
	w.DrawLine3D(math3d.V3(-1, 0, -5), math3d.V3(1, 0, -5), RGB(255, 0, 0))

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if c := fb.GetPixel(x, y); c.R != 0 || c.G != 0 || c.B != 0 {
				t.Fatalf("expected no pixels drawn for a line fully behind the camera, found one at (%d,%d)", x, y)
			}
		}
	}
}

func TestWireframeDrawAxesDrawsVisiblePixels(t *testing.T) {
	fb := NewFramebuffer(32, 32)
	fb.Clear(RGB(0, 0, 0))
	w := NewWireframe(Camera{Position: math3d.V3(0, 0, -5), VFOV: 90}, fb)

	w.DrawAxes(2)

	drawn := false
	for y := 0; y < fb.Height && !drawn; y++ {
		for x := 0; x < fb.Width; x++ {
			if c := fb.GetPixel(x, y); c.R != 0 || c.G != 0 || c.B != 0 {
				drawn = true
				break
			}
		}
	}
	if !drawn {
		t.Errorf("expected DrawAxes to draw at least one visible pixel")
	}
}

func TestWireframeDrawAABBDrawsVisiblePixels(t *testing.T) {
	fb := NewFramebuffer(32, 32)
	fb.Clear(RGB(0, 0, 0))
	w := NewWireframe(Camera{Position: math3d.V3(0, 0, -5), VFOV: 90}, fb)

	w.DrawAABB(AABB{Min: math3d.V3(-1, -1, -1), Max: math3d.V3(1, 1, 1)}, RGB(255, 255, 255))

	drawn := false
	for y := 0; y < fb.Height && !drawn; y++ {
		for x := 0; x < fb.Width; x++ {
			if c := fb.GetPixel(x, y); c.R != 0 || c.G != 0 || c.B != 0 {
				drawn = true
				break
			}
		}
	}
	if !drawn {
		t.Errorf("expected DrawAABB to draw at least one visible pixel")
	}
}
