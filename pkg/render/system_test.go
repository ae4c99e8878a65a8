package render

import (
	"testing"

	"github.com/taigrr/vcam/pkg/math3d"
)

func TestRenderFrameRejectsInvalidTarget(t *testing.T) {
	rs := NewRenderSystem(RGB(0, 0, 0))

	if _, err := rs.RenderFrame(0, 10); err != ErrInvalidTarget {
		t.Errorf("expected ErrInvalidTarget for zero width, got %v", err)
	}
	if _, err := rs.RenderFrame(10, -1); err != ErrInvalidTarget {
		t.Errorf("expected ErrInvalidTarget for negative height, got %v", err)
	}
}

func TestRenderFrameEmptySceneIsBackground(t *testing.T) {
	bg := RGB(10, 20, 30)
	rs := NewRenderSystem(bg)

	fb, err := rs.RenderFrame(4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got := fb.GetPixel(x, y)
			if got != bg {
				t.Fatalf("pixel (%d,%d) = %+v, want background %+v", x, y, got, bg)
			}
		}
	}
}

func TestRenderFrameClearsInstanceQueue(t *testing.T) {
	rs := NewRenderSystem(RGB(0, 0, 0))
	rs.SetCamera(NewCamera())
	rs.SubmitInstance(NewCubeModel(1), math3d.Translate(math3d.V3(0, 0, 5)))

	if len(rs.instances) != 1 {
		t.Fatalf("expected 1 queued instance before render, got %d", len(rs.instances))
	}

	if _, err := rs.RenderFrame(16, 16); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rs.instances) != 0 {
		t.Errorf("expected instance queue cleared after RenderFrame, got %d", len(rs.instances))
	}
}

func TestRenderFrameReusesBuffersForSameSize(t *testing.T) {
	rs := NewRenderSystem(RGB(0, 0, 0))

	fb1, err := rs.RenderFrame(8, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fb2, err := rs.RenderFrame(8, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fb1 != fb2 {
		t.Errorf("expected the same framebuffer instance to be reused for an unchanged target size")
	}
}

func TestRenderFrameReallocatesOnResize(t *testing.T) {
	rs := NewRenderSystem(RGB(0, 0, 0))

	fb1, _ := rs.RenderFrame(8, 8)
	fb2, _ := rs.RenderFrame(16, 16)

	if fb1 == fb2 {
		t.Errorf("expected a new framebuffer after a target size change")
	}
	if fb2.Width != 16 || fb2.Height != 16 {
		t.Errorf("expected resized framebuffer to be 16x16, got %dx%d", fb2.Width, fb2.Height)
	}
}

func TestSetLightDoesNotMutateAcrossFrames(t *testing.T) {
	rs := NewRenderSystem(RGB(0, 0, 0))
	rs.SetCamera(NewCamera())

	light := NewLight(math3d.V3(1, 2, 3))
	rs.SetLight(light)

	if _, err := rs.RenderFrame(4, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := rs.RenderFrame(4, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rs.light.Position != light.Position {
		t.Errorf("RenderFrame must not mutate the stored light's position across calls; got %v, want %v", rs.light.Position, light.Position)
	}
}

func TestCubeRendersVisiblePixels(t *testing.T) {
	rs := NewRenderSystem(RGB(5, 5, 5))
	rs.SetCamera(Camera{Position: math3d.V3(0, 0, -5), VFOV: 60})
	rs.SetLight(NewLight(math3d.V3(2, 2, -5)))
	rs.SubmitInstance(NewCubeModel(1), math3d.Identity())

	fb, err := rs.RenderFrame(32, 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	drawn := false
	for y := 0; y < fb.Height && !drawn; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.GetPixel(x, y) != RGB(5, 5, 5) {
				drawn = true
				break
			}
		}
	}
	if !drawn {
		t.Errorf("expected a cube in front of the camera to draw at least one non-background pixel")
	}
}
