package render

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestDrawRectFillsArea(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.Clear(color.RGBA{0, 0, 0, 255})

	want := color.RGBA{200, 100, 50, 255}
	fb.DrawRect(2, 2, 3, 3, want)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if got := fb.GetPixel(x, y); got != want {
				t.Fatalf("GetPixel(%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
	if got := fb.GetPixel(1, 1); got == want {
		t.Errorf("pixel outside the rect got filled: %+v", got)
	}
	if got := fb.GetPixel(5, 5); got == want {
		t.Errorf("pixel outside the rect got filled: %+v", got)
	}
}

func TestDrawRectOutlineDrawsBorderOnly(t *testing.T) {
	fb := NewFramebuffer(6, 6)
	fb.Clear(color.RGBA{0, 0, 0, 255})

	want := color.RGBA{0, 255, 0, 255}
	fb.DrawRectOutline(1, 1, 4, 4, want)

	border := []struct{ x, y int }{
		{1, 1}, {2, 1}, {3, 1}, {4, 1},
		{1, 4}, {2, 4}, {3, 4}, {4, 4},
		{1, 2}, {1, 3}, {4, 2}, {4, 3},
	}
	for _, p := range border {
		if got := fb.GetPixel(p.x, p.y); got != want {
			t.Errorf("border pixel (%d,%d) = %+v, want %+v", p.x, p.y, got, want)
		}
	}
	if got := fb.GetPixel(2, 2); got == want {
		t.Errorf("interior pixel (2,2) was drawn, want untouched: %+v", got)
	}
}

func TestToImageMatchesFramebufferPixels(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.Clear(color.RGBA{10, 20, 30, 255})
	fb.SetPixel(2, 1, color.RGBA{255, 255, 255, 255})

	img := fb.ToImage()
	bounds := img.Bounds()
	if bounds.Dx() != fb.Width || bounds.Dy() != fb.Height {
		t.Fatalf("image bounds = %v, want %dx%d", bounds, fb.Width, fb.Height)
	}
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if got, want := img.RGBAAt(x, y), fb.GetPixel(x, y); got != want {
				t.Errorf("image pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestSavePNGRoundTrips(t *testing.T) {
	fb := NewFramebuffer(5, 5)
	fb.Clear(color.RGBA{0, 0, 0, 255})
	fb.DrawRectOutline(0, 0, 5, 5, color.RGBA{255, 0, 255, 255})

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := fb.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening saved PNG: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding saved PNG: %v", err)
	}
	if decoded.Bounds().Dx() != fb.Width || decoded.Bounds().Dy() != fb.Height {
		t.Fatalf("decoded image size = %v, want %dx%d", decoded.Bounds(), fb.Width, fb.Height)
	}
	r, g, b, a := decoded.At(0, 0).RGBA()
	if got := (color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}); got != (color.RGBA{255, 0, 255, 255}) {
		t.Errorf("decoded corner pixel = %+v, want the outline color", got)
	}
}
