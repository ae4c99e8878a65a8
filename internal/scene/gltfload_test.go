package scene

import (
	"math"
	"testing"

	"github.com/taigrr/vcam/pkg/math3d"
)

func TestNormalAtReturnsIndexedNormal(t *testing.T) {
	normals := []math3d.Vec3{math3d.V3(1, 0, 0), math3d.V3(0, 1, 0)}

	if got := normalAt(normals, 1); got != math3d.V3(0, 1, 0) {
		t.Errorf("normalAt(1) = %v, want (0,1,0)", got)
	}
}

func TestNormalAtFallsBackWhenOutOfRange(t *testing.T) {
	normals := []math3d.Vec3{math3d.V3(1, 0, 0)}

	got := normalAt(normals, 5)
	if got != math3d.V3(0, 0, 1) {
		t.Errorf("normalAt(out of range) = %v, want fallback (0,0,1)", got)
	}
}

func TestFaceNormalIsUnitLength(t *testing.T) {
	a := math3d.V3(0, 0, 0)
	b := math3d.V3(1, 0, 0)
	c := math3d.V3(0, 1, 0)

	n := faceNormal(a, b, c)
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("expected unit-length face normal, got len %v", n.Len())
	}
	if math.Abs(n.Z-1) > 1e-9 {
		t.Errorf("expected (0,0,1) facing +Z for this winding, got %v", n)
	}
}

func TestReadUint32LERoundTripsLittleEndian(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04, 0xFF}
	got := readUint32LE(b)
	want := uint32(0x04030201)
	if got != want {
		t.Errorf("readUint32LE() = %#x, want %#x", got, want)
	}
}
