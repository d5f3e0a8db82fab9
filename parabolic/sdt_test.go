package parabolic

import (
	"math"
	"testing"

	"github.com/parabolicmorph/sdt/ndimage"
)

// A single isolated "outside" pixel surrounded by "inside" reduces the
// whole pipeline to a textbook point-seed Euclidean distance transform:
// the defect itself reads -1 (its nearest inside pixel is one step away),
// its 4-neighbors 1, its diagonal neighbors sqrt(2), and so on — exactly, not
// approximately, since the separable erosion/dilation passes compute
// the discrete squared EDT exactly for integer-spaced grids.
func TestSignedDistanceTransform_PointSeed(t *testing.T) {
	const n = 9
	mask := ndimage.New[float64]([]int{n, n})
	for i := range mask.Data {
		mask.Data[i] = 1
	}
	center := n / 2
	mask.Set([]int{center, center}, 0)

	opts := DefaultSDTOptions()
	opts.InsideIsPositive = true
	out := SignedDistanceTransform(mask, opts)

	check := func(row, col int, want float64) {
		t.Helper()
		got := out.At([]int{row, col})
		if math.Abs(got-want) > 1e-6 {
			t.Fatalf("(%d,%d): got %v want %v", row, col, got, want)
		}
	}

	// At the defect pixel itself, the nearest differently-labeled pixel
	// is a 4-neighbor at distance 1; the sign is negative because the
	// defect is on the "outside" side of the mask.
	check(center, center, -1)
	check(center-1, center, 1)
	check(center+1, center, 1)
	check(center, center-1, 1)
	check(center, center+1, 1)
	check(center-1, center-1, math.Sqrt2)
	check(center-1, center+1, math.Sqrt2)
	check(center+1, center+1, math.Sqrt2)
	check(0, 0, math.Hypot(float64(center), float64(center)))
}

// Flipping InsideIsPositive negates the whole field: the boundary stays
// in the same place but which side reads positive swaps.
func TestSignedDistanceTransform_InsideIsPositiveFlipsSign(t *testing.T) {
	const n = 9
	mask := ndimage.New[float64]([]int{n, n})
	for i := range mask.Data {
		mask.Data[i] = 1
	}
	center := n / 2
	mask.Set([]int{center, center}, 0)

	optsPos := DefaultSDTOptions()
	optsPos.InsideIsPositive = true
	outPos := SignedDistanceTransform(mask, optsPos)

	optsNeg := DefaultSDTOptions()
	optsNeg.InsideIsPositive = false
	outNeg := SignedDistanceTransform(mask, optsNeg)

	for i := range outPos.Data {
		if math.Abs(outPos.Data[i]+outNeg.Data[i]) > 1e-6 {
			t.Fatalf("element %d: %v and %v are not negatives of each other", i, outPos.Data[i], outNeg.Data[i])
		}
	}
}

func TestMaxDistance_UnitSpacing(t *testing.T) {
	img := ndimage.New[float64]([]int{4, 3})
	got := MaxDistance(img, false)
	want := 4.0*4.0 + 3.0*3.0
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestMaxDistance_WithSpacing(t *testing.T) {
	img := ndimage.NewWithSpacing[float64]([]int{4, 3}, []float64{2.0, 0.5})
	got := MaxDistance(img, true)
	want := (4.0*2.0)*(4.0*2.0) + (3.0*0.5)*(3.0*0.5)
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestThreshold_InsideOutsideValues(t *testing.T) {
	mask := ndimage.New[float64]([]int{1, 3})
	mask.Data[0] = 1
	mask.Data[1] = 0
	mask.Data[2] = -5

	out := Threshold(mask, 10, 0, true)
	want := []float64{10, -10, 10}
	for i := range want {
		if out.Data[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, out.Data[i], want[i])
		}
	}

	outFlipped := Threshold(mask, 10, 0, false)
	for i := range want {
		if outFlipped.Data[i] != -want[i] {
			t.Fatalf("flipped index %d: got %v want %v", i, outFlipped.Data[i], -want[i])
		}
	}
}

func TestThreshold_NonzeroOutsideValue(t *testing.T) {
	mask := ndimage.New[float64]([]int{1, 3})
	mask.Data[0] = 7
	mask.Data[1] = 7
	mask.Data[2] = 1

	out := Threshold(mask, 10, 7, true)
	want := []float64{-10, -10, 10}
	for i := range want {
		if out.Data[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, out.Data[i], want[i])
		}
	}
}
