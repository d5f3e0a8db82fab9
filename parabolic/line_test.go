package parabolic

import (
	"math"
	"testing"
)

func dilateLine(t *testing.T, line []float64, sigma float64, algo Algorithm) []float64 {
	t.Helper()
	out := append([]float64(nil), line...)
	s := NewScratch[float64](len(out))
	Line1D(out, s, sigma, 1.0, Dilate, algo, Float64Extremes)
	return out
}

func erodeLine(t *testing.T, line []float64, sigma float64, algo Algorithm) []float64 {
	t.Helper()
	out := append([]float64(nil), line...)
	s := NewScratch[float64](len(out))
	Line1D(out, s, sigma, 1.0, Erode, algo, Float64Extremes)
	return out
}

func negate(line []float64) []float64 {
	out := make([]float64, len(line))
	for i, v := range line {
		out[i] = -v
	}
	return out
}

func almostEqual(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// erode(f, sigma) == -dilate(-f, sigma), the exact sign duality spec.md
// section 4.1 states between the two modes.
func TestLine1D_ErodeDilateDuality(t *testing.T) {
	line := []float64{0, 0, 0, 10, 0, 0, 0, 3, -2, 5, 0}
	for _, algo := range []Algorithm{ContactPoint, Intersection} {
		eroded := erodeLine(t, line, 0.8, algo)
		dilatedNeg := negate(dilateLine(t, negate(line), 0.8, algo))
		if !almostEqual(eroded, dilatedNeg, 1e-9) {
			t.Fatalf("algo=%v: erode(f) = %v, -dilate(-f) = %v", algo, eroded, dilatedNeg)
		}
	}
}

// ContactPoint and Intersection are two implementations of the same
// envelope and must agree up to floating-point tolerance on any line.
func TestLine1D_AlgorithmAgreement(t *testing.T) {
	lines := [][]float64{
		{0, 0, 0, 10, 0, 0, 0},
		{1, 2, 3, 4, 5, 4, 3, 2, 1},
		{5, 5, 5, 5, 5},
		{0, 100, 0, 0, 0, 100, 0},
		{-3, -1, -4, -1, -5, -9, -2, -6},
	}
	sigmas := []float64{0.05, 0.2, 0.5, 1.0, 3.0}
	for _, line := range lines {
		for _, sigma := range sigmas {
			for _, mode := range []Mode{Dilate, Erode} {
				var cp, in []float64
				if mode == Dilate {
					cp = dilateLine(t, line, sigma, ContactPoint)
					in = dilateLine(t, line, sigma, Intersection)
				} else {
					cp = erodeLine(t, line, sigma, ContactPoint)
					in = erodeLine(t, line, sigma, Intersection)
				}
				maxAbs := 0.0
				for _, v := range line {
					if math.Abs(v) > maxAbs {
						maxAbs = math.Abs(v)
					}
				}
				tol := 1e-9 * (maxAbs + 1)
				if !almostEqual(cp, in, tol) {
					t.Fatalf("mode=%v sigma=%v line=%v: ContactPoint=%v Intersection=%v", mode, sigma, line, cp, in)
				}
			}
		}
	}
}

// Dilation is extensive (>= input) and erosion is anti-extensive
// (<= input) for any positive scale, a basic algebraic sanity check
// implied by the max/min formulas in spec.md section 4.1.
func TestLine1D_ExtensiveAntiExtensive(t *testing.T) {
	line := []float64{0, 2, -1, 10, 0, -4, 7, 1}
	for _, algo := range []Algorithm{ContactPoint, Intersection} {
		dilated := dilateLine(t, line, 0.7, algo)
		eroded := erodeLine(t, line, 0.7, algo)
		for i := range line {
			if dilated[i] < line[i]-1e-9 {
				t.Fatalf("algo=%v: dilation not extensive at %d: %v < %v", algo, i, dilated[i], line[i])
			}
			if eroded[i] > line[i]+1e-9 {
				t.Fatalf("algo=%v: erosion not anti-extensive at %d: %v > %v", algo, i, eroded[i], line[i])
			}
		}
	}
}

// At the location of a line's global maximum, a single parabolic
// dilation reproduces the original value exactly (m(p-q)^2 = 0 at q=p
// dominates since nothing else can exceed the max).
func TestLine1D_DilationFixesPeak(t *testing.T) {
	line := []float64{0, 0, 0, 10, 0, 0, 0}
	for _, algo := range []Algorithm{ContactPoint, Intersection} {
		dilated := dilateLine(t, line, 0.5, algo)
		if math.Abs(dilated[3]-10) > 1e-9 {
			t.Fatalf("algo=%v: dilation at peak = %v, want 10", algo, dilated[3])
		}
	}
}

func TestSelectAlgorithm(t *testing.T) {
	if got := SelectAlgorithm(ContactPoint, 5.0); got != ContactPoint {
		t.Fatalf("explicit ContactPoint overridden: got %v", got)
	}
	if got := SelectAlgorithm(Intersection, 0.001); got != Intersection {
		t.Fatalf("explicit Intersection overridden: got %v", got)
	}
	if got := SelectAlgorithm(Auto, 0.05); got != ContactPoint {
		t.Fatalf("Auto with narrow sigma = %v, want ContactPoint", got)
	}
	if got := SelectAlgorithm(Auto, 1.0); got != Intersection {
		t.Fatalf("Auto with wide sigma = %v, want Intersection", got)
	}
}

func TestMagnitudeContactPoint_Sign(t *testing.T) {
	if m := MagnitudeContactPoint(2.0, 1.0, Dilate); m <= 0 {
		t.Fatalf("dilate magnitude should be positive, got %v", m)
	}
	if m := MagnitudeContactPoint(2.0, 1.0, Erode); m >= 0 {
		t.Fatalf("erode magnitude should be negative, got %v", m)
	}
}

func TestLine1D_ZeroScaleIsIdentity(t *testing.T) {
	line := []float64{1, 2, 3, 4, 5}
	out := dilateLine(t, line, 0, Auto)
	if !almostEqual(out, line, 0) {
		t.Fatalf("zero scale changed line: %v", out)
	}
}
