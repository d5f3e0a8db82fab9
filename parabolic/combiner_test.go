package parabolic

import (
	"math"
	"testing"
)

func TestCombineSDT_InsidePositiveBranch(t *testing.T) {
	// c > 0 selects sqrt(a + maxDist).
	got := CombineSDT(5, 999, 1, 20)
	want := math.Sqrt(25)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestCombineSDT_OutsideBranch(t *testing.T) {
	// c <= 0 selects -sqrt(maxDist - b).
	got := CombineSDT(999, 11, -1, 20)
	want := -math.Sqrt(9)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestCombineSDT_ZeroSign(t *testing.T) {
	// c == 0 is not > 0, so it takes the outside branch.
	got := CombineSDT(999, 4, 0, 20)
	want := -math.Sqrt(16)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestCombineSDT_ClampsNegativeRadicand(t *testing.T) {
	if got := CombineSDT(-20.0000001, 0, 1, 20); got != 0 {
		t.Fatalf("a+maxDist slightly negative: got %v want 0", got)
	}
	if got := CombineSDT(0, 20.0000001, -1, 20); got != 0 {
		t.Fatalf("maxDist-b slightly negative: got %v want 0", got)
	}
}

func TestCombineSDTInto_ElementWise(t *testing.T) {
	a := []float64{5, 999, 999}
	b := []float64{999, 11, 4}
	c := []float64{1, -1, 0}
	out := make([]float64, 3)
	CombineSDTInto(out, a, b, c, 20)
	want := []float64{math.Sqrt(25), -math.Sqrt(9), -math.Sqrt(16)}
	for i := range out {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: got %v want %v", i, out[i], want[i])
		}
	}
}

func TestCombineSDTInto_PanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on mismatched lengths")
		}
	}()
	CombineSDTInto(make([]float64, 2), make([]float64, 3), make([]float64, 3), make([]float64, 3), 1)
}
