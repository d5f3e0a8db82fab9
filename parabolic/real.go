package parabolic

import "math"

// Real is the accumulator type the 1-D kernel and its callers compute in.
// float64 is recommended for anything beyond small test images: single
// precision is not supported for large SDTs.
type Real interface {
	~float32 | ~float64
}

// Mode selects parabolic dilation or erosion. The two are exact sign
// duals of each other (erode(f, σ) = -dilate(-f, σ)). DoLineCP carries
// the mode in the sign of its magnitude; DoLineIntAlg takes an unsigned
// magnitude and flips signs in its formulas. Both share one loop body
// between modes and test the mode inside it.
type Mode int

const (
	Dilate Mode = iota
	Erode
)

func (m Mode) String() string {
	if m == Dilate {
		return "dilate"
	}
	return "erode"
}

// Algorithm selects which 1-D envelope implementation ParabolicLine1D
// uses. Auto picks ContactPoint for narrow structuring parabolas and
// Intersection otherwise (see DefaultAutoThreshold).
type Algorithm int

const (
	Auto Algorithm = iota
	ContactPoint
	Intersection
)

// DefaultAutoThreshold is the curvature-scale cutoff used by Algorithm
// Auto: ContactPoint is chosen when 2σ is below this value (tiny
// structuring parabolas, narrow support, where the contact-offset
// search sweeps are amortized nearly constant); Intersection is chosen
// otherwise. This is a documented heuristic, not a derived constant —
// see SPEC_FULL.md section 10.
const DefaultAutoThreshold = 0.2

// PixelExtremes carries the most-negative and most-positive representable
// values of an input pixel's element kind, expressed in the Real
// accumulator type. DoLineCP initializes its running BaseVal to the
// extreme of the *input* pixel type, not of the Real accumulator — see
// Design Notes in spec.md section 9.
type PixelExtremes struct {
	Min float64
	Max float64
}

var (
	Uint8Extremes   = PixelExtremes{Min: 0, Max: 255}
	Uint16Extremes  = PixelExtremes{Min: 0, Max: 65535}
	Int16Extremes   = PixelExtremes{Min: -32768, Max: 32767}
	Int32Extremes   = PixelExtremes{Min: math.MinInt32, Max: math.MaxInt32}
	Float32Extremes = PixelExtremes{Min: -math.MaxFloat32, Max: math.MaxFloat32}
	Float64Extremes = PixelExtremes{Min: -math.MaxFloat64, Max: math.MaxFloat64}
)

// extremeFor returns the BaseVal seed for the given mode: the most
// negative representable value for dilation (any real line value
// dominates it in the ">=" comparison), the most positive for erosion.
func extremeFor(px PixelExtremes, mode Mode) float64 {
	if mode == Dilate {
		return px.Min
	}
	return px.Max
}
