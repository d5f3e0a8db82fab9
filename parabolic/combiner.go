package parabolic

import (
	"math"

	"github.com/parabolicmorph/sdt/internal/logging"
)

// underflowLogger receives a debug-level event whenever CombineSDT
// clamps a negative radicand to 0 (spec.md section 7's policy for
// arithmetic underflow: clamp, don't fail, but make it observable).
// nil by default — SetUnderflowLogger opts in.
var underflowLogger *logging.Logger

// SetUnderflowLogger installs the logger CombineSDT reports clamped
// underflows to. Passing nil (the default) disables the reports.
func SetUnderflowLogger(l *logging.Logger) {
	underflowLogger = l
}

// CombineSDT implements the ternary combiner spec.md section 4.4 and
// itkMorphSDTHelperImageFilter.h's Function::MorphSDTHelper pin down:
// given the thresholded/eroded field a, the thresholded/dilated field b
// and the original thresholded field c (used only for its sign), it
// returns
//
//	sqrt(a + maxDist)   if c > 0
//	-sqrt(maxDist - b)  otherwise
//
// maxDist is SDTPipeline's per-pixel squared-distance ceiling (spec.md
// section 4.5); InsideIsPositive is applied upstream, in the threshold
// step, not here — this function returns a positive value wherever
// c > 0, so the threshold's fill values decide which side reads
// positive.
//
// a+maxDist and maxDist-b are mathematically non-negative but can land
// a few ULPs below zero from floating-point rounding right at the mask
// boundary; sqrtClamp floors the argument to 0 rather than propagating
// NaN.
func CombineSDT(a, b, c, maxDist float64) float64 {
	if c > 0 {
		return math.Sqrt(sqrtClamp("a+maxDist", a+maxDist))
	}
	return -math.Sqrt(sqrtClamp("maxDist-b", maxDist-b))
}

func sqrtClamp(which string, v float64) float64 {
	if v < 0 {
		if underflowLogger != nil {
			underflowLogger.Debug("parabolic.CombineSDT", "clamped negative radicand to 0",
				map[string]interface{}{"term": which, "value": v})
		}
		return 0
	}
	return v
}

// CombineSDTInto applies CombineSDT element-wise over three equal-length
// slices, writing into out. out may alias a or b. Grounded on the
// teacher's pkg/stdimg/filters.go UnsharpMask loop shape (three aligned
// buffers walked in lockstep).
func CombineSDTInto(out, a, b, c []float64, maxDist float64) {
	precondition("CombineSDTInto", len(out) == len(a) && len(a) == len(b) && len(b) == len(c),
		"out, a, b, c must have equal length")
	for i := range out {
		out[i] = CombineSDT(a[i], b[i], c[i], maxDist)
	}
}
