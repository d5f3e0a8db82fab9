package parabolic

import (
	"github.com/parabolicmorph/sdt/executor"
	"github.com/parabolicmorph/sdt/ndimage"
)

// lineState is the per-worker reusable state handed out by Separable's
// executor.Run calls: a line buffer allocated at the current axis's
// length plus a Scratch sized for it. Mirrors the teacher's
// SeparableGaussianBlur, which reuses one kernel buffer per goroutine
// across every row/column it owns rather than allocating per line.
type lineState[R Real] struct {
	buf     []R
	scratch *Scratch[R]
}

// Separable runs ParabolicLine1D along every axis of src, writing the
// result to dst (spec.md section 4.2): axis 0 reads src and writes dst
// (or copies through when sigmas[0] == 0); every later axis reads and
// writes dst in place. dst and src must have identical shape but may
// be the same image only when every axis beyond 0 is processed after
// axis 0 has fully completed, which Separable itself guarantees via
// the happens-before join between axis passes — passing the same image
// as both dst and src is supported and is how OpenClose chains stages
// without an extra buffer.
//
// sigmas and spacing each hold one value per axis; spacing is taken as
// an explicit argument rather than read off dst/src so that
// UseImageSpacing=false (spec.md section 4.5/9) can pass a slice of 1s
// without mutating the image's own Spacing field. A zero sigma skips
// that axis (copy-through on axis 0, no-op on later axes). workers <= 0
// uses executor.DefaultWorkers.
func Separable[R Real](dst, src *ndimage.Image[R], sigmas, spacing []float64, mode Mode, algo Algorithm, extreme PixelExtremes, workers int) {
	precondition("Separable", dst.SameShape(src), "dst and src must have the same shape")
	precondition("Separable", len(sigmas) == src.NumAxes(), "one sigma per axis required")
	precondition("Separable", len(spacing) == src.NumAxes(), "one spacing value per axis required")

	axis0(dst, src, sigmas[0], spacing[0], mode, algo, extreme, workers)
	for axis := 1; axis < src.NumAxes(); axis++ {
		axisInPlace(dst, axis, sigmas[axis], spacing[axis], mode, algo, extreme, workers)
	}
}

func axis0[R Real](dst, src *ndimage.Image[R], sigma, spacing float64, mode Mode, algo Algorithm, extreme PixelExtremes, workers int) {
	n := src.NumLines(0)
	length := src.Size[0]
	executor.Run(n, workers,
		func() *lineState[R] {
			return &lineState[R]{buf: make([]R, length), scratch: NewScratch[R](length)}
		},
		func(st *lineState[R], r executor.Range) {
			for line := r.Start; line < r.End; line++ {
				src.Gather(0, line, st.buf)
				Line1D(st.buf, st.scratch, sigma, spacing, mode, algo, extreme)
				dst.Scatter(0, line, st.buf)
			}
		},
	)
}

func axisInPlace[R Real](img *ndimage.Image[R], axis int, sigma, spacing float64, mode Mode, algo Algorithm, extreme PixelExtremes, workers int) {
	n := img.NumLines(axis)
	length := img.Size[axis]
	executor.Run(n, workers,
		func() *lineState[R] {
			return &lineState[R]{buf: make([]R, length), scratch: NewScratch[R](length)}
		},
		func(st *lineState[R], r executor.Range) {
			for line := r.Start; line < r.End; line++ {
				img.Gather(axis, line, st.buf)
				Line1D(st.buf, st.scratch, sigma, spacing, mode, algo, extreme)
				img.Scatter(axis, line, st.buf)
			}
		},
	)
}

// UnitSpacing returns a slice of n 1.0 values, the spacing Separable
// and OpenClose use when UseImageSpacing is false.
func UnitSpacing(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = 1.0
	}
	return s
}
