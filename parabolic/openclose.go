package parabolic

import "github.com/parabolicmorph/sdt/ndimage"

// OpenCloseMode selects which composite operator OpenClose runs.
type OpenCloseMode int

const (
	Open OpenCloseMode = iota
	Close
)

func (m OpenCloseMode) stages() (Mode, Mode) {
	if m == Open {
		return Erode, Dilate
	}
	return Dilate, Erode
}

// OpenClose runs a two-stage morphological opening or closing (spec.md
// section 4.3): stage 1 runs Separable src -> dst with mode.stages()'s
// first mode, stage 2 runs Separable dst -> dst in place with the
// second mode. This is the reference driver's two full GenerateData
// passes with m_Stage flipping the mode between them
// (itkParabolicOpenCloseImageFilter.hxx), restructured as two calls to
// Separable instead of duplicating its axis loop.
//
// sigmas, spacing, algo and extreme are shared by both stages, matching
// the reference filter's single ScaleArray/ParabolicAlgorithm applied
// across the whole open/close operation.
func OpenClose[R Real](dst, src *ndimage.Image[R], sigmas, spacing []float64, mode OpenCloseMode, algo Algorithm, extreme PixelExtremes, workers int) {
	first, second := mode.stages()
	Separable(dst, src, sigmas, spacing, first, algo, extreme, workers)
	Separable(dst, dst, sigmas, spacing, second, algo, extreme, workers)
}
