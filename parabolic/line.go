package parabolic

import "math"

// Scratch holds the buffers a single worker reuses across every line it
// processes during one axis pass: the contact-point algorithm's temporary
// buffer, and the intersection algorithm's F/v/z envelope arrays. Callers
// allocate one Scratch per worker (see the executor package) and pass it
// to Line1D for every row that worker owns — the buffers grow to the
// largest line length seen and are never shrunk.
type Scratch[R Real] struct {
	tmp []R
	f   []float64
	v   []int
	z   []float64
}

// NewScratch allocates a Scratch sized for lines of length n. Passing 0
// is fine; buffers grow lazily on first use.
func NewScratch[R Real](n int) *Scratch[R] {
	s := &Scratch[R]{}
	s.grow(n)
	return s
}

func (s *Scratch[R]) grow(n int) {
	if cap(s.tmp) < n {
		s.tmp = make([]R, n)
	}
	s.tmp = s.tmp[:n]
	if cap(s.f) < n {
		s.f = make([]float64, n)
	}
	s.f = s.f[:n]
	if cap(s.v) < n {
		s.v = make([]int, n)
	}
	s.v = s.v[:n]
	if cap(s.z) < n+1 {
		s.z = make([]float64, n+1)
	}
	s.z = s.z[:n+1]
}

// DoLineCP runs the contact-point algorithm (spec.md section 4.1.1): two
// monotone sweeps, each advancing a contact offset by at most one step
// per position. magnitude must already carry mode's sign — positive for
// Dilate, negative for Erode — as derived by MagnitudeContactPoint.
// extreme seeds the per-position comparison and must be the most-negative
// representable value of the input pixel kind for Dilate, the
// most-positive for Erode (see PixelExtremes).
//
// line holds the input on entry and the result on return; scratch is
// used as temporary storage between the two sweeps and left with
// undefined content.
func DoLineCP[R Real](line, scratch []R, magnitude float64, mode Mode, extreme float64) {
	n := len(line)
	precondition("DoLineCP", len(scratch) >= n, "scratch shorter than line")
	if n == 0 {
		return
	}
	dilate := mode == Dilate

	// negative half of the parabola: backward sweep, input -> scratch
	koffset, newcontact := 0, 0
	for pos := 0; pos < n; pos++ {
		baseVal := extreme
		for krange := koffset; krange <= 0; krange++ {
			k := float64(krange)
			t := float64(line[pos+krange]) - magnitude*k*k
			if (dilate && t >= baseVal) || (!dilate && t <= baseVal) {
				baseVal = t
				newcontact = krange
			}
		}
		scratch[pos] = R(baseVal)
		koffset = newcontact - 1
	}

	// positive half of the parabola: forward sweep, scratch -> line
	koffset, newcontact = 0, 0
	for pos := n - 1; pos >= 0; pos-- {
		baseVal := extreme
		for krange := koffset; krange >= 0; krange-- {
			k := float64(krange)
			t := float64(scratch[pos+krange]) - magnitude*k*k
			if (dilate && t >= baseVal) || (!dilate && t <= baseVal) {
				baseVal = t
				newcontact = krange
			}
		}
		line[pos] = R(baseVal)
		koffset = newcontact + 1
	}
}

// DoLineIntAlg runs the intersection / lower-envelope algorithm (spec.md
// section 4.1.2): a single forward pass builds the lower (erosion) or
// upper (dilation) envelope of the N parabolas anchored at each column,
// then a reconstruction pass evaluates it. magnitude is always positive
// here — the dilate/erode distinction is carried entirely by the sign
// flips in the F/s/output formulas, not by the sign of magnitude (unlike
// DoLineCP). f, v, z are scratch of length >= n, >= n, >= n+1
// respectively.
func DoLineIntAlg[R Real](line []R, f []float64, v []int, z []float64, magnitude float64, mode Mode) {
	n := len(line)
	precondition("DoLineIntAlg", len(f) >= n && len(v) >= n && len(z) >= n+1, "scratch shorter than required")
	if n == 0 {
		return
	}
	dilate := mode == Dilate

	k := 0
	v[0] = 0
	z[0] = math.Inf(-1)
	z[1] = math.Inf(1)
	f[0] = float64(line[0]) / magnitude

	for q := 1; q < n; q++ {
		qf := float64(q)
		if dilate {
			f[q] = float64(line[q])/magnitude - qf*qf
		} else {
			f[q] = float64(line[q])/magnitude + qf*qf
		}

		k++
		var s float64
		for {
			k--
			if dilate {
				s = (f[q] - f[v[k]]) / (2.0 * (float64(v[k]) - qf))
			} else {
				s = (f[q] - f[v[k]]) / (2.0 * (qf - float64(v[k])))
			}
			if s > z[k] {
				break
			}
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}

	k = 0
	for q := 0; q < n; q++ {
		qf := float64(q)
		for z[k+1] < qf {
			k++
		}
		vk := float64(v[k])
		if dilate {
			line[q] = R((f[v[k]] - qf*(qf-2*vk)) * magnitude)
		} else {
			line[q] = R((qf*(qf-2*vk) + f[v[k]]) * magnitude)
		}
	}
}

// MagnitudeContactPoint derives the signed curvature DoLineCP expects from
// a caller-facing scale sigma (> 0) and a physical spacing s (1 when
// spacing is disabled): positive for Dilate, negative for Erode. This
// sign convention follows the reference implementation's template
// specialization rather than a sign-reversed restatement of it — see
// DESIGN.md for why.
func MagnitudeContactPoint(sigma, spacing float64, mode Mode) float64 {
	sign := 1.0
	if mode == Erode {
		sign = -1.0
	}
	return sign * spacing * spacing / (2.0 * sigma)
}

// MagnitudeIntersection derives the unsigned curvature DoLineIntAlg
// expects from sigma and spacing; the dilate/erode distinction lives
// entirely inside DoLineIntAlg, not in this magnitude.
func MagnitudeIntersection(sigma, spacing float64) float64 {
	return spacing * spacing / (2.0 * sigma)
}

// SelectAlgorithm implements the Auto policy from spec.md section 4.1.3:
// ContactPoint for narrow structuring parabolas (2*sigma below
// DefaultAutoThreshold), Intersection otherwise.
func SelectAlgorithm(algo Algorithm, sigma float64) Algorithm {
	if algo != Auto {
		return algo
	}
	if 2.0*sigma < DefaultAutoThreshold {
		return ContactPoint
	}
	return Intersection
}

// Line1D overwrites line in place with its 1-D parabolic dilation or
// erosion, dispatching to DoLineCP or DoLineIntAlg per algo (resolving
// Auto via SelectAlgorithm). scratch is grown to len(line) as needed.
// extreme is the PixelExtremes of line's original element kind, used
// only by the ContactPoint path.
func Line1D[R Real](line []R, scratch *Scratch[R], sigma, spacing float64, mode Mode, algo Algorithm, extreme PixelExtremes) {
	precondition("Line1D", sigma >= 0, "scale must be >= 0")
	precondition("Line1D", spacing > 0, "spacing must be > 0")
	if sigma == 0 || len(line) == 0 {
		return
	}
	n := len(line)
	scratch.grow(n)

	switch SelectAlgorithm(algo, sigma) {
	case ContactPoint:
		m := MagnitudeContactPoint(sigma, spacing, mode)
		DoLineCP(line, scratch.tmp[:n], m, mode, extremeFor(extreme, mode))
	default:
		m := MagnitudeIntersection(sigma, spacing)
		DoLineIntAlg(line, scratch.f[:n], scratch.v[:n], scratch.z[:n+1], m, mode)
	}
}
