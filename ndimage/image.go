// Package ndimage provides a small N-dimensional dense array type, the
// external "image abstraction" collaborator the parabolic package's
// separable driver is built against. It follows the teacher's
// small-honest-helper idiom (pkg/stdimg/imgutils.go's ToNRGBA/CloneNRGBA)
// rather than wrapping a general imaging library: the morphology code
// only ever needs a flat scalar buffer with per-axis size/spacing and a
// way to gather/scatter one axis-aligned line at a time.
package ndimage

import "fmt"

// Image is a dense row-major (C-order) N-dimensional array of scalar
// samples with a per-axis physical spacing. Axis 0 varies slowest in
// the backing Data slice, matching the teacher's row-major raster
// convention carried over from 2-D images.
type Image[R Numeric] struct {
	Data    []R
	Size    []int
	Spacing []float64
	strides []int
}

// Numeric is the element kind an Image can hold: parabolic.Real's two
// float kinds plus fixed-width integer pixel kinds. It is declared
// independently since ndimage does not import parabolic (the dependency
// runs the other way).
type Numeric interface {
	~float32 | ~float64 | ~int8 | ~int16 | ~int32 | ~uint8 | ~uint16
}

// New allocates a zeroed Image with unit spacing on every axis.
func New[R Numeric](size []int) *Image[R] {
	spacing := make([]float64, len(size))
	for i := range spacing {
		spacing[i] = 1.0
	}
	return NewWithSpacing[R](size, spacing)
}

// NewWithSpacing allocates a zeroed Image with the given per-axis
// physical spacing.
func NewWithSpacing[R Numeric](size []int, spacing []float64) *Image[R] {
	if len(size) != len(spacing) {
		panic(fmt.Sprintf("ndimage: len(size)=%d != len(spacing)=%d", len(size), len(spacing)))
	}
	n := 1
	for _, s := range size {
		if s < 0 {
			panic(fmt.Sprintf("ndimage: negative axis size %d", s))
		}
		n *= s
	}
	img := &Image[R]{
		Data:    make([]R, n),
		Size:    append([]int(nil), size...),
		Spacing: append([]float64(nil), spacing...),
	}
	img.computeStrides()
	return img
}

func (img *Image[R]) computeStrides() {
	n := len(img.Size)
	img.strides = make([]int, n)
	stride := 1
	for axis := n - 1; axis >= 0; axis-- {
		img.strides[axis] = stride
		stride *= img.Size[axis]
	}
}

// NumAxes returns the dimensionality of the image.
func (img *Image[R]) NumAxes() int { return len(img.Size) }

// Clone returns a deep copy sharing no backing storage with img.
func (img *Image[R]) Clone() *Image[R] {
	out := &Image[R]{
		Data:    append([]R(nil), img.Data...),
		Size:    append([]int(nil), img.Size...),
		Spacing: append([]float64(nil), img.Spacing...),
		strides: append([]int(nil), img.strides...),
	}
	return out
}

// SameShape reports whether two images have identical Size (spacing is
// not compared; pipelines may legitimately reuse a shape with different
// spacing only in pathological tests).
func (img *Image[R]) SameShape(other *Image[R]) bool {
	if len(img.Size) != len(other.Size) {
		return false
	}
	for i := range img.Size {
		if img.Size[i] != other.Size[i] {
			return false
		}
	}
	return true
}

// NumLines returns how many axis-aligned lines of length Size[axis]
// tile the image — the product of every other axis's size.
func (img *Image[R]) NumLines(axis int) int {
	n := 1
	for a, s := range img.Size {
		if a != axis {
			n *= s
		}
	}
	return n
}

// lineOrigin returns the flat Data offset of element 0 along axis for
// the lineIndex-th line, where lineIndex enumerates the Cartesian
// product of every other axis's coordinates in row-major order.
func (img *Image[R]) lineOrigin(axis, lineIndex int) int {
	offset := 0
	rem := lineIndex
	for a := len(img.Size) - 1; a >= 0; a-- {
		if a == axis {
			continue
		}
		coord := rem % img.Size[a]
		rem /= img.Size[a]
		offset += coord * img.strides[a]
	}
	return offset
}

// Gather copies the lineIndex-th line along axis into dst, which must
// have length Size[axis].
func (img *Image[R]) Gather(axis, lineIndex int, dst []R) {
	n := img.Size[axis]
	if len(dst) != n {
		panic(fmt.Sprintf("ndimage: Gather dst length %d != axis length %d", len(dst), n))
	}
	origin := img.lineOrigin(axis, lineIndex)
	stride := img.strides[axis]
	for i := 0; i < n; i++ {
		dst[i] = img.Data[origin+i*stride]
	}
}

// Scatter writes src back into the lineIndex-th line along axis.
func (img *Image[R]) Scatter(axis, lineIndex int, src []R) {
	n := img.Size[axis]
	if len(src) != n {
		panic(fmt.Sprintf("ndimage: Scatter src length %d != axis length %d", len(src), n))
	}
	origin := img.lineOrigin(axis, lineIndex)
	stride := img.strides[axis]
	for i := 0; i < n; i++ {
		img.Data[origin+i*stride] = src[i]
	}
}

// GatherFrom copies the lineIndex-th line along axis from src (a
// differently-backed image of identical shape) into dst; it is
// equivalent to src.Gather(axis, lineIndex, dst).
func GatherFrom[R Numeric](src *Image[R], axis, lineIndex int, dst []R) {
	src.Gather(axis, lineIndex, dst)
}

// At returns the sample at the given N-D coordinate.
func (img *Image[R]) At(coord []int) R {
	return img.Data[img.offset(coord)]
}

// Set writes the sample at the given N-D coordinate.
func (img *Image[R]) Set(coord []int, v R) {
	img.Data[img.offset(coord)] = v
}

func (img *Image[R]) offset(coord []int) int {
	if len(coord) != len(img.Size) {
		panic(fmt.Sprintf("ndimage: coord length %d != %d axes", len(coord), len(img.Size)))
	}
	off := 0
	for a, c := range coord {
		off += c * img.strides[a]
	}
	return off
}
