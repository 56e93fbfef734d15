package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is returned when a shape has no dimensions, a
	// dimension below 1, or does not match the data length.
	ErrInvalidShape = errors.New("core: invalid array shape")

	// ErrInvalidAxis is returned when an axis is outside [0, NDim).
	ErrInvalidAxis = errors.New("core: invalid axis")
)

// Array is a dense N-dimensional float64 array stored in row-major order.
//
// The last axis is contiguous. An Array never shares its backing storage with
// the slices passed to [FromSlice] or returned by [Array.Values].
type Array struct {
	shape []int
	data  []float64
}

// Lane addresses one 1-D slice of an [Array] along a fixed axis.
//
// Element i of the lane lives at data[Offset + i*Stride].
type Lane struct {
	Offset int
	Stride int
	Len    int
}

// NewArray returns a zero-filled array of the given shape.
func NewArray(shape ...int) (*Array, error) {
	n, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}

	return &Array{
		shape: append([]int(nil), shape...),
		data:  make([]float64, n),
	}, nil
}

// FromSlice returns an array holding a copy of data with the given shape.
// len(data) must equal the product of shape.
func FromSlice(data []float64, shape ...int) (*Array, error) {
	n, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}

	if n != len(data) {
		return nil, fmt.Errorf("%w: shape %v holds %d values, got %d", ErrInvalidShape, shape, n, len(data))
	}

	return &Array{
		shape: append([]int(nil), shape...),
		data:  append([]float64(nil), data...),
	}, nil
}

// Shape returns a copy of the array dimensions.
func (a *Array) Shape() []int {
	return append([]int(nil), a.shape...)
}

// NDim returns the number of dimensions.
func (a *Array) NDim() int {
	return len(a.shape)
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	return len(a.data)
}

// Dim returns the length of the given axis.
func (a *Array) Dim(axis int) (int, error) {
	if err := a.checkAxis(axis); err != nil {
		return 0, err
	}

	return a.shape[axis], nil
}

// Values returns a copy of the row-major data.
func (a *Array) Values() []float64 {
	return append([]float64(nil), a.data...)
}

// At returns the element at the given index. It panics if the index rank or
// any coordinate is out of range.
func (a *Array) At(idx ...int) float64 {
	return a.data[a.flatIndex(idx)]
}

// Set stores v at the given index. It panics on an out-of-range index.
func (a *Array) Set(v float64, idx ...int) {
	a.data[a.flatIndex(idx)] = v
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	return &Array{
		shape: append([]int(nil), a.shape...),
		data:  append([]float64(nil), a.data...),
	}
}

// Lanes returns every 1-D lane along axis, in row-major order of the
// remaining axes.
func (a *Array) Lanes(axis int) ([]Lane, error) {
	if err := a.checkAxis(axis); err != nil {
		return nil, err
	}

	n := a.shape[axis]

	inner := 1
	for _, d := range a.shape[axis+1:] {
		inner *= d
	}

	outer := len(a.data) / (n * inner)

	lanes := make([]Lane, 0, outer*inner)
	for o := range outer {
		base := o * n * inner
		for i := range inner {
			lanes = append(lanes, Lane{Offset: base + i, Stride: inner, Len: n})
		}
	}

	return lanes, nil
}

// ReadLane copies the lane into dst, reusing its capacity, and returns it.
func (a *Array) ReadLane(l Lane, dst []float64) []float64 {
	dst = EnsureLen(dst, l.Len)
	for i := range dst {
		dst[i] = a.data[l.Offset+i*l.Stride]
	}

	return dst
}

// WriteLane copies src into the lane. len(src) must equal l.Len.
func (a *Array) WriteLane(l Lane, src []float64) {
	_ = src[l.Len-1] // bounds check hint
	for i := range l.Len {
		a.data[l.Offset+i*l.Stride] = src[i]
	}
}

func (a *Array) checkAxis(axis int) error {
	if axis < 0 || axis >= len(a.shape) {
		return fmt.Errorf("%w: %d for %d-dimensional array", ErrInvalidAxis, axis, len(a.shape))
	}

	return nil
}

func (a *Array) flatIndex(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("core: index rank %d, array rank %d", len(idx), len(a.shape)))
	}

	flat := 0
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			panic(fmt.Sprintf("core: index %d out of range for axis %d (len %d)", i, d, a.shape[d]))
		}

		flat = flat*a.shape[d] + i
	}

	return flat
}

func shapeSize(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, fmt.Errorf("%w: no dimensions", ErrInvalidShape)
	}

	n := 1
	for _, d := range shape {
		if d < 1 {
			return 0, fmt.Errorf("%w: %v", ErrInvalidShape, shape)
		}

		n *= d
	}

	return n, nil
}
