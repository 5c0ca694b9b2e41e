package grid

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyShape indicates a shape with no axes or a non-positive extent.
	ErrEmptyShape = errors.New("grid: shape must have at least one axis and positive extents")
	// ErrDataLength indicates a backing slice whose length does not match the shape.
	ErrDataLength = errors.New("grid: data length does not match shape")
	// ErrOutOfRange indicates a coordinate or index outside the grid.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
)

// Shape holds the spatial extents (S1, …, SN) of a grid.
type Shape []int

// Validate reports ErrEmptyShape unless s has at least one axis and every
// extent is positive.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return ErrEmptyShape
	}
	for axis, n := range s {
		if n <= 0 {
			return errors.Wrapf(ErrEmptyShape, "axis %d has extent %d", axis, n)
		}
	}

	return nil
}

// Size returns the number of positions, the product of all extents.
func (s Shape) Size() int {
	size := 1
	for _, n := range s {
		size *= n
	}

	return size
}

// Strides returns the row-major strides: the index distance between a
// position and its successor along each axis.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	step := 1
	for axis := len(s) - 1; axis >= 0; axis-- {
		strides[axis] = step
		step *= s[axis]
	}

	return strides
}

// Equal reports whether s and o have identical extents.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	return append(Shape(nil), s...)
}

// Labels is a row-major N-dimensional grid of label indices.
// data is shared with the caller when built by FromSlice; shape and
// strides are immutable once built.
type Labels struct {
	shape   Shape
	strides []int
	data    []int
}
