package grid

import (
	"github.com/cockroachdb/errors"
)

// NewLabels returns the all-zero labeling of the given shape.
// Returns ErrEmptyShape if shape is empty or has a non-positive extent.
// Complexity: O(|S|) time and memory.
func NewLabels(shape ...int) (*Labels, error) {
	s := Shape(shape)
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &Labels{
		shape:   s.Clone(),
		strides: s.Strides(),
		data:    make([]int, s.Size()),
	}, nil
}

// FromSlice wraps data as a labeling of the given shape WITHOUT copying.
// Writes through the returned Labels are visible in data and vice versa.
// Returns ErrEmptyShape for an invalid shape, ErrDataLength if
// len(data) != shape.Size().
func FromSlice(shape Shape, data []int) (*Labels, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.Size() {
		return nil, errors.Wrapf(ErrDataLength, "got %d values for shape %v", len(data), shape)
	}

	return &Labels{
		shape:   shape.Clone(),
		strides: shape.Strides(),
		data:    data,
	}, nil
}

// Shape returns a copy of the spatial extents.
func (l *Labels) Shape() Shape {
	return l.shape.Clone()
}

// Len returns the number of positions.
func (l *Labels) Len() int {
	return len(l.data)
}

// Data returns the backing row-major storage. It is shared, not copied.
func (l *Labels) Data() []int {
	return l.data
}

// Clone returns a deep copy with independent storage.
func (l *Labels) Clone() *Labels {
	data := make([]int, len(l.data))
	copy(data, l.data)

	return &Labels{
		shape:   l.shape.Clone(),
		strides: append([]int(nil), l.strides...),
		data:    data,
	}
}

// Index maps a coordinate to its row-major position index.
// Returns ErrOutOfRange if the coordinate has the wrong arity or lies
// outside the grid.
func (l *Labels) Index(coord ...int) (int, error) {
	if len(coord) != len(l.shape) {
		return 0, errors.Wrapf(ErrOutOfRange, "coordinate %v has %d axes, grid has %d", coord, len(coord), len(l.shape))
	}
	idx := 0
	for axis, c := range coord {
		if c < 0 || c >= l.shape[axis] {
			return 0, errors.Wrapf(ErrOutOfRange, "coordinate %v", coord)
		}
		idx += c * l.strides[axis]
	}

	return idx, nil
}

// Coordinate converts a row-major index back to its coordinate.
// Returns ErrOutOfRange if idx is not a valid position.
func (l *Labels) Coordinate(idx int) ([]int, error) {
	if idx < 0 || idx >= len(l.data) {
		return nil, errors.Wrapf(ErrOutOfRange, "index %d", idx)
	}
	coord := make([]int, len(l.shape))
	for axis, stride := range l.strides {
		coord[axis] = idx / stride
		idx %= stride
	}

	return coord, nil
}

// At returns the label at coord.
func (l *Labels) At(coord ...int) (int, error) {
	idx, err := l.Index(coord...)
	if err != nil {
		return 0, err
	}

	return l.data[idx], nil
}

// Set stores label at coord.
func (l *Labels) Set(label int, coord ...int) error {
	idx, err := l.Index(coord...)
	if err != nil {
		return err
	}
	l.data[idx] = label

	return nil
}

// Fill assigns label to every position.
func (l *Labels) Fill(label int) {
	for i := range l.data {
		l.data[i] = label
	}
}
