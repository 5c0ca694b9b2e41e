package grid

// ForEachPair calls fn(p, q) once for every axis-aligned neighbor pair of a
// grid with the given shape, where q = p + stride[axis].
//
// Order: axis 0 first, then axis 1, …; within an axis, ascending p. This is
// the "interior-shifted slices" enumeration: for each axis the positions
// with coordinate < S-1 along that axis pair with their successor.
//
// Complexity: O(|S|·N) time, O(N) memory.
func ForEachPair(shape Shape, fn func(p, q int)) {
	forEachPair(shape, shape.Strides(), fn)
}

// ForEachPair is ForEachPair over the grid's own shape.
func (l *Labels) ForEachPair(fn func(p, q int)) {
	forEachPair(l.shape, l.strides, fn)
}

func forEachPair(shape Shape, strides []int, fn func(p, q int)) {
	size := shape.Size()
	for axis, stride := range strides {
		extent := shape[axis]
		for p := 0; p < size; p++ {
			if (p/stride)%extent == extent-1 {
				continue // last slice along this axis has no successor
			}
			fn(p, p+stride)
		}
	}
}

// ForEachNeighbor calls fn(q) for every axis-aligned neighbor q of
// position p, predecessor before successor, axis by axis.
// Complexity: O(N).
func ForEachNeighbor(shape Shape, p int, fn func(q int)) {
	forEachNeighbor(shape, shape.Strides(), p, fn)
}

// ForEachNeighbor is ForEachNeighbor over the grid's own shape. It does not
// allocate.
func (l *Labels) ForEachNeighbor(p int, fn func(q int)) {
	forEachNeighbor(l.shape, l.strides, p, fn)
}

func forEachNeighbor(shape Shape, strides []int, p int, fn func(q int)) {
	for axis, stride := range strides {
		c := (p / stride) % shape[axis]
		if c > 0 {
			fn(p - stride)
		}
		if c < shape[axis]-1 {
			fn(p + stride)
		}
	}
}

// NumPairs returns the number of pairs ForEachPair enumerates:
// Σ_axis (S_axis − 1) · Π_{other} S_other.
func NumPairs(shape Shape) int {
	size := shape.Size()
	total := 0
	for _, n := range shape {
		total += size / n * (n - 1)
	}

	return total
}
