package tensor

import "fmt"

// Shape holds the mode (axis) sizes of a tensor, outermost mode first.
// Element layout is row-major: the last mode varies fastest.
type Shape []int

// ModeCount returns the number of modes.
func (s Shape) ModeCount() int { return len(s) }

// ElementCount returns the total number of addressable elements.
// A 0-mode shape addresses exactly one element.
func (s Shape) ElementCount() int {
	n := 1
	for _, size := range s {
		n *= size
	}
	return n
}

// Validate checks that every mode size is positive.
func (s Shape) Validate() error {
	for d, size := range s {
		if size <= 0 {
			return fmt.Errorf("shape %v has non-positive size %d in mode %d: %w", s, size, d, ErrShapeMismatch)
		}
	}
	return nil
}

// Equal reports whether two shapes have the same mode sizes.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for d := range s {
		if s[d] != other[d] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides returns the row-major stride of every mode: the flat distance
// between buffer neighbors along that mode.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	run := 1
	for d := len(s) - 1; d >= 0; d-- {
		strides[d] = run
		run *= s[d]
	}
	return strides
}

// FlatOffset returns the row-major buffer offset of the given multi-index,
// accumulated Horner-style from the outermost mode inward. The index must
// supply one coordinate per mode, each within [0, size) of its mode;
// out-of-range coordinates are an error, never clamped or wrapped.
// A 0-mode shape maps the empty index to offset 0.
func (s Shape) FlatOffset(index ...int) (int, error) {
	if len(index) != len(s) {
		return 0, fmt.Errorf("flat offset: got %d coordinates for %d modes: %w", len(index), len(s), ErrShapeMismatch)
	}
	offset := 0
	for d, size := range s {
		c := index[d]
		if c < 0 || c >= size {
			return 0, fmt.Errorf("flat offset: coordinate %d outside [0, %d) in mode %d: %w", c, size, d, ErrIndexOutOfRange)
		}
		offset = offset*size + c
	}
	return offset, nil
}

// MultiIndex returns the multi-index addressing the given flat offset,
// peeling coordinates from the innermost mode outward. It is the inverse
// of FlatOffset for every offset within [0, ElementCount()).
func (s Shape) MultiIndex(offset int) ([]int, error) {
	if offset < 0 || offset >= s.ElementCount() {
		return nil, fmt.Errorf("multi index: offset %d outside [0, %d): %w", offset, s.ElementCount(), ErrIndexOutOfRange)
	}
	index := make([]int, len(s))
	for d := len(s) - 1; d >= 0; d-- {
		index[d] = offset % s[d]
		offset /= s[d]
	}
	return index, nil
}

// MoveOffset returns the offset reached from offset by shifting the
// coordinate of one mode by delta, leaving every other mode in place.
// It is the flat offset of the unit vector scaled by delta, so it costs
// O(ModeCount) and never touches element data. The caller is responsible
// for keeping the resulting coordinate in range.
func (s Shape) MoveOffset(offset, delta, mode int) int {
	step := delta
	for d := mode + 1; d < len(s); d++ {
		step *= s[d]
	}
	return offset + step
}
