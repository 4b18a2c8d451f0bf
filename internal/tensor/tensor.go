package tensor

import "fmt"

// Tensor is a dense multidimensional array with element type T.
// Values are stored row-major: the last mode varies fastest.
//
// Every operation that produces a tensor allocates a fresh value
// buffer. Tensors never share memory, so mutating one tensor cannot
// change another.
//
// All operations run synchronously on the calling goroutine. A tensor
// is safe for concurrent reads; Set and SetSlice need external
// synchronization.
//
// Example:
//
//	t, err := tensor.New(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
//	v := t.At(1, 2) // 6
type Tensor[T Element] struct {
	shape  Shape
	values []T
	names  []string // optional per-mode names, nil when unset
}

// New creates a tensor of the given shape from values in row-major
// order. The values slice is copied; the caller keeps ownership of it.
func New[T Element](shape Shape, values []T) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if n := shape.ElementCount(); len(values) != n {
		return nil, fmt.Errorf("shape %v holds %d elements, got %d values: %w", shape, n, len(values), ErrShapeMismatch)
	}
	t := &Tensor[T]{
		shape:  shape.Clone(),
		values: make([]T, len(values)),
	}
	copy(t.values, values)
	return t, nil
}

// newOwned wraps an already-validated shape and value buffer without
// copying. The caller must not retain either argument.
func newOwned[T Element](shape Shape, values []T) *Tensor[T] {
	return &Tensor[T]{shape: shape, values: values}
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// ModeCount returns the number of modes.
func (t *Tensor[T]) ModeCount() int {
	return t.shape.ModeCount()
}

// ModeSize returns the size of one mode.
// Panics if the mode does not exist.
func (t *Tensor[T]) ModeSize(mode int) int {
	if mode < 0 || mode >= len(t.shape) {
		panic(fmt.Sprintf("mode %d out of range for %d modes", mode, len(t.shape)))
	}
	return t.shape[mode]
}

// ElementCount returns the total number of elements.
func (t *Tensor[T]) ElementCount() int {
	return t.shape.ElementCount()
}

// Values returns the tensor's backing slice in row-major order.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Values() []T {
	return t.values
}

// At returns the element at the given multi-index.
// Panics if the index arity or a coordinate is out of range.
//
// Example:
//
//	t.At(1, 2) // row 1, column 2 of a matrix
func (t *Tensor[T]) At(index ...int) T {
	offset, err := t.shape.FlatOffset(index...)
	if err != nil {
		panic(fmt.Sprintf("At%v on shape %v: %v", index, t.shape, err))
	}
	return t.values[offset]
}

// Set stores value at the given multi-index.
// Panics if the index arity or a coordinate is out of range.
func (t *Tensor[T]) Set(value T, index ...int) {
	offset, err := t.shape.FlatOffset(index...)
	if err != nil {
		panic(fmt.Sprintf("Set%v on shape %v: %v", index, t.shape, err))
	}
	t.values[offset] = value
}

// AtOffset returns the element at the given row-major offset.
// Panics if the offset is out of range.
func (t *Tensor[T]) AtOffset(offset int) T {
	if offset < 0 || offset >= len(t.values) {
		panic(fmt.Sprintf("offset %d out of range for %d elements", offset, len(t.values)))
	}
	return t.values[offset]
}

// SetOffset stores value at the given row-major offset.
// Panics if the offset is out of range.
func (t *Tensor[T]) SetOffset(offset int, value T) {
	if offset < 0 || offset >= len(t.values) {
		panic(fmt.Sprintf("offset %d out of range for %d elements", offset, len(t.values)))
	}
	t.values[offset] = value
}

// Item returns the value of a single-element tensor.
// Panics if the tensor holds more than one element.
func (t *Tensor[T]) Item() T {
	if len(t.values) != 1 {
		panic(fmt.Sprintf("Item() needs a single-element tensor, got shape %v", t.shape))
	}
	return t.values[0]
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	c := &Tensor[T]{
		shape:  t.shape.Clone(),
		values: make([]T, len(t.values)),
	}
	copy(c.values, t.values)
	if t.names != nil {
		c.names = make([]string, len(t.names))
		copy(c.names, t.names)
	}
	return c
}

// Equal reports whether two tensors have the same shape and values.
// Mode names are not compared.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i, v := range t.values {
		if v != other.values[i] {
			return false
		}
	}
	return true
}

// SetModeNames attaches a name to each mode. Pass no names to clear.
func (t *Tensor[T]) SetModeNames(names ...string) error {
	if len(names) == 0 {
		t.names = nil
		return nil
	}
	if len(names) != len(t.shape) {
		return fmt.Errorf("got %d names for %d modes: %w", len(names), len(t.shape), ErrShapeMismatch)
	}
	t.names = make([]string, len(names))
	copy(t.names, names)
	return nil
}

// ModeNames returns a copy of the per-mode names, or nil if unset.
func (t *Tensor[T]) ModeNames() []string {
	if t.names == nil {
		return nil
	}
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor%v (%d elements)", t.shape, len(t.values))
}
