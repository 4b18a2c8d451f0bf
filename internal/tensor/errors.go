package tensor

import "errors"

// Error kinds reported by the engine. Every failure wraps one of these,
// so callers can classify it with errors.Is.
var (
	// ErrShapeMismatch reports an index, subscript, or value whose arity
	// or size does not agree with a tensor's shape.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrIndexOutOfRange reports a coordinate or subscript outside the
	// valid range of its mode.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidPermutation reports a mode permutation that is not a
	// bijection over a tensor's modes.
	ErrInvalidPermutation = errors.New("invalid permutation")

	// ErrEmptyTensor reports an operation that needs at least one element
	// but selected none.
	ErrEmptyTensor = errors.New("empty tensor")
)
