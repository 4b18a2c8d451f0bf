package tensor

import "fmt"

// frontPermutation moves mode to position 0, keeping the relative
// order of the remaining modes.
func frontPermutation(n, mode int) []int {
	perm := make([]int, 0, n)
	perm = append(perm, mode)
	for d := 0; d < n; d++ {
		if d != mode {
			perm = append(perm, d)
		}
	}
	return perm
}

// backPermutation moves mode to the last position, keeping the
// relative order of the remaining modes.
func backPermutation(n, mode int) []int {
	perm := make([]int, 0, n)
	for d := 0; d < n; d++ {
		if d != mode {
			perm = append(perm, d)
		}
	}
	return append(perm, mode)
}

// Unfold flattens the tensor into a matrix along one mode: the chosen
// mode becomes the rows and all remaining modes, in order, collapse
// into the columns.
//
// When allowTranspose is true, Unfold also scores the layout with the
// chosen mode moved to the back instead of the front, and emits that
// transposed matrix when its contiguous runs are strictly longer.
// The returned flag reports the transposed orientation so callers can
// compensate; on a tie the canonical row layout wins.
//
// The result never shares memory with the receiver.
//
// Example:
//
//	t := tensor.Zeros[float64](tensor.Shape{2, 3, 4})
//	m, transposed, _ := t.Unfold(2, true) // shape [6, 4], transposed == true
func (t *Tensor[T]) Unfold(mode int, allowTranspose bool) (*Tensor[T], bool, error) {
	n := len(t.shape)
	if mode < 0 || mode >= n {
		return nil, false, fmt.Errorf("unfold mode %d outside [0, %d): %w", mode, n, ErrIndexOutOfRange)
	}

	rows := t.shape[mode]
	cols := t.shape.ElementCount() / rows

	perm := frontPermutation(n, mode)
	transposed := false
	if allowTranspose {
		front, err := t.shape.ReorderComplexity(perm)
		if err != nil {
			return nil, false, err
		}
		backPerm := backPermutation(n, mode)
		back, err := t.shape.ReorderComplexity(backPerm)
		if err != nil {
			return nil, false, err
		}
		if back > front {
			perm = backPerm
			transposed = true
		}
	}

	moved, err := t.Transpose(perm...)
	if err != nil {
		return nil, false, err
	}
	values := moved.values
	if moved == t {
		// Identity reorder returns the receiver, so the buffer must be
		// copied to keep the result independent.
		values = make([]T, len(t.values))
		copy(values, t.values)
	}

	shape := Shape{rows, cols}
	if transposed {
		shape = Shape{cols, rows}
	}
	return newOwned(shape, values), transposed, nil
}
