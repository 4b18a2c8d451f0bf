package tensor

import "fmt"

// checkPermutation validates that perm is a bijection over [0, n).
func checkPermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("permutation %v has %d entries for %d modes: %w", perm, len(perm), n, ErrInvalidPermutation)
	}
	seen := make([]bool, n)
	for _, m := range perm {
		if m < 0 || m >= n {
			return fmt.Errorf("permutation %v entry %d outside [0, %d): %w", perm, m, n, ErrInvalidPermutation)
		}
		if seen[m] {
			return fmt.Errorf("permutation %v repeats mode %d: %w", perm, m, ErrInvalidPermutation)
		}
		seen[m] = true
	}
	return nil
}

func isIdentity(perm []int) bool {
	for d, m := range perm {
		if m != d {
			return false
		}
	}
	return true
}

// lastChangedMode returns the highest mode whose position changes under
// perm, or -1 for the identity. Modes beyond it keep their relative
// order, so the trailing block they span stays contiguous in both the
// old and the new layout.
func lastChangedMode(perm []int) int {
	for d := len(perm) - 1; d >= 0; d-- {
		if perm[d] != d {
			return d
		}
	}
	return -1
}

// ReorderComplexity scores how cheaply the shape's elements can be
// reordered under the permutation: it returns the length of the
// contiguous run that a block copy can move per step, so larger is
// cheaper. The identity permutation scores the full element count.
// The score is a proxy for comparing permutations, not a copy count.
func (s Shape) ReorderComplexity(newToOld []int) (int, error) {
	if err := checkPermutation(newToOld, len(s)); err != nil {
		return 0, err
	}
	run := 1
	for d := lastChangedMode(newToOld) + 1; d < len(s); d++ {
		run *= s[d]
	}
	return run, nil
}

// Transpose returns a new tensor whose mode d has the size, values and
// name of mode newToOld[d]. Called without arguments it reverses the
// mode order, the classic matrix transpose.
//
// The identity permutation returns the receiver itself without
// copying. Every other permutation allocates a fresh buffer and moves
// values in contiguous runs: modes after the last repositioned mode
// keep their layout, so each step copies a whole trailing block
// instead of one element.
//
// Example:
//
//	t, _ := tensor.New(tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
//	m, _ := t.Transpose() // shape [2, 2], values [1, 3, 2, 4]
func (t *Tensor[T]) Transpose(newToOld ...int) (*Tensor[T], error) {
	if len(newToOld) == 0 {
		newToOld = make([]int, len(t.shape))
		for d := range newToOld {
			newToOld[d] = len(t.shape) - 1 - d
		}
	}
	if err := checkPermutation(newToOld, len(t.shape)); err != nil {
		return nil, err
	}
	if isIdentity(newToOld) {
		return t, nil
	}

	newShape := make(Shape, len(t.shape))
	for d, m := range newToOld {
		newShape[d] = t.shape[m]
	}
	out := newOwned(newShape, make([]T, len(t.values)))
	if t.names != nil {
		out.names = make([]string, len(t.names))
		for d, m := range newToOld {
			out.names[d] = t.names[m]
		}
	}

	last := lastChangedMode(newToOld)
	run := 1
	for d := last + 1; d < len(t.shape); d++ {
		run *= t.shape[d]
	}
	srcStrides := t.shape.Strides()
	dstStrides := newShape.Strides()

	// Walk the repositioned modes in destination order; at each leaf
	// both offsets point at the start of a length-run contiguous block.
	var walk func(depth, srcOff, dstOff int)
	walk = func(depth, srcOff, dstOff int) {
		if depth > last {
			copy(out.values[dstOff:dstOff+run], t.values[srcOff:srcOff+run])
			return
		}
		for c := 0; c < newShape[depth]; c++ {
			walk(depth+1, srcOff+c*srcStrides[newToOld[depth]], dstOff+c*dstStrides[depth])
		}
	}
	walk(0, 0, 0)
	return out, nil
}
