package tensor

import "fmt"

func checkOuterModes(modes []int, modeCount int) error {
	seen := make([]bool, modeCount)
	for _, m := range modes {
		if m < 0 || m >= modeCount {
			return fmt.Errorf("outer mode %d outside [0, %d): %w", m, modeCount, ErrIndexOutOfRange)
		}
		if seen[m] {
			return fmt.Errorf("outer modes %v repeat mode %d: %w", modes, m, ErrInvalidPermutation)
		}
		seen[m] = true
	}
	return nil
}

// CombineOuter runs fn once for every combination of coordinates over
// the outer modes of a and the outer modes of b, a's modes in the
// outer loops. Each invocation receives one subscript per mode of each
// tensor: the current outer coordinates pinned as single-element
// ranges, every other mode left at All. Slicing through those
// subscripts gives the two sub-tensors belonging to the combination,
// which is how broadcasting elementwise arithmetic is built on top of
// this primitive.
//
// With both outer mode lists empty fn runs exactly once, with
// full-range subscripts for both tensors. A non-nil error from fn
// stops the enumeration and is returned as is.
//
// The subscript slices are reused between invocations; fn must not
// retain them.
//
// Example:
//
//	// Subtract the column means from every row of m.
//	err := tensor.CombineOuter(m, []int{0}, means, nil,
//		func(subsM, _ []tensor.Subscript) error {
//			row, err := m.Slice(subsM...)
//			if err != nil {
//				return err
//			}
//			for i, v := range row.Values() {
//				row.Values()[i] = v - means.At(i)
//			}
//			return m.SetSlice(row, subsM...)
//		})
func CombineOuter[S, T Element](a *Tensor[S], outerA []int, b *Tensor[T], outerB []int, fn func(subsA, subsB []Subscript) error) error {
	if err := checkOuterModes(outerA, a.ModeCount()); err != nil {
		return err
	}
	if err := checkOuterModes(outerB, b.ModeCount()); err != nil {
		return err
	}

	subsA := make([]Subscript, a.ModeCount())
	subsB := make([]Subscript, b.ModeCount())

	var walkB func(i int) error
	walkB = func(i int) error {
		if i == len(outerB) {
			return fn(subsA, subsB)
		}
		m := outerB[i]
		for c := 0; c < b.shape[m]; c++ {
			subsB[m] = Range(c, c+1)
			if err := walkB(i + 1); err != nil {
				return err
			}
		}
		subsB[m] = All
		return nil
	}

	var walkA func(i int) error
	walkA = func(i int) error {
		if i == len(outerA) {
			return walkB(0)
		}
		m := outerA[i]
		for c := 0; c < a.shape[m]; c++ {
			subsA[m] = Range(c, c+1)
			if err := walkA(i + 1); err != nil {
				return err
			}
		}
		subsA[m] = All
		return nil
	}

	return walkA(0)
}
