package tensor

// Offsets returns the flat offsets of every element selected by the
// subscripts, one subscript per mode. Unspecified trailing modes
// default to All. Offsets come out in row-major order over the
// selection, with Pick coordinates visited in their listed order.
//
// Example:
//
//	t, _ := tensor.New(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
//	offs, _ := t.Offsets(tensor.All, tensor.Pick(2, 0)) // [2, 0, 5, 3]
func (t *Tensor[T]) Offsets(subs ...Subscript) ([]int, error) {
	sels, err := resolveSubscripts(t.shape, subs)
	if err != nil {
		return nil, err
	}
	return enumerateOffsets(t.shape, sels), nil
}

// enumerateOffsets expands resolved selections into flat offsets.
//
// It seeds the list with the offset of the first selected coordinate in
// every mode, then walks modes from last to first. Each further
// coordinate of a mode appends a shifted copy of the block built so
// far, so the list grows by whole blocks and ends up in row-major
// order without ever materializing multi-indices.
func enumerateOffsets(s Shape, sels []selection) []int {
	total := 1
	for _, sel := range sels {
		total *= sel.size()
	}

	strides := s.Strides()
	seed := 0
	for d, sel := range sels {
		seed += sel.coord(0) * strides[d]
	}

	offsets := make([]int, 1, total)
	offsets[0] = seed
	for mode := len(sels) - 1; mode >= 0; mode-- {
		sel := sels[mode]
		block := len(offsets)
		for i := 1; i < sel.size(); i++ {
			delta := sel.coord(i) - sel.coord(0)
			for j := 0; j < block; j++ {
				offsets = append(offsets, s.MoveOffset(offsets[j], delta, mode))
			}
		}
	}
	return offsets
}
