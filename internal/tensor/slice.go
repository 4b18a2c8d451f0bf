package tensor

import "fmt"

// slicePlan is a resolved slice traversal: per-mode selections plus the
// stride of each mode in the source and in the sliced result. Modes
// whose selection has size 1 vanish from the result shape, so their
// destination stride is 0.
type slicePlan struct {
	sels       []selection
	srcStrides []int
	dstStrides []int
	shape      Shape // shape of the sliced result
}

func newSlicePlan(s Shape, subs []Subscript) (*slicePlan, error) {
	sels, err := resolveSubscripts(s, subs)
	if err != nil {
		return nil, err
	}
	p := &slicePlan{
		sels:       sels,
		srcStrides: s.Strides(),
		dstStrides: make([]int, len(sels)),
		shape:      Shape{},
	}
	for _, sel := range sels {
		if sel.size() > 1 {
			p.shape = append(p.shape, sel.size())
		}
	}
	dst := p.shape.Strides()
	next := 0
	for d, sel := range sels {
		if sel.size() > 1 {
			p.dstStrides[d] = dst[next]
			next++
		}
	}
	return p, nil
}

// walk recurses over the selection one mode per depth level, keeping
// the source and destination offsets synchronized, and visits every
// selected element at the innermost level. Depth is passed down
// immutably so each level owns its own cursor.
func (p *slicePlan) walk(depth, srcOff, dstOff int, visit func(srcOff, dstOff int)) {
	if depth == len(p.sels) {
		visit(srcOff, dstOff)
		return
	}
	sel := p.sels[depth]
	for i := 0; i < sel.size(); i++ {
		p.walk(depth+1, srcOff+sel.coord(i)*p.srcStrides[depth], dstOff+i*p.dstStrides[depth], visit)
	}
}

// Slice copies the elements selected by the subscripts into a new
// tensor. Modes whose selection holds a single coordinate are elided
// from the result shape; selecting one coordinate in every mode yields
// a 0-mode tensor holding one element. Mode names follow the surviving
// modes.
//
// The result owns its values. Mutating it never changes the source.
//
// Example:
//
//	t, _ := tensor.New(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
//	col, _ := t.Slice(tensor.All, tensor.Pick(2)) // shape [2], values [3, 6]
func (t *Tensor[T]) Slice(subs ...Subscript) (*Tensor[T], error) {
	p, err := newSlicePlan(t.shape, subs)
	if err != nil {
		return nil, err
	}
	out := newOwned(p.shape, make([]T, p.shape.ElementCount()))
	p.walk(0, 0, 0, func(srcOff, dstOff int) {
		out.values[dstOff] = t.values[srcOff]
	})
	if t.names != nil && len(p.shape) > 0 {
		out.names = make([]string, 0, len(p.shape))
		for d, sel := range p.sels {
			if sel.size() > 1 {
				out.names = append(out.names, t.names[d])
			}
		}
	}
	return out, nil
}

// SetSlice writes value into the region selected by the subscripts,
// using the same traversal as Slice with the copy direction reversed.
// The value's shape must equal the sliced shape, with size-1 selections
// elided, or SetSlice fails with ErrShapeMismatch.
func (t *Tensor[T]) SetSlice(value *Tensor[T], subs ...Subscript) error {
	p, err := newSlicePlan(t.shape, subs)
	if err != nil {
		return err
	}
	if !value.shape.Equal(p.shape) {
		return fmt.Errorf("value shape %v does not match selected shape %v: %w", value.shape, p.shape, ErrShapeMismatch)
	}
	p.walk(0, 0, 0, func(srcOff, dstOff int) {
		t.values[srcOff] = value.values[dstOff]
	})
	return nil
}
