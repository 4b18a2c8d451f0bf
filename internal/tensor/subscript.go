package tensor

import "fmt"

type subscriptKind uint8

const (
	allKind subscriptKind = iota
	rangeKind
	pickKind
)

// Subscript selects coordinates within one mode of a tensor.
// The zero value selects the whole mode; Range selects a contiguous
// half-open interval; Pick selects an explicit coordinate list.
type Subscript struct {
	kind subscriptKind
	lo   int
	hi   int
	list []int
}

// All selects every coordinate of a mode. It is the zero Subscript and
// the default for trailing modes a caller leaves unspecified.
var All = Subscript{}

// Range selects the coordinates lo <= c < hi of one mode, in order.
func Range(lo, hi int) Subscript {
	return Subscript{kind: rangeKind, lo: lo, hi: hi}
}

// Pick selects the listed coordinates of one mode, in the order given.
// The list need not be sorted or contiguous and may repeat coordinates.
func Pick(coords ...int) Subscript {
	return Subscript{kind: pickKind, list: coords}
}

// String returns the subscript in index-expression form.
func (sub Subscript) String() string {
	switch sub.kind {
	case rangeKind:
		return fmt.Sprintf("[%d:%d]", sub.lo, sub.hi)
	case pickKind:
		return fmt.Sprintf("%v", sub.list)
	default:
		return "[:]"
	}
}

// selection is a resolved subscript: the concrete coordinate set chosen
// from one mode of a concrete shape.
type selection struct {
	lo   int   // first coordinate when list is nil
	n    int   // number of selected coordinates
	list []int // discrete coordinates, nil for contiguous ranges
}

func (sel selection) size() int { return sel.n }

// coord returns the i-th selected coordinate.
func (sel selection) coord(i int) int {
	if sel.list != nil {
		return sel.list[i]
	}
	return sel.lo + i
}

// resolve validates the subscript against the size of one mode.
func (sub Subscript) resolve(mode, size int) (selection, error) {
	switch sub.kind {
	case rangeKind:
		if sub.lo < 0 || sub.hi > size {
			return selection{}, fmt.Errorf("subscript %s outside [0, %d) in mode %d: %w", sub, size, mode, ErrIndexOutOfRange)
		}
		if sub.hi <= sub.lo {
			return selection{}, fmt.Errorf("subscript %s selects nothing in mode %d: %w", sub, mode, ErrEmptyTensor)
		}
		return selection{lo: sub.lo, n: sub.hi - sub.lo}, nil
	case pickKind:
		if len(sub.list) == 0 {
			return selection{}, fmt.Errorf("subscript picks nothing in mode %d: %w", mode, ErrEmptyTensor)
		}
		for _, c := range sub.list {
			if c < 0 || c >= size {
				return selection{}, fmt.Errorf("subscript coordinate %d outside [0, %d) in mode %d: %w", c, size, mode, ErrIndexOutOfRange)
			}
		}
		return selection{n: len(sub.list), list: sub.list}, nil
	default:
		return selection{lo: 0, n: size}, nil
	}
}

// resolveSubscripts resolves one subscript per mode against the shape,
// defaulting unspecified trailing modes to All. Resolution happens once,
// before any enumeration or copying runs.
func resolveSubscripts(s Shape, subs []Subscript) ([]selection, error) {
	if len(subs) > len(s) {
		return nil, fmt.Errorf("got %d subscripts for %d modes: %w", len(subs), len(s), ErrShapeMismatch)
	}
	sels := make([]selection, len(s))
	for d := range s {
		sub := All
		if d < len(subs) {
			sub = subs[d]
		}
		sel, err := sub.resolve(d, s[d])
		if err != nil {
			return nil, err
		}
		sels[d] = sel
	}
	return sels, nil
}
