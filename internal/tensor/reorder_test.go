package tensor

import (
	"errors"
	"testing"
)

func TestTransposeMatrix(t *testing.T) {
	tsr := mustNew(t, Shape{2, 2}, []float64{1, 2, 3, 4})

	got, err := tsr.Transpose()
	if err != nil {
		t.Fatalf("Transpose failed: %v", err)
	}
	assertEqualShape(t, Shape{2, 2}, got.Shape(), "transpose")
	assertValues(t, []float64{1, 3, 2, 4}, got.Values(), "transpose")
}

func TestTransposeRect(t *testing.T) {
	tsr := mustNew(t, Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	got, err := tsr.Transpose()
	if err != nil {
		t.Fatalf("Transpose failed: %v", err)
	}
	assertEqualShape(t, Shape{3, 2}, got.Shape(), "transpose")
	assertValues(t, []float64{1, 4, 2, 5, 3, 6}, got.Values(), "transpose")

	// The result owns its buffer.
	got.Set(99, 0, 0)
	if tsr.At(0, 0) != 1 {
		t.Error("mutating the transpose must not change the source")
	}
}

func TestTransposeIdentityReturnsReceiver(t *testing.T) {
	tsr := mustNew(t, Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	got, err := tsr.Transpose(0, 1)
	if err != nil {
		t.Fatalf("Transpose failed: %v", err)
	}
	if got != tsr {
		t.Error("identity permutation should return the receiver without copying")
	}
}

func TestTransposeDefaultReversesModes(t *testing.T) {
	src := mustNew(t, Shape{2, 3, 4}, Arange[float64](0, 24).Values())

	def, err := src.Transpose()
	if err != nil {
		t.Fatalf("Transpose failed: %v", err)
	}
	explicit, err := src.Transpose(2, 1, 0)
	if err != nil {
		t.Fatalf("Transpose failed: %v", err)
	}
	if !def.Equal(explicit) {
		t.Error("no-argument Transpose should reverse the mode order")
	}
	assertEqualShape(t, Shape{4, 3, 2}, def.Shape(), "reversal")
}

func TestTransposeThreeModes(t *testing.T) {
	src := mustNew(t, Shape{2, 3, 4}, Arange[float64](0, 24).Values())

	got, err := src.Transpose(1, 0, 2)
	if err != nil {
		t.Fatalf("Transpose failed: %v", err)
	}
	assertEqualShape(t, Shape{3, 2, 4}, got.Shape(), "permuted shape")
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 4; k++ {
				if got.At(i, j, k) != src.At(j, i, k) {
					t.Fatalf("At(%d, %d, %d) = %v, want %v", i, j, k, got.At(i, j, k), src.At(j, i, k))
				}
			}
		}
	}
}

func TestTransposeInvolution(t *testing.T) {
	src := mustNew(t, Shape{2, 3, 4}, Arange[float64](0, 24).Values())
	perms := [][]int{
		{1, 0, 2},
		{2, 0, 1},
		{0, 2, 1},
		{2, 1, 0},
	}

	for _, p := range perms {
		inv := make([]int, len(p))
		for d, m := range p {
			inv[m] = d
		}
		moved, err := src.Transpose(p...)
		if err != nil {
			t.Fatalf("Transpose(%v) failed: %v", p, err)
		}
		back, err := moved.Transpose(inv...)
		if err != nil {
			t.Fatalf("Transpose(%v) failed: %v", inv, err)
		}
		if !back.Equal(src) {
			t.Errorf("Transpose(%v) then Transpose(%v) changed the tensor", p, inv)
		}
	}
}

func TestTransposeRemapsModeNames(t *testing.T) {
	tsr := mustNew(t, Shape{2, 3, 4}, Arange[float64](0, 24).Values())
	if err := tsr.SetModeNames("batch", "row", "col"); err != nil {
		t.Fatalf("SetModeNames failed: %v", err)
	}

	got, err := tsr.Transpose(1, 2, 0)
	if err != nil {
		t.Fatalf("Transpose failed: %v", err)
	}
	assertValues(t, []string{"row", "col", "batch"}, got.ModeNames(), "permuted names")
}

func TestTransposeInvalidPermutation(t *testing.T) {
	tsr := mustNew(t, Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	cases := [][]int{
		{0},       // too short
		{0, 1, 2}, // too long
		{0, 0},    // repeated mode
		{0, 2},    // out of range
		{-1, 0},   // negative
	}
	for _, perm := range cases {
		if _, err := tsr.Transpose(perm...); !errors.Is(err, ErrInvalidPermutation) {
			t.Errorf("Transpose(%v): error = %v, want ErrInvalidPermutation", perm, err)
		}
	}
}

func TestReorderComplexity(t *testing.T) {
	tests := []struct {
		shape    Shape
		perm     []int
		expected int
	}{
		{Shape{2, 3, 4}, []int{0, 1, 2}, 24}, // identity keeps the whole buffer
		{Shape{2, 3, 4}, []int{1, 0, 2}, 4},  // trailing mode unchanged
		{Shape{2, 3, 4}, []int{0, 2, 1}, 1},  // last mode moves
		{Shape{2, 3, 4}, []int{2, 1, 0}, 1},
		{Shape{2, 3}, []int{1, 0}, 1},
		{Shape{4, 1, 1}, []int{0, 1, 2}, 4},
		{Shape{4, 1, 1}, []int{1, 2, 0}, 1},
		{Shape{5, 4, 3, 2}, []int{1, 0, 2, 3}, 6},
	}

	for _, tt := range tests {
		got, err := tt.shape.ReorderComplexity(tt.perm)
		if err != nil {
			t.Errorf("Shape%v.ReorderComplexity(%v) failed: %v", tt.shape, tt.perm, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("Shape%v.ReorderComplexity(%v) = %d, want %d", tt.shape, tt.perm, got, tt.expected)
		}
	}
}

func TestReorderComplexityInvalid(t *testing.T) {
	s := Shape{2, 3}
	if _, err := s.ReorderComplexity([]int{0, 0}); !errors.Is(err, ErrInvalidPermutation) {
		t.Errorf("error = %v, want ErrInvalidPermutation", err)
	}
}
