package tensor

import (
	"errors"
	"testing"
)

// Test helpers

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func assertValues[T comparable](t *testing.T, expected, actual []T, msg string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("%s: expected %d values, got %d", msg, len(expected), len(actual))
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Errorf("%s: values = %v, want %v", msg, actual, expected)
			return
		}
	}
}

func mustNew[T Element](t *testing.T, shape Shape, values []T) *Tensor[T] {
	t.Helper()
	tsr, err := New(shape, values)
	if err != nil {
		t.Fatalf("New(%v, %v) failed: %v", shape, values, err)
	}
	return tsr
}

func expectPanic(t *testing.T, msg string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", msg)
		}
	}()
	fn()
}

// Construction

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6}
	tsr := mustNew(t, Shape{2, 3}, values)

	assertEqualShape(t, Shape{2, 3}, tsr.Shape(), "New")
	if tsr.ElementCount() != 6 {
		t.Errorf("ElementCount = %d, want 6", tsr.ElementCount())
	}
	if tsr.ModeCount() != 2 {
		t.Errorf("ModeCount = %d, want 2", tsr.ModeCount())
	}
	if tsr.ModeSize(1) != 3 {
		t.Errorf("ModeSize(1) = %d, want 3", tsr.ModeSize(1))
	}

	// The input slice must be copied, not retained.
	values[0] = 99
	if tsr.At(0, 0) != 1 {
		t.Error("New should copy the value slice")
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(Shape{2, 3}, []float64{1, 2, 3}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("short values: error = %v, want ErrShapeMismatch", err)
	}
	if _, err := New(Shape{2, 0}, []float64{}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("zero mode size: error = %v, want ErrShapeMismatch", err)
	}
}

func TestNewScalar(t *testing.T) {
	tsr := mustNew(t, Shape{}, []float64{42})
	if got := tsr.Item(); got != 42 {
		t.Errorf("Item() = %v, want 42", got)
	}
	if got := tsr.At(); got != 42 {
		t.Errorf("At() = %v, want 42", got)
	}
}

// Element access

func TestAtSet(t *testing.T) {
	tsr := mustNew(t, Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	if got := tsr.At(1, 2); got != 6 {
		t.Errorf("At(1, 2) = %v, want 6", got)
	}
	if got := tsr.At(0, 0); got != 1 {
		t.Errorf("At(0, 0) = %v, want 1", got)
	}

	tsr.Set(42, 1, 0)
	if got := tsr.At(1, 0); got != 42 {
		t.Errorf("At(1, 0) after Set = %v, want 42", got)
	}
}

func TestAtSetPanics(t *testing.T) {
	tsr := mustNew(t, Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	expectPanic(t, "At with short index", func() { tsr.At(1) })
	expectPanic(t, "At out of range", func() { tsr.At(2, 0) })
	expectPanic(t, "Set negative coordinate", func() { tsr.Set(0, 0, -1) })
	expectPanic(t, "ModeSize out of range", func() { tsr.ModeSize(2) })
}

func TestAtOffsetSetOffset(t *testing.T) {
	tsr := mustNew(t, Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	if got := tsr.AtOffset(5); got != 6 {
		t.Errorf("AtOffset(5) = %v, want 6", got)
	}
	tsr.SetOffset(0, 9)
	if got := tsr.At(0, 0); got != 9 {
		t.Errorf("At(0, 0) after SetOffset = %v, want 9", got)
	}

	expectPanic(t, "AtOffset past end", func() { tsr.AtOffset(6) })
	expectPanic(t, "SetOffset negative", func() { tsr.SetOffset(-1, 0) })
}

func TestItemPanicsOnMultiElement(t *testing.T) {
	tsr := mustNew(t, Shape{2}, []float64{1, 2})
	expectPanic(t, "Item on 2-element tensor", func() { tsr.Item() })
}

func TestValuesZeroCopy(t *testing.T) {
	tsr := mustNew(t, Shape{2}, []float64{1, 2})
	tsr.Values()[0] = 7
	if tsr.At(0) != 7 {
		t.Error("Values should expose the backing buffer")
	}
}

// Copies and comparison

func TestClone(t *testing.T) {
	tsr := mustNew(t, Shape{2, 2}, []float64{1, 2, 3, 4})
	if err := tsr.SetModeNames("row", "col"); err != nil {
		t.Fatalf("SetModeNames failed: %v", err)
	}

	clone := tsr.Clone()
	clone.Set(99, 0, 0)
	if tsr.At(0, 0) != 1 {
		t.Error("Clone should not share the value buffer")
	}
	assertValues(t, []string{"row", "col"}, clone.ModeNames(), "clone names")
}

func TestEqual(t *testing.T) {
	a := mustNew(t, Shape{2, 2}, []float64{1, 2, 3, 4})
	b := mustNew(t, Shape{2, 2}, []float64{1, 2, 3, 4})
	c := mustNew(t, Shape{2, 2}, []float64{1, 2, 3, 5})
	d := mustNew(t, Shape{4}, []float64{1, 2, 3, 4})

	if !a.Equal(b) {
		t.Error("identical tensors should be equal")
	}
	if a.Equal(c) {
		t.Error("tensors with different values should not be equal")
	}
	if a.Equal(d) {
		t.Error("tensors with different shapes should not be equal")
	}
}

// Mode names

func TestModeNames(t *testing.T) {
	tsr := mustNew(t, Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	if tsr.ModeNames() != nil {
		t.Error("names should start unset")
	}
	if err := tsr.SetModeNames("row", "col"); err != nil {
		t.Fatalf("SetModeNames failed: %v", err)
	}
	names := tsr.ModeNames()
	assertValues(t, []string{"row", "col"}, names, "names")

	// The returned slice is a copy.
	names[0] = "x"
	assertValues(t, []string{"row", "col"}, tsr.ModeNames(), "names after caller mutation")

	if err := tsr.SetModeNames("just-one"); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("wrong name count: error = %v, want ErrShapeMismatch", err)
	}

	if err := tsr.SetModeNames(); err != nil {
		t.Fatalf("clearing names failed: %v", err)
	}
	if tsr.ModeNames() != nil {
		t.Error("names should be cleared")
	}
}

func TestString(t *testing.T) {
	tsr := mustNew(t, Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	if got := tsr.String(); got != "Tensor[2 3] (6 elements)" {
		t.Errorf("String() = %q", got)
	}
}
