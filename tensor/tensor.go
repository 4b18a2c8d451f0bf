// Copyright 2026 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/weft-ml/weft/internal/tensor"
)

// Type aliases for public API

// Element is a constraint for supported tensor element types.
// Supported types: float32, float64, int32, int64, uint8.
type Element = tensor.Element

// Shape holds the mode (axis) sizes of a tensor, outermost mode first.
// Example: Shape{2, 3, 4} is a 3-mode tensor with 24 elements.
type Shape = tensor.Shape

// Tensor is a dense multidimensional array with element type T stored
// in row-major order.
//
// Example:
//
//	t, err := tensor.New(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
//	v := t.At(1, 2) // 6
type Tensor[T Element] = tensor.Tensor[T]

// Subscript selects coordinates within one mode of a tensor; see All,
// Range and Pick.
type Subscript = tensor.Subscript

// All selects every coordinate of a mode. It is the zero Subscript and
// the default for trailing modes a caller leaves unspecified.
var All = tensor.All

// Error kinds. Every failure from the engine wraps one of these, so
// callers can classify it with errors.Is.
var (
	ErrShapeMismatch      = tensor.ErrShapeMismatch
	ErrIndexOutOfRange    = tensor.ErrIndexOutOfRange
	ErrInvalidPermutation = tensor.ErrInvalidPermutation
	ErrEmptyTensor        = tensor.ErrEmptyTensor
)

// Range selects the coordinates lo <= c < hi of one mode, in order.
func Range(lo, hi int) Subscript {
	return tensor.Range(lo, hi)
}

// Pick selects the listed coordinates of one mode, in the order given.
func Pick(coords ...int) Subscript {
	return tensor.Pick(coords...)
}

// Creation functions

// New creates a tensor of the given shape from values in row-major
// order. The values slice is copied.
//
// Example:
//
//	t, err := tensor.New(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
func New[T Element](shape Shape, values []T) (*Tensor[T], error) {
	return tensor.New(shape, values)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
func Zeros[T Element](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T Element](shape Shape) *Tensor[T] {
	return tensor.Ones[T](shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x := tensor.Full(tensor.Shape{2, 3}, 3.14)
func Full[T Element](shape Shape, value T) *Tensor[T] {
	return tensor.Full(shape, value)
}

// Arange creates a 1-D tensor with values from start to end (exclusive).
//
// Example:
//
//	x := tensor.Arange[int32](0, 10) // [0, 1, ..., 9]
func Arange[T Element](start, end T) *Tensor[T] {
	return tensor.Arange(start, end)
}

// Eye creates an n-by-n identity matrix.
func Eye[T Element](n int) *Tensor[T] {
	return tensor.Eye[T](n)
}

// Rand creates a tensor with values uniformly distributed in [0, 1).
// Float types only.
func Rand[T Element](shape Shape) *Tensor[T] {
	return tensor.Rand[T](shape)
}

// Randn creates a tensor with standard normal values.
// Float types only.
//
// Example:
//
//	x := tensor.Randn[float64](tensor.Shape{100, 100})
func Randn[T Element](shape Shape) *Tensor[T] {
	return tensor.Randn[T](shape)
}

// Traversal

// CombineOuter runs fn for every combination of coordinates over the
// outer modes of a and b, passing subscripts that pin the combination
// in each tensor. It is the substrate for broadcasting elementwise
// arithmetic; see the package example.
func CombineOuter[S, T Element](a *Tensor[S], outerA []int, b *Tensor[T], outerB []int, fn func(subsA, subsB []Subscript) error) error {
	return tensor.CombineOuter(a, outerA, b, outerB, fn)
}
