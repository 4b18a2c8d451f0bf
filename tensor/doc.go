// Copyright 2026 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for Weft's multidimensional
// array engine.
//
// # Overview
//
// A Tensor stores homogeneous elements in one flat row-major buffer
// addressed through an N-dimensional coordinate space. The package
// provides:
//   - Generic type-safe tensors (Tensor[T])
//   - Flat and nested index translation
//   - Range-, list- and full-mode slicing, reading and writing
//   - Mode reordering with contiguous block copies
//   - Matrix unfolding with a transpose cost heuristic
//   - An outer-mode traversal primitive for broadcasting arithmetic
//
// # Basic Usage
//
//	import "github.com/weft-ml/weft/tensor"
//
//	func main() {
//	    t, err := tensor.New(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    col, _ := t.Slice(tensor.All, tensor.Pick(2)) // shape [2]: 3, 6
//	    m, _ := t.Transpose()                         // shape [3, 2]
//	}
//
// # Copy Semantics
//
// Slices and reordered tensors are copies, never views: a tensor
// exclusively owns its buffer, and mutating one tensor cannot change
// another. The only exception is the identity permutation, where
// Transpose returns its receiver.
//
// # Supported Element Types
//
// The Element constraint covers float32, float64, int32, int64 and
// uint8.
//
// # Concurrency
//
// Operations are synchronous and allocate no shared state. A Tensor is
// safe for concurrent reads; element writes are not synchronized, so
// writers need external locking.
package tensor
