// Copyright 2026 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package textio

import (
	"io"

	"github.com/weft-ml/weft/internal/tensor"
	"github.com/weft-ml/weft/internal/textio"
)

// Read parses a tensor from r.
//
// Example:
//
//	t, err := textio.Read(strings.NewReader("1 2 3\n4 5 6\n"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(t.Shape()) // [2 3]
func Read(r io.Reader) (*tensor.Tensor[float64], error) {
	return textio.Read(r)
}

// ReadFile parses a tensor from the file at path.
func ReadFile(path string) (*tensor.Tensor[float64], error) {
	return textio.ReadFile(path)
}

// Write emits t to w, one row per line, preceded by a shape directive.
func Write(w io.Writer, t *tensor.Tensor[float64]) error {
	return textio.Write(w, t)
}

// WriteFile emits t to the file at path, replacing it if it exists.
func WriteFile(path string, t *tensor.Tensor[float64]) error {
	return textio.WriteFile(path, t)
}
