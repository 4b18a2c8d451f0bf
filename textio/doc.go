// Copyright 2026 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package textio reads and writes tensors in a plain text line format.
//
// # Overview
//
// The format is one row per line with values separated by spaces, commas
// or tabs. Lines starting with # are comments. An optional shape directive
// pins the exact tensor shape:
//
//	# shape: 2 3
//	1 2 3
//	4 5 6
//
// Without a directive a single line becomes a vector and multiple lines
// become a matrix. Every row must have the same number of values.
//
// # Basic Usage
//
//	import "github.com/weft-ml/weft/textio"
//
//	func main() {
//	    t, err := textio.ReadFile("data.txt")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(t.Shape())
//
//	    if err := textio.WriteFile("out.txt", t); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Round Trips
//
// Write always emits a shape directive, so tensors of any mode count
// survive a write and read back unchanged, including scalars.
package textio
