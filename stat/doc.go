// Copyright 2026 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package stat provides statistical models built on top of the tensor package.
//
// # Overview
//
// This package contains:
//   - LinearModel: ordinary least squares and gradient descent regression
//   - PCA: principal component analysis via eigendecomposition
//   - Matricize, ColumnMeans, CenterColumns: matrix helpers for model input
//
// # Basic Usage
//
//	import (
//	    "github.com/weft-ml/weft/stat"
//	    "github.com/weft-ml/weft/tensor"
//	)
//
//	func main() {
//	    x, _ := tensor.New(tensor.Shape{4, 1}, []float64{0, 1, 2, 3})
//	    y, _ := tensor.New(tensor.Shape{4}, []float64{1, 3, 5, 7})
//
//	    model, err := stat.Fit(x, y)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(model.Intercept())    // 1
//	    fmt.Println(model.Coefficients()) // [2]
//
//	    pred, _ := model.Predict(x)
//	    fmt.Println(pred.Values()) // [1 3 5 7]
//	}
//
// # Regression
//
// Fit solves the least squares problem directly. FitGD runs full batch
// gradient descent instead, which is useful when the closed form solution
// is too expensive or when step-by-step convergence matters:
//
//	model, err := stat.FitGD(x, y, stat.GDConfig{
//	    LearningRate: 0.01,
//	    Steps:        1000,
//	})
//
// Both produce a LinearModel whose Predict and Score methods evaluate new
// samples.
//
// # Principal Component Analysis
//
// FitPCA centers the data and extracts the leading principal axes:
//
//	pca, err := stat.FitPCA(x, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	scores, _ := pca.Project(x)
//
// # Input Layout
//
// Models accept samples along mode 0 and features along mode 1. Tensors
// with more than two modes can be reshaped first with Matricize, which
// flattens every non-sample mode into a single feature mode.
package stat
