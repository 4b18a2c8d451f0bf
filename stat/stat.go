// Copyright 2026 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package stat

import (
	"github.com/weft-ml/weft/internal/stat"
	"github.com/weft-ml/weft/internal/tensor"
)

// Regression

// LinearModel represents a fitted linear regression model.
type LinearModel = stat.LinearModel

// GDConfig contains configuration for gradient descent fitting.
type GDConfig = stat.GDConfig

// Fit fits a linear model with ordinary least squares.
//
// Example:
//
//	x, _ := tensor.New(tensor.Shape{4, 1}, []float64{0, 1, 2, 3})
//	y, _ := tensor.New(tensor.Shape{4}, []float64{1, 3, 5, 7})
//	model, err := stat.Fit(x, y)
func Fit(x, y *tensor.Tensor[float64]) (*LinearModel, error) {
	return stat.Fit(x, y)
}

// FitGD fits a linear model with full batch gradient descent.
//
// Example:
//
//	model, err := stat.FitGD(x, y, stat.GDConfig{
//	    LearningRate: 0.01,
//	    Steps:        1000,
//	})
func FitGD(x, y *tensor.Tensor[float64], config GDConfig) (*LinearModel, error) {
	return stat.FitGD(x, y, config)
}

// Principal Component Analysis

// PCA represents a fitted principal component analysis.
type PCA = stat.PCA

// FitPCA fits a PCA with the requested number of components.
//
// Example:
//
//	pca, err := stat.FitPCA(x, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	scores, _ := pca.Project(x)
func FitPCA(x *tensor.Tensor[float64], components int) (*PCA, error) {
	return stat.FitPCA(x, components)
}

// Matrix helpers

// Matricize flattens a tensor into a samples-by-features matrix, keeping
// sampleMode as the row mode.
func Matricize(t *tensor.Tensor[float64], sampleMode int) (*tensor.Tensor[float64], error) {
	return stat.Matricize(t, sampleMode)
}

// ColumnMeans returns the per-column means of a matrix.
func ColumnMeans(x *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	return stat.ColumnMeans(x)
}

// CenterColumns subtracts the column means from x in place and returns
// the means that were removed.
func CenterColumns(x *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	return stat.CenterColumns(x)
}
