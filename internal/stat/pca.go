package stat

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	gstat "gonum.org/v1/gonum/stat"

	"github.com/weft-ml/weft/internal/tensor"
)

// PCA is a fitted principal component analysis: an orthonormal basis
// for the directions of largest variance in the training data,
// ordered from most to least variance.
//
// Example:
//
//	pca, err := stat.FitPCA(x, 2)
//	scores, err := pca.Project(x)
type PCA struct {
	components *tensor.Tensor[float64] // [components, features]
	mean       *tensor.Tensor[float64] // [features]
	variances  []float64
}

// FitPCA computes the top principal axes of x. Observations are laid
// out as for Fit: [samples, features], [samples] for a single feature,
// or higher mode counts flattened along mode 0. It needs at least two
// samples and 1 <= components <= features.
func FitPCA(x *tensor.Tensor[float64], components int) (*PCA, error) {
	xm, err := featureMatrix(x)
	if err != nil {
		return nil, err
	}
	n, p := xm.Dims()
	if n < 2 {
		return nil, fmt.Errorf("pca needs at least 2 samples, got %d", n)
	}
	if components < 1 || components > p {
		return nil, fmt.Errorf("cannot take %d components from %d features: %w",
			components, p, tensor.ErrShapeMismatch)
	}

	// Work on a centered copy so the caller's data stays untouched.
	centered, err := tensor.New(tensor.Shape{n, p}, xm.RawMatrix().Data)
	if err != nil {
		return nil, err
	}
	mean, err := CenterColumns(centered)
	if err != nil {
		return nil, err
	}

	cov := mat.NewSymDense(p, nil)
	gstat.CovarianceMatrix(cov, mat.NewDense(n, p, centered.Values()), nil)

	var eig mat.EigenSym
	if !eig.Factorize(cov, true) {
		return nil, fmt.Errorf("pca eigendecomposition did not converge")
	}
	vals := eig.Values(nil) // ascending
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Keep the top axes, largest eigenvalue first.
	comps := make([]float64, components*p)
	variances := make([]float64, components)
	for c := 0; c < components; c++ {
		src := p - 1 - c
		variances[c] = vals[src]
		for j := 0; j < p; j++ {
			comps[c*p+j] = vecs.At(j, src)
		}
	}
	compTensor, err := tensor.New(tensor.Shape{components, p}, comps)
	if err != nil {
		return nil, err
	}
	return &PCA{components: compTensor, mean: mean, variances: variances}, nil
}

// Components returns a copy of the principal axes as a [components,
// features] matrix, one axis per row.
func (p *PCA) Components() *tensor.Tensor[float64] {
	return p.components.Clone()
}

// Mean returns a copy of the per-feature training means.
func (p *PCA) Mean() *tensor.Tensor[float64] {
	return p.mean.Clone()
}

// ExplainedVariance returns the variance along each kept axis, largest
// first.
func (p *PCA) ExplainedVariance() []float64 {
	v := make([]float64, len(p.variances))
	copy(v, p.variances)
	return v
}

// Project maps observations, laid out as for FitPCA, into the fitted
// component space and returns their scores as a [samples, components]
// tensor.
func (p *PCA) Project(x *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	xm, err := featureMatrix(x)
	if err != nil {
		return nil, err
	}
	n, features := xm.Dims()
	if features != p.mean.ElementCount() {
		return nil, fmt.Errorf("pca was fitted on %d features, observations have %d: %w",
			p.mean.ElementCount(), features, tensor.ErrShapeMismatch)
	}

	centered := mat.NewDense(n, features, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < features; j++ {
			centered.Set(i, j, xm.At(i, j)-p.mean.AtOffset(j))
		}
	}

	k := p.components.ModeSize(0)
	axes := mat.NewDense(k, features, p.components.Values())
	var scores mat.Dense
	scores.Mul(centered, axes.T())

	out := make([]float64, n*k)
	for i := 0; i < n; i++ {
		for c := 0; c < k; c++ {
			out[i*k+c] = scores.At(i, c)
		}
	}
	return tensor.New(tensor.Shape{n, k}, out)
}
