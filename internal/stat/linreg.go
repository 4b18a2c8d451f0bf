// Package stat implements statistical models on top of the tensor
// engine: ordinary least squares, gradient descent fitting, and
// principal component analysis.
package stat

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	gstat "gonum.org/v1/gonum/stat"

	"github.com/weft-ml/weft/internal/tensor"
)

// LinearModel is a fitted linear regression y = b0 + b1*x1 + ... + bp*xp.
//
// Example:
//
//	model, err := stat.Fit(x, y)
//	pred, err := model.Predict(x)
type LinearModel struct {
	coeffs []float64 // intercept first, then one weight per feature
}

// Intercept returns the fitted constant term.
func (m *LinearModel) Intercept() float64 {
	return m.coeffs[0]
}

// Coefficients returns a copy of the fitted feature weights, without
// the intercept.
func (m *LinearModel) Coefficients() []float64 {
	w := make([]float64, len(m.coeffs)-1)
	copy(w, m.coeffs[1:])
	return w
}

// Fit computes the least-squares linear model for the observations in
// x and the targets in y, shape [samples]. Observations are shaped
// [samples, features], [samples] for a single feature, or anything
// higher with samples along mode 0 and the remaining modes flattened
// into features. The system is solved through a QR factorization, so
// an overdetermined sample set yields the usual least-squares
// estimate.
func Fit(x, y *tensor.Tensor[float64]) (*LinearModel, error) {
	design, n, err := designMatrix(x)
	if err != nil {
		return nil, err
	}
	yv, err := targetVector(y, n)
	if err != nil {
		return nil, err
	}

	var beta mat.Dense
	if err := beta.Solve(design, yv); err != nil {
		return nil, fmt.Errorf("solving normal system: %w", err)
	}

	_, p1 := design.Dims()
	coeffs := make([]float64, p1)
	for j := range coeffs {
		coeffs[j] = beta.At(j, 0)
	}
	return &LinearModel{coeffs: coeffs}, nil
}

// GDConfig holds configuration for gradient descent fitting.
type GDConfig struct {
	LearningRate float64 // step size (default: 0.01)
	Steps        int     // number of full-batch iterations (default: 1000)
}

// FitGD fits the same model as Fit with full-batch gradient descent on
// the mean squared error. It exists for data too poorly conditioned
// for the direct solve, and for arbitrarily large step counts the two
// agree on well-behaved inputs.
func FitGD(x, y *tensor.Tensor[float64], config GDConfig) (*LinearModel, error) {
	// Set defaults
	if config.LearningRate == 0 {
		config.LearningRate = 0.01
	}
	if config.Steps == 0 {
		config.Steps = 1000
	}

	design, n, err := designMatrix(x)
	if err != nil {
		return nil, err
	}
	yv, err := targetVector(y, n)
	if err != nil {
		return nil, err
	}

	_, p1 := design.Dims()
	beta := mat.NewDense(p1, 1, nil)
	var pred, resid, grad, step mat.Dense
	for i := 0; i < config.Steps; i++ {
		pred.Mul(design, beta)
		resid.Sub(&pred, yv)
		grad.Mul(design.T(), &resid)
		step.Scale(2*config.LearningRate/float64(n), &grad)
		beta.Sub(beta, &step)
	}

	coeffs := make([]float64, p1)
	for j := range coeffs {
		coeffs[j] = beta.At(j, 0)
	}
	return &LinearModel{coeffs: coeffs}, nil
}

// Predict evaluates the model on new observations, laid out as for
// Fit, and returns the predictions as a [samples] tensor.
func (m *LinearModel) Predict(x *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	design, n, err := designMatrix(x)
	if err != nil {
		return nil, err
	}
	if _, p1 := design.Dims(); p1 != len(m.coeffs) {
		return nil, fmt.Errorf("model has %d features, observations have %d: %w",
			len(m.coeffs)-1, p1-1, tensor.ErrShapeMismatch)
	}

	beta := mat.NewDense(len(m.coeffs), 1, m.coeffs)
	var pred mat.Dense
	pred.Mul(design, beta)

	out := make([]float64, n)
	for i := range out {
		out[i] = pred.At(i, 0)
	}
	return tensor.New(tensor.Shape{n}, out)
}

// Score returns the coefficient of determination (R squared) of the
// model's predictions for x against the targets y.
func (m *LinearModel) Score(x, y *tensor.Tensor[float64]) (float64, error) {
	pred, err := m.Predict(x)
	if err != nil {
		return 0, err
	}
	if _, err := targetVector(y, pred.ElementCount()); err != nil {
		return 0, err
	}
	return gstat.RSquaredFrom(pred.Values(), y.Values(), nil), nil
}

// designMatrix lays the observations out as an augmented [samples,
// 1+features] matrix with a leading column of ones for the intercept.
func designMatrix(x *tensor.Tensor[float64]) (*mat.Dense, int, error) {
	xm, err := featureMatrix(x)
	if err != nil {
		return nil, 0, err
	}
	n, p := xm.Dims()
	design := mat.NewDense(n, p+1, nil)
	for i := 0; i < n; i++ {
		design.Set(i, 0, 1)
		for j := 0; j < p; j++ {
			design.Set(i, j+1, xm.At(i, j))
		}
	}
	return design, n, nil
}

// featureMatrix adapts observations to a gonum matrix: [samples] maps
// to a single column, [samples, features] wraps the buffer directly,
// and higher mode counts are matricized along mode 0 so the trailing
// modes collapse into the feature axis.
func featureMatrix(x *tensor.Tensor[float64]) (*mat.Dense, error) {
	switch x.ModeCount() {
	case 0:
		return nil, fmt.Errorf("observations need at least 1 mode: %w", tensor.ErrShapeMismatch)
	case 1:
		return mat.NewDense(x.ModeSize(0), 1, x.Values()), nil
	case 2:
		return mat.NewDense(x.ModeSize(0), x.ModeSize(1), x.Values()), nil
	default:
		m, err := Matricize(x, 0)
		if err != nil {
			return nil, err
		}
		return mat.NewDense(m.ModeSize(0), m.ModeSize(1), m.Values()), nil
	}
}

func targetVector(y *tensor.Tensor[float64], n int) (*mat.Dense, error) {
	if y.ModeCount() != 1 || y.ModeSize(0) != n {
		return nil, fmt.Errorf("targets must have shape [%d], got %v: %w",
			n, y.Shape(), tensor.ErrShapeMismatch)
	}
	return mat.NewDense(n, 1, y.Values()), nil
}
