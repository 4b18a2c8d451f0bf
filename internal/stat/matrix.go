package stat

import (
	"fmt"

	gstat "gonum.org/v1/gonum/stat"

	"github.com/weft-ml/weft/internal/tensor"
)

// Matricize reshapes a tensor of any mode count into a [samples,
// features] matrix, taking samples along sampleMode and flattening the
// remaining modes, in order, into the feature axis. The unfold step is
// free to emit the orientation that moves longer contiguous runs; the
// result is flipped back when the transposed one won, so callers
// always see samples in rows.
func Matricize(t *tensor.Tensor[float64], sampleMode int) (*tensor.Tensor[float64], error) {
	m, transposed, err := t.Unfold(sampleMode, true)
	if err != nil {
		return nil, err
	}
	if transposed {
		return m.Transpose()
	}
	return m, nil
}

// ColumnMeans returns the per-column means of a [samples, features]
// matrix as a [features] tensor.
func ColumnMeans(x *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	if x.ModeCount() != 2 {
		return nil, fmt.Errorf("column means need a 2-mode matrix, got shape %v: %w",
			x.Shape(), tensor.ErrShapeMismatch)
	}
	p := x.ModeSize(1)
	means := make([]float64, p)
	for j := 0; j < p; j++ {
		col, err := x.Slice(tensor.All, tensor.Pick(j))
		if err != nil {
			return nil, err
		}
		means[j] = gstat.Mean(col.Values(), nil)
	}
	return tensor.New(tensor.Shape{p}, means)
}

// CenterColumns subtracts each column's mean from every row of x, in
// place, and returns the means that were removed. The broadcast runs
// row by row through the combine primitive.
func CenterColumns(x *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	means, err := ColumnMeans(x)
	if err != nil {
		return nil, err
	}
	err = tensor.CombineOuter(x, []int{0}, means, nil, func(subsX, _ []tensor.Subscript) error {
		row, err := x.Slice(subsX...)
		if err != nil {
			return err
		}
		for j, v := range row.Values() {
			row.Values()[j] = v - means.AtOffset(j)
		}
		return x.SetSlice(row, subsX...)
	})
	if err != nil {
		return nil, err
	}
	return means, nil
}
