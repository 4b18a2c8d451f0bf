package textio

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-ml/weft/internal/tensor"
)

func TestReadVector(t *testing.T) {
	got, err := Read(strings.NewReader("1 2.5 -3\n"))
	require.NoError(t, err)

	require.True(t, got.Shape().Equal(tensor.Shape{3}))
	assert.Equal(t, []float64{1, 2.5, -3}, got.Values())
}

func TestReadMatrix(t *testing.T) {
	got, err := Read(strings.NewReader("1 2 3\n4 5 6\n"))
	require.NoError(t, err)

	require.True(t, got.Shape().Equal(tensor.Shape{2, 3}))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, got.Values())
}

func TestReadCommaSeparated(t *testing.T) {
	got, err := Read(strings.NewReader("1,2,3\n4, 5, 6\n"))
	require.NoError(t, err)

	require.True(t, got.Shape().Equal(tensor.Shape{2, 3}))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, got.Values())
}

func TestReadSkipsCommentsAndBlankLines(t *testing.T) {
	input := "# sensor dump\n\n1 2\n# mid-file note\n3 4\n\n"
	got, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	require.True(t, got.Shape().Equal(tensor.Shape{2, 2}))
	assert.Equal(t, []float64{1, 2, 3, 4}, got.Values())
}

func TestReadShapeDirective(t *testing.T) {
	input := "# shape: 2 2 2\n1 2 3 4\n5 6 7 8\n"
	got, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	require.True(t, got.Shape().Equal(tensor.Shape{2, 2, 2}))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, got.Values())
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("1 2\n3\n"))
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = Read(strings.NewReader("1 x 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid value "x"`)

	_, err = Read(strings.NewReader("# shape: 2 3\n1 2 3\n"))
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = Read(strings.NewReader("# comment only\n"))
	require.ErrorIs(t, err, tensor.ErrEmptyTensor)

	_, err = Read(strings.NewReader("# shape: 2\n# shape: 2\n1 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate shape directive")

	_, err = Read(strings.NewReader("# shape: two\n1 2\n"))
	require.Error(t, err)

	_, err = Read(strings.NewReader("# shape: 0\n"))
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestWriteLaysOutRows(t *testing.T) {
	tsr, err := tensor.New(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tsr))

	assert.Equal(t, "# shape: 2 3\n1 2 3\n4 5 6\n", buf.String())
}

func TestRoundTrip(t *testing.T) {
	tensors := []*tensor.Tensor[float64]{}

	t1, err := tensor.New(tensor.Shape{2, 3}, []float64{1.0 / 3.0, math.Pi, -2.75e-9, 4, 5e20, -6})
	require.NoError(t, err)
	tensors = append(tensors, t1)

	t2, err := tensor.New(tensor.Shape{5}, []float64{0.1, 0.2, 0.3, 0.4, 0.5})
	require.NoError(t, err)
	tensors = append(tensors, t2)

	t3, err := tensor.New(tensor.Shape{}, []float64{42.125})
	require.NoError(t, err)
	tensors = append(tensors, t3)

	t4, err := tensor.New(tensor.Shape{2, 2, 2}, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	tensors = append(tensors, t4)

	for _, src := range tensors {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, src))

		back, err := Read(&buf)
		require.NoError(t, err)
		assert.True(t, src.Equal(back), "round trip changed tensor: shape %v", src.Shape())
	}
}

func TestReadWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	src, err := tensor.New(tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	require.NoError(t, WriteFile(path, src))
	back, err := ReadFile(path)
	require.NoError(t, err)
	assert.True(t, src.Equal(back))

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
