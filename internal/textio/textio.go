// Package textio reads and writes tensors as plain text.
//
// The format is line oriented. Lines starting with # are comments,
// except for the shape directive:
//
//	# shape: 2 3
//	1 2 3
//	4 5 6
//
// Values are separated by spaces, tabs, or commas. Without a shape
// directive every data line becomes one row, so a single line reads as
// a vector and multiple equal-length lines read as a matrix.
package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/weft-ml/weft/internal/tensor"
)

const shapeDirective = "# shape:"

// Read parses a tensor from r.
func Read(r io.Reader) (*tensor.Tensor[float64], error) {
	var (
		declared tensor.Shape
		hasShape bool
		values   []float64
		rows     int
		rowLen   = -1
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			rest, ok := strings.CutPrefix(line, shapeDirective)
			if !ok {
				continue
			}
			if hasShape {
				return nil, fmt.Errorf("line %d: duplicate shape directive", lineNo)
			}
			shape, err := parseShape(rest)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			declared, hasShape = shape, true
			continue
		}

		fields := splitFields(line)
		if rowLen == -1 {
			rowLen = len(fields)
		} else if len(fields) != rowLen {
			return nil, fmt.Errorf("line %d: row has %d values, want %d: %w",
				lineNo, len(fields), rowLen, tensor.ErrShapeMismatch)
		}
		rows++
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid value %q: %w", lineNo, f, err)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	if hasShape {
		if want := declared.ElementCount(); len(values) != want {
			return nil, fmt.Errorf("declared shape %v needs %d values, input has %d: %w",
				declared, want, len(values), tensor.ErrShapeMismatch)
		}
		return tensor.New(declared, values)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no values in input: %w", tensor.ErrEmptyTensor)
	}
	if rows == 1 {
		return tensor.New(tensor.Shape{rowLen}, values)
	}
	return tensor.New(tensor.Shape{rows, rowLen}, values)
}

// ReadFile parses a tensor from the file at path.
func ReadFile(path string) (*tensor.Tensor[float64], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	t, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Write emits t in the package's text format: a shape directive
// followed by the values, one innermost-mode run per line. The output
// reads back into an equal tensor.
func Write(w io.Writer, t *tensor.Tensor[float64]) error {
	bw := bufio.NewWriter(w)

	shape := t.Shape()
	bw.WriteString(shapeDirective)
	for _, size := range shape {
		fmt.Fprintf(bw, " %d", size)
	}
	bw.WriteByte('\n')

	rowLen := 1
	if len(shape) > 0 {
		rowLen = shape[len(shape)-1]
	}
	for i, v := range t.Values() {
		if i > 0 {
			if i%rowLen == 0 {
				bw.WriteByte('\n')
			} else {
				bw.WriteByte(' ')
			}
		}
		bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// WriteFile writes t to the file at path, creating or truncating it.
func WriteFile(path string, t *tensor.Tensor[float64]) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Write(file, t); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return file.Close()
}

func parseShape(s string) (tensor.Shape, error) {
	fields := strings.Fields(s)
	shape := make(tensor.Shape, 0, len(fields))
	for _, f := range fields {
		size, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid shape directive entry %q: %w", f, err)
		}
		shape = append(shape, size)
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}

func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
