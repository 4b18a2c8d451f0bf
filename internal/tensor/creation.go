package tensor

import (
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
// Panics if the shape has a non-positive mode size.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4})
func Zeros[T Element](shape Shape) *Tensor[T] {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	return newOwned(shape.Clone(), make([]T, shape.ElementCount()))
}

// Ones creates a tensor filled with ones.
func Ones[T Element](shape Shape) *Tensor[T] {
	return Full[T](shape, 1)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(Shape{3, 3}, 3.14)
func Full[T Element](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	for i := range t.values {
		t.values[i] = value
	}
	return t
}

// Arange creates a 1-D tensor with values from start to end (exclusive),
// stepping by one.
//
// Example:
//
//	t := tensor.Arange[int32](0, 10) // [0, 1, 2, ..., 9]
func Arange[T Element](start, end T) *Tensor[T] {
	n := int(end - start)
	if n <= 0 {
		panic("end must be greater than start")
	}
	t := Zeros[T](Shape{n})
	for i := range t.values {
		t.values[i] = start + T(i)
	}
	return t
}

// Eye creates an n-by-n identity matrix.
func Eye[T Element](n int) *Tensor[T] {
	t := Zeros[T](Shape{n, n})
	for i := 0; i < n; i++ {
		t.Set(1, i, i)
	}
	return t
}

// Rand creates a tensor with values uniformly distributed in [0, 1).
// Only works with float types.
func Rand[T Element](shape Shape) *Tensor[T] {
	requireFloat[T]("Rand")
	t := Zeros[T](shape)
	for i := range t.values {
		t.values[i] = T(rand.Float64()) //nolint:gosec // G404: math/rand is intentional for reproducible statistics
	}
	return t
}

// Randn creates a tensor with values drawn from the standard normal
// distribution, using the Box-Muller transform.
// Only works with float types.
//
// Example:
//
//	t := tensor.Randn[float64](Shape{100, 100})
func Randn[T Element](shape Shape) *Tensor[T] {
	requireFloat[T]("Randn")
	t := Zeros[T](shape)
	for i := 0; i < len(t.values); i += 2 {
		u1 := rand.Float64() //nolint:gosec // G404: math/rand is intentional for reproducible statistics
		u2 := rand.Float64() //nolint:gosec // G404: math/rand is intentional for reproducible statistics
		z0 := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
		z1 := math.Sqrt(-2.0*math.Log(u1)) * math.Sin(2.0*math.Pi*u2)
		t.values[i] = T(z0)
		if i+1 < len(t.values) {
			t.values[i+1] = T(z1)
		}
	}
	return t
}

func requireFloat[T Element](op string) {
	var dummy T
	switch any(dummy).(type) {
	case float32, float64:
	default:
		panic(op + " only supports float32 and float64 types")
	}
}
