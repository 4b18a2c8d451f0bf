// Package tensor implements the core multidimensional array engine for Weft.
package tensor

// Element is a constraint for supported tensor element types.
// It uses Go generics to ensure compile-time type safety.
type Element interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}
