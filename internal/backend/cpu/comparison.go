package cpu

import (
	"github.com/born-ml/ndarray/internal/simd"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Comparison functions return bool results and pair with the *Vec variants.

// Less returns a < b.
func Less[T tensor.Numeric](a, b T) bool { return a < b }

// LessEqual returns a <= b.
func LessEqual[T tensor.Numeric](a, b T) bool { return a <= b }

// Greater returns a > b.
func Greater[T tensor.Numeric](a, b T) bool { return a > b }

// GreaterEqual returns a >= b.
func GreaterEqual[T tensor.Numeric](a, b T) bool { return a >= b }

// Equal returns a == b.
func Equal[T comparable](a, b T) bool { return a == b }

// NotEqual returns a != b.
func NotEqual[T comparable](a, b T) bool { return a != b }

// GreaterVec is the lane-wise Greater.
func GreaterVec[T tensor.Numeric](a, b simd.Vec[T]) simd.Mask { return simd.Less(b, a) }

// GreaterEqualVec is the lane-wise GreaterEqual.
func GreaterEqualVec[T tensor.Numeric](a, b simd.Vec[T]) simd.Mask { return simd.LessEqual(b, a) }
