package cpu

import (
	"math"

	"github.com/born-ml/ndarray/internal/simd"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Scalar element functions. Each has a lane-wise counterpart in package simd
// or below, and the pair is handed to the dispatch core together.

// Add returns a + b.
func Add[T tensor.Numeric](a, b T) T { return a + b }

// Sub returns a - b.
func Sub[T tensor.Numeric](a, b T) T { return a - b }

// Mul returns a * b.
func Mul[T tensor.Numeric](a, b T) T { return a * b }

// Div returns a / b. Integer division by zero panics.
func Div[T tensor.Numeric](a, b T) T { return a / b }

// Max returns the larger of a and b; a when they compare equal or unordered.
func Max[T tensor.Numeric](a, b T) T {
	if b > a {
		return b
	}
	return a
}

// Min returns the smaller of a and b; a when they compare equal or unordered.
func Min[T tensor.Numeric](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Neg returns -x.
func Neg[T tensor.Numeric](x T) T { return -x }

// NegVec is the lane-wise Neg.
func NegVec[T tensor.Numeric](v simd.Vec[T]) simd.Vec[T] {
	return simd.Sub(simd.Zero[T](), v)
}

// Identity returns x.
func Identity[T any](x T) T { return x }

// IdentityVec returns v.
func IdentityVec[T any](v simd.Vec[T]) simd.Vec[T] { return v }

// Mod returns the remainder of truncated division; it has the sign of a.
func Mod[T tensor.Integer](a, b T) T { return a % b }

// Lowest returns the most negative finite value of T (0 for unsigned types).
func Lowest[T tensor.Numeric]() T {
	switch tensor.DTypeOf[T]() {
	case tensor.Float32:
		v := -math.MaxFloat32
		return T(v)
	case tensor.Float64:
		v := -math.MaxFloat64
		return T(v)
	case tensor.Int8:
		v := int64(math.MinInt8)
		return T(v)
	case tensor.Int16:
		v := int64(math.MinInt16)
		return T(v)
	case tensor.Int32:
		v := int64(math.MinInt32)
		return T(v)
	case tensor.Int64, tensor.Int:
		v := int64(math.MinInt64)
		return T(v)
	default:
		return 0
	}
}

// Highest returns the largest finite value of T.
func Highest[T tensor.Numeric]() T {
	switch tensor.DTypeOf[T]() {
	case tensor.Float32:
		v := math.MaxFloat32
		return T(v)
	case tensor.Float64:
		v := math.MaxFloat64
		return T(v)
	case tensor.Int8:
		v := int64(math.MaxInt8)
		return T(v)
	case tensor.Int16:
		v := int64(math.MaxInt16)
		return T(v)
	case tensor.Int32:
		v := int64(math.MaxInt32)
		return T(v)
	case tensor.Int64, tensor.Int:
		v := int64(math.MaxInt64)
		return T(v)
	case tensor.Uint8:
		v := uint64(math.MaxUint8)
		return T(v)
	case tensor.Uint16:
		v := uint64(math.MaxUint16)
		return T(v)
	case tensor.Uint32:
		v := uint64(math.MaxUint32)
		return T(v)
	default:
		v := uint64(math.MaxUint64)
		return T(v)
	}
}
