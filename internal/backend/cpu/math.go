package cpu

import (
	"math"

	"github.com/born-ml/ndarray/internal/simd"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Exp computes e**x.
func Exp[T tensor.Float](x T) T { return T(math.Exp(float64(x))) }

// Log computes the natural logarithm of x.
func Log[T tensor.Float](x T) T { return T(math.Log(float64(x))) }

// Sqrt computes the square root of x.
func Sqrt[T tensor.Float](x T) T { return T(math.Sqrt(float64(x))) }

// Sin computes the sine of x.
func Sin[T tensor.Float](x T) T { return T(math.Sin(float64(x))) }

// Cos computes the cosine of x.
func Cos[T tensor.Float](x T) T { return T(math.Cos(float64(x))) }

// Abs returns |x|.
func Abs[T tensor.Numeric](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Square returns x*x.
func Square[T tensor.Numeric](x T) T { return x * x }

// SquareVec is the lane-wise Square.
func SquareVec[T tensor.Numeric](v simd.Vec[T]) simd.Vec[T] { return simd.Mul(v, v) }

// Pow returns a**b, computed in float64.
func Pow[T tensor.Numeric](a, b T) T { return T(math.Pow(float64(a), float64(b))) }

// IntPow returns x**k for k >= 0 by repeated squaring.
func IntPow[T tensor.Numeric](x T, k int) T {
	result := T(1)
	for k > 0 {
		if k&1 == 1 {
			result *= x
		}
		x *= x
		k >>= 1
	}
	return result
}

// Clip clamps x into bounds.
func Clip[T tensor.Numeric](x T, b simd.Bounds[T]) T {
	switch {
	case x < b.Lower:
		return b.Lower
	case x > b.Upper:
		return b.Upper
	default:
		return x
	}
}

// IsNaN reports whether x is not a number.
func IsNaN[T tensor.Float](x T) bool { return x != x }

// IsInf reports whether x is an infinity of either sign.
func IsInf[T tensor.Float](x T) bool { return math.IsInf(float64(x), 0) }

// Lanes lifts a scalar function to a lane-wise one.
func Lanes[T, U any](f func(T) U) func(simd.Vec[T]) simd.Vec[U] {
	return func(v simd.Vec[T]) simd.Vec[U] { return simd.Apply(v, f) }
}

// LanesParam lifts a parametrized scalar function to a lane-wise one.
func LanesParam[T, U, P any](f func(T, P) U) func(simd.Vec[T], P) simd.Vec[U] {
	return func(v simd.Vec[T], p P) simd.Vec[U] {
		var r simd.Vec[U]
		for i := range v {
			r[i] = f(v[i], p)
		}
		return r
	}
}

// Lanes2 lifts a binary scalar function to a lane-wise one.
func Lanes2[T, U any](f func(T, T) U) func(a, b simd.Vec[T]) simd.Vec[U] {
	return func(a, b simd.Vec[T]) simd.Vec[U] {
		var r simd.Vec[U]
		for i := range a {
			r[i] = f(a[i], b[i])
		}
		return r
	}
}
