package array

import (
	"github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/simd"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Exp returns e**a elementwise.
func Exp[T tensor.Float](a Array[T]) Array[T] {
	return unary(a, cpu.Exp[T], cpu.Lanes(cpu.Exp[T]))
}

// Log returns the natural logarithm of a elementwise.
func Log[T tensor.Float](a Array[T]) Array[T] {
	return unary(a, cpu.Log[T], cpu.Lanes(cpu.Log[T]))
}

// Sqrt returns the square root of a elementwise.
func Sqrt[T tensor.Float](a Array[T]) Array[T] {
	return unary(a, cpu.Sqrt[T], cpu.Lanes(cpu.Sqrt[T]))
}

// Sin returns the sine of a elementwise.
func Sin[T tensor.Float](a Array[T]) Array[T] {
	return unary(a, cpu.Sin[T], cpu.Lanes(cpu.Sin[T]))
}

// Cos returns the cosine of a elementwise.
func Cos[T tensor.Float](a Array[T]) Array[T] {
	return unary(a, cpu.Cos[T], cpu.Lanes(cpu.Cos[T]))
}

// Abs returns |a| elementwise.
func Abs[T tensor.Numeric](a Array[T]) Array[T] {
	return unary(a, cpu.Abs[T], cpu.Lanes(cpu.Abs[T]))
}

// Neg returns -a elementwise.
func Neg[T tensor.Numeric](a Array[T]) Array[T] {
	return unary(a, cpu.Neg[T], cpu.NegVec[T])
}

// Square returns a*a elementwise.
func Square[T tensor.Numeric](a Array[T]) Array[T] {
	return unary(a, cpu.Square[T], cpu.SquareVec[T])
}

// IntPow raises every element to the non-negative integer power k.
func IntPow[T tensor.Numeric](a Array[T], k int) Array[T] {
	if k < 0 {
		usage(tensor.ErrInvalidArgument, "int_pow: negative exponent %d", k)
	}
	result := newArray[T](a.shape)
	cpu.UnaryParam(result.strided(), a.strided(), k, cpu.IntPow[T], cpu.LanesParam(cpu.IntPow[T]))
	return result
}

// Clip clamps every element into [lower, upper].
func Clip[T tensor.Numeric](a Array[T], lower, upper T) Array[T] {
	if lower > upper {
		usage(tensor.ErrInvalidArgument, "clip: lower bound %v above upper bound %v", lower, upper)
	}
	result := newArray[T](a.shape)
	bounds := simd.Bounds[T]{Lower: lower, Upper: upper}
	cpu.UnaryParam(result.strided(), a.strided(), bounds, cpu.Clip[T], simd.Clip[T])
	return result
}

// IsNaN reports, elementwise, whether a is not a number.
func IsNaN[T tensor.Float](a Array[T]) Array[bool] {
	return unary(a, cpu.IsNaN[T], cpu.Lanes(cpu.IsNaN[T]))
}

// IsInf reports, elementwise, whether a is infinite.
func IsInf[T tensor.Float](a Array[T]) Array[bool] {
	return unary(a, cpu.IsInf[T], cpu.Lanes(cpu.IsInf[T]))
}

// CheckNumerics reports whether a contains a NaN or an infinity.
func CheckNumerics[T tensor.Float](a Array[T]) bool {
	return ReduceAny(IsNaN(a), a.Axes(), false).Item() || ReduceAny(IsInf(a), a.Axes(), false).Item()
}

// Convert returns a copy of a with every element converted to U.
func Convert[U, T tensor.Numeric](a Array[T]) Array[U] {
	return unary(a, func(x T) U { return U(x) }, nil)
}

// FromBool converts a bool array to numbers: 1 for true, 0 for false.
func FromBool[U tensor.Numeric](a Array[bool]) Array[U] {
	return unary(a, func(x bool) U {
		if x {
			return 1
		}
		return 0
	}, nil)
}
