// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndarray/internal/array"
)

// Arithmetic operations. Operands broadcast; the result is a new array.

// Add returns a + b.
func Add[T Numeric](a, b Array[T]) Array[T] { return array.Add(a, b) }

// Sub returns a - b.
func Sub[T Numeric](a, b Array[T]) Array[T] { return array.Sub(a, b) }

// Mul returns a * b.
func Mul[T Numeric](a, b Array[T]) Array[T] { return array.Mul(a, b) }

// Div returns a / b.
func Div[T Numeric](a, b Array[T]) Array[T] { return array.Div(a, b) }

// Mod returns the remainder of a / b with the sign of a.
func Mod[T Integer](a, b Array[T]) Array[T] { return array.Mod(a, b) }

// Maximum returns the elementwise larger of a and b.
func Maximum[T Numeric](a, b Array[T]) Array[T] { return array.Maximum(a, b) }

// Minimum returns the elementwise smaller of a and b.
func Minimum[T Numeric](a, b Array[T]) Array[T] { return array.Minimum(a, b) }

// Pow returns a**b, computed in float64.
func Pow[T Numeric](a, b Array[T]) Array[T] { return array.Pow(a, b) }

// Comparison operations (return Array[bool]).

// Less returns a < b.
func Less[T Numeric](a, b Array[T]) Array[bool] { return array.Less(a, b) }

// LessEqual returns a <= b.
func LessEqual[T Numeric](a, b Array[T]) Array[bool] { return array.LessEqual(a, b) }

// Greater returns a > b.
func Greater[T Numeric](a, b Array[T]) Array[bool] { return array.Greater(a, b) }

// GreaterEqual returns a >= b.
func GreaterEqual[T Numeric](a, b Array[T]) Array[bool] { return array.GreaterEqual(a, b) }

// Equal returns a == b.
func Equal[T DType](a, b Array[T]) Array[bool] { return array.Equal(a, b) }

// NotEqual returns a != b.
func NotEqual[T DType](a, b Array[T]) Array[bool] { return array.NotEqual(a, b) }

// And returns a && b.
func And(a, b Array[bool]) Array[bool] { return array.And(a, b) }

// Or returns a || b.
func Or(a, b Array[bool]) Array[bool] { return array.Or(a, b) }

// Not returns !a.
func Not(a Array[bool]) Array[bool] { return array.Not(a) }

// In-place operations. src must broadcast into dst without growing it.

// AddAssign performs dst += src.
func AddAssign[T Numeric](dst, src Array[T]) { array.AddAssign(dst, src) }

// SubAssign performs dst -= src.
func SubAssign[T Numeric](dst, src Array[T]) { array.SubAssign(dst, src) }

// MulAssign performs dst *= src.
func MulAssign[T Numeric](dst, src Array[T]) { array.MulAssign(dst, src) }

// DivAssign performs dst /= src.
func DivAssign[T Numeric](dst, src Array[T]) { array.DivAssign(dst, src) }

// ModAssign performs dst %= src.
func ModAssign[T Integer](dst, src Array[T]) { array.ModAssign(dst, src) }

// AndAssign performs dst = dst && src.
func AndAssign(dst, src Array[bool]) { array.AndAssign(dst, src) }

// OrAssign performs dst = dst || src.
func OrAssign(dst, src Array[bool]) { array.OrAssign(dst, src) }

// Math operations.

// Exp returns e**a.
func Exp[T Float](a Array[T]) Array[T] { return array.Exp(a) }

// Log returns the natural logarithm of a.
func Log[T Float](a Array[T]) Array[T] { return array.Log(a) }

// Sqrt returns the square root of a.
func Sqrt[T Float](a Array[T]) Array[T] { return array.Sqrt(a) }

// Sin returns the sine of a.
func Sin[T Float](a Array[T]) Array[T] { return array.Sin(a) }

// Cos returns the cosine of a.
func Cos[T Float](a Array[T]) Array[T] { return array.Cos(a) }

// Abs returns |a|.
func Abs[T Numeric](a Array[T]) Array[T] { return array.Abs(a) }

// Neg returns -a.
func Neg[T Numeric](a Array[T]) Array[T] { return array.Neg(a) }

// Square returns a*a.
func Square[T Numeric](a Array[T]) Array[T] { return array.Square(a) }

// IntPow raises every element to the non-negative integer power k.
func IntPow[T Numeric](a Array[T], k int) Array[T] { return array.IntPow(a, k) }

// Clip clamps every element into [lower, upper].
func Clip[T Numeric](a Array[T], lower, upper T) Array[T] { return array.Clip(a, lower, upper) }

// IsNaN reports which elements are not a number.
func IsNaN[T Float](a Array[T]) Array[bool] { return array.IsNaN(a) }

// IsInf reports which elements are infinite.
func IsInf[T Float](a Array[T]) Array[bool] { return array.IsInf(a) }

// CheckNumerics reports whether a contains a NaN or an infinity.
func CheckNumerics[T Float](a Array[T]) bool { return array.CheckNumerics(a) }

// Type conversion.

// Convert returns a copy of a with every element converted to U.
//
// Example:
//
//	i := tensor.Convert[int32](x)
func Convert[U, T Numeric](a Array[T]) Array[U] { return array.Convert[U](a) }

// FromBool converts a mask to numbers: 1 for true, 0 for false.
func FromBool[U Numeric](a Array[bool]) Array[U] { return array.FromBool[U](a) }

// Reductions. The reduced axes are dropped, or kept with extent 1 when
// keepDims is set. Negative axes count from the end.

// ReduceSum sums a over axes.
func ReduceSum[T Numeric](a Array[T], axes []int, keepDims bool) Array[T] {
	return array.ReduceSum(a, axes, keepDims)
}

// ReduceProduct multiplies a over axes.
func ReduceProduct[T Numeric](a Array[T], axes []int, keepDims bool) Array[T] {
	return array.ReduceProduct(a, axes, keepDims)
}

// ReduceMax takes the maximum of a over axes.
func ReduceMax[T Numeric](a Array[T], axes []int, keepDims bool) Array[T] {
	return array.ReduceMax(a, axes, keepDims)
}

// ReduceMin takes the minimum of a over axes.
func ReduceMin[T Numeric](a Array[T], axes []int, keepDims bool) Array[T] {
	return array.ReduceMin(a, axes, keepDims)
}

// ReduceMean averages a over axes.
func ReduceMean[T Numeric](a Array[T], axes []int, keepDims bool) Array[T] {
	return array.ReduceMean(a, axes, keepDims)
}

// ReduceAny reports whether some element over axes is non-zero.
func ReduceAny[T DType](a Array[T], axes []int, keepDims bool) Array[bool] {
	return array.ReduceAny(a, axes, keepDims)
}

// ReduceAll reports whether every element over axes is non-zero.
func ReduceAll[T DType](a Array[T], axes []int, keepDims bool) Array[bool] {
	return array.ReduceAll(a, axes, keepDims)
}

// Sum returns the sum of every element.
func Sum[T Numeric](a Array[T]) T { return array.Sum(a) }

// Mean returns the mean of every element.
func Mean[T Numeric](a Array[T]) T { return array.Mean(a) }

// Matrix multiplication.

// MatMul returns the batched matrix product of a and b.
//
// Example:
//
//	w, _ := tensor.Zeros[float32](3, 4)
//	y := tensor.MatMul(x, w) // [..., n, 3] x [3, 4] -> [..., n, 4]
func MatMul[T Numeric](a, b Array[T]) Array[T] { return array.MatMul(a, b) }

// MatMulAxes is MatMul contracting a along leftProductAxis and b along rightProductAxis.
func MatMulAxes[T Numeric](a, b Array[T], leftProductAxis, rightProductAxis int) Array[T] {
	return array.MatMulAxes(a, b, leftProductAxis, rightProductAxis)
}

// MatMulInto writes, or with opts.Zero unset accumulates, the product of a
// and b into dst. dst may drop product axes, which are then summed over.
func MatMulInto[T Numeric](dst, a, b Array[T], opts MatMulOptions) {
	array.MatMulInto(dst, a, b, opts)
}

// DefaultMatMulOptions contracts the last axis of a with the second-to-last
// axis of b and overwrites the destination.
func DefaultMatMulOptions() MatMulOptions { return array.DefaultMatMulOptions() }

// Searching.

// FindWhere lists the indices of the elements satisfying pred as an [n, rank] array.
func FindWhere[T DType](a Array[T], pred func(T) bool) Array[int64] { return array.FindWhere(a, pred) }

// FindZero lists the indices of the zero elements.
func FindZero[T DType](a Array[T]) Array[int64] { return array.FindZero(a) }

// FindNonZero lists the indices of the non-zero elements.
func FindNonZero[T DType](a Array[T]) Array[int64] { return array.FindNonZero(a) }

// OneHot encodes a against the values [from, to) along a new trailing axis.
func OneHot[U Numeric, T Integer](a Array[T], from, to T) Array[U] {
	return array.OneHot[U](a, from, to)
}

// OneHotAuto is OneHot over [min(a), max(a)].
func OneHotAuto[U Numeric, T Integer](a Array[T]) Array[U] { return array.OneHotAuto[U](a) }
