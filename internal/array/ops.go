package array

import (
	"github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/simd"
	"github.com/born-ml/ndarray/internal/tensor"
)

// binary combines a and b elementwise into a new array of their broadcast shape.
func binary[T, U tensor.DType](op string, a, b Array[T], f func(T, T) U, vf func(x, y simd.Vec[T]) simd.Vec[U]) Array[U] {
	result := newArray[U](broadcastShape(op, a.shape, b.shape))
	cpu.Binary(result.strided(), a.strided(), b.strided(), f, vf)
	return result
}

// inPlace updates dst with f(dst, src), broadcasting src over dst.
func inPlace[T tensor.DType](op string, dst, src Array[T], f func(T, T) T, vf func(x, y simd.Vec[T]) simd.Vec[T]) {
	checkInPlace(op, dst.shape, src.shape)
	d := dst.strided()
	cpu.Binary(d, d, src.strided(), f, vf)
}

// unary maps f over a into a new array of the same shape.
func unary[T, U tensor.DType](a Array[T], f func(T) U, vf func(simd.Vec[T]) simd.Vec[U]) Array[U] {
	result := newArray[U](a.shape)
	cpu.Unary(result.strided(), a.strided(), f, vf)
	return result
}

// Add returns a + b, broadcasting.
func Add[T tensor.Numeric](a, b Array[T]) Array[T] {
	return binary("add", a, b, cpu.Add[T], simd.Add[T])
}

// Sub returns a - b, broadcasting.
func Sub[T tensor.Numeric](a, b Array[T]) Array[T] {
	return binary("sub", a, b, cpu.Sub[T], simd.Sub[T])
}

// Mul returns a * b, broadcasting.
func Mul[T tensor.Numeric](a, b Array[T]) Array[T] {
	return binary("mul", a, b, cpu.Mul[T], simd.Mul[T])
}

// Div returns a / b, broadcasting. Integer division by zero panics.
func Div[T tensor.Numeric](a, b Array[T]) Array[T] {
	return binary("div", a, b, cpu.Div[T], simd.Div[T])
}

// Mod returns the remainder of a / b with the sign of a, broadcasting.
func Mod[T tensor.Integer](a, b Array[T]) Array[T] {
	return binary("mod", a, b, cpu.Mod[T], cpu.Lanes2(cpu.Mod[T]))
}

// Maximum returns the elementwise larger of a and b.
func Maximum[T tensor.Numeric](a, b Array[T]) Array[T] {
	return binary("maximum", a, b, cpu.Max[T], simd.Max[T])
}

// Minimum returns the elementwise smaller of a and b.
func Minimum[T tensor.Numeric](a, b Array[T]) Array[T] {
	return binary("minimum", a, b, cpu.Min[T], simd.Min[T])
}

// Pow returns a**b elementwise, computed in float64.
func Pow[T tensor.Numeric](a, b Array[T]) Array[T] {
	return binary("pow", a, b, cpu.Pow[T], cpu.Lanes2(cpu.Pow[T]))
}

// Less returns a < b elementwise.
func Less[T tensor.Numeric](a, b Array[T]) Array[bool] {
	return binary("less", a, b, cpu.Less[T], simd.Less[T])
}

// LessEqual returns a <= b elementwise.
func LessEqual[T tensor.Numeric](a, b Array[T]) Array[bool] {
	return binary("less_equal", a, b, cpu.LessEqual[T], simd.LessEqual[T])
}

// Greater returns a > b elementwise.
func Greater[T tensor.Numeric](a, b Array[T]) Array[bool] {
	return binary("greater", a, b, cpu.Greater[T], cpu.GreaterVec[T])
}

// GreaterEqual returns a >= b elementwise.
func GreaterEqual[T tensor.Numeric](a, b Array[T]) Array[bool] {
	return binary("greater_equal", a, b, cpu.GreaterEqual[T], cpu.GreaterEqualVec[T])
}

// Equal returns a == b elementwise.
func Equal[T tensor.DType](a, b Array[T]) Array[bool] {
	return binary("equal", a, b, cpu.Equal[T], simd.Equal[T])
}

// NotEqual returns a != b elementwise.
func NotEqual[T tensor.DType](a, b Array[T]) Array[bool] {
	return binary("not_equal", a, b, cpu.NotEqual[T], simd.NotEqual[T])
}

// And returns a && b elementwise.
func And(a, b Array[bool]) Array[bool] {
	return binary("and", a, b, cpu.And, simd.And)
}

// Or returns a || b elementwise.
func Or(a, b Array[bool]) Array[bool] {
	return binary("or", a, b, cpu.Or, simd.Or)
}

// Not returns !a elementwise.
func Not(a Array[bool]) Array[bool] {
	return unary(a, cpu.Not, cpu.NotVec)
}

// AddAssign performs dst += src in place; src must broadcast into dst.
func AddAssign[T tensor.Numeric](dst, src Array[T]) {
	inPlace("add_assign", dst, src, cpu.Add[T], simd.Add[T])
}

// SubAssign performs dst -= src in place.
func SubAssign[T tensor.Numeric](dst, src Array[T]) {
	inPlace("sub_assign", dst, src, cpu.Sub[T], simd.Sub[T])
}

// MulAssign performs dst *= src in place.
func MulAssign[T tensor.Numeric](dst, src Array[T]) {
	inPlace("mul_assign", dst, src, cpu.Mul[T], simd.Mul[T])
}

// DivAssign performs dst /= src in place.
func DivAssign[T tensor.Numeric](dst, src Array[T]) {
	inPlace("div_assign", dst, src, cpu.Div[T], simd.Div[T])
}

// ModAssign performs dst %= src in place.
func ModAssign[T tensor.Integer](dst, src Array[T]) {
	inPlace("mod_assign", dst, src, cpu.Mod[T], cpu.Lanes2(cpu.Mod[T]))
}

// AndAssign performs dst = dst && src in place.
func AndAssign(dst, src Array[bool]) {
	inPlace("and_assign", dst, src, cpu.And, simd.And)
}

// OrAssign performs dst = dst || src in place.
func OrAssign(dst, src Array[bool]) {
	inPlace("or_assign", dst, src, cpu.Or, simd.Or)
}
