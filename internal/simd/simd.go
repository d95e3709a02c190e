// Package simd is the fixed-width batch arithmetic layer used beneath the
// dispatch core's fast path.
//
// A Vec holds Width lanes. Every operation is lane-wise and written as a fixed
// trip-count loop the compiler can unroll; results are bit-identical to
// applying the scalar operation to each lane, which is what lets the engine
// switch between the scalar and batched paths freely.
package simd

import (
	"golang.org/x/exp/constraints"
)

// Width is the number of lanes in a Vec.
const Width = 8

// Number is the constraint for lanes that support arithmetic.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vec is a batch of Width lanes.
type Vec[T any] [Width]T

// Mask selects lanes.
type Mask = Vec[bool]

// Bounds is an inclusive [Lower, Upper] range for Clip.
type Bounds[T Number] struct {
	Lower, Upper T
}

// Load reads Width elements from src.
func Load[T any](src []T) Vec[T] {
	return Vec[T](src[:Width])
}

// LoadMasked reads the first n elements of src and sets the other lanes to fill.
func LoadMasked[T any](src []T, n int, fill T) Vec[T] {
	v := Splat(fill)
	copy(v[:n], src[:n])
	return v
}

// Store writes all lanes of v to dst.
func Store[T any](dst []T, v Vec[T]) {
	copy(dst[:Width], v[:])
}

// StoreMasked writes the first n lanes of v to dst.
func StoreMasked[T any](dst []T, v Vec[T], n int) {
	copy(dst[:n], v[:n])
}

// Splat returns a Vec with every lane set to x.
func Splat[T any](x T) Vec[T] {
	var v Vec[T]
	for i := range v {
		v[i] = x
	}
	return v
}

// Zero returns the all-zero Vec.
func Zero[T any]() Vec[T] {
	var v Vec[T]
	return v
}

// Apply maps f over every lane.
func Apply[T, U any](v Vec[T], f func(T) U) Vec[U] {
	var r Vec[U]
	for i := range v {
		r[i] = f(v[i])
	}
	return r
}

// Add returns a + b.
func Add[T Number](a, b Vec[T]) Vec[T] {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

// Sub returns a - b.
func Sub[T Number](a, b Vec[T]) Vec[T] {
	for i := range a {
		a[i] -= b[i]
	}
	return a
}

// Mul returns a * b.
func Mul[T Number](a, b Vec[T]) Vec[T] {
	for i := range a {
		a[i] *= b[i]
	}
	return a
}

// Div returns a / b.
func Div[T Number](a, b Vec[T]) Vec[T] {
	for i := range a {
		a[i] /= b[i]
	}
	return a
}

// Max returns the lane-wise maximum.
func Max[T Number](a, b Vec[T]) Vec[T] {
	for i := range a {
		if b[i] > a[i] {
			a[i] = b[i]
		}
	}
	return a
}

// Min returns the lane-wise minimum.
func Min[T Number](a, b Vec[T]) Vec[T] {
	for i := range a {
		if b[i] < a[i] {
			a[i] = b[i]
		}
	}
	return a
}

// FMA returns a*b + c. The product is rounded to T before the addition, so
// lanes match T(a*b) + c exactly on every architecture.
func FMA[T Number](a, b, c Vec[T]) Vec[T] {
	for i := range a {
		a[i] = T(a[i]*b[i]) + c[i]
	}
	return a
}

// Clip clamps every lane into bounds.
func Clip[T Number](v Vec[T], b Bounds[T]) Vec[T] {
	for i := range v {
		switch {
		case v[i] < b.Lower:
			v[i] = b.Lower
		case v[i] > b.Upper:
			v[i] = b.Upper
		}
	}
	return v
}

// Less returns the lanes where a < b.
func Less[T Number](a, b Vec[T]) Mask {
	var m Mask
	for i := range a {
		m[i] = a[i] < b[i]
	}
	return m
}

// LessEqual returns the lanes where a <= b.
func LessEqual[T Number](a, b Vec[T]) Mask {
	var m Mask
	for i := range a {
		m[i] = a[i] <= b[i]
	}
	return m
}

// Equal returns the lanes where a == b.
func Equal[T comparable](a, b Vec[T]) Mask {
	var m Mask
	for i := range a {
		m[i] = a[i] == b[i]
	}
	return m
}

// NotEqual returns the lanes where a != b.
func NotEqual[T comparable](a, b Vec[T]) Mask {
	var m Mask
	for i := range a {
		m[i] = a[i] != b[i]
	}
	return m
}

// And returns the lane-wise conjunction.
func And(a, b Mask) Mask {
	for i := range a {
		a[i] = a[i] && b[i]
	}
	return a
}

// Or returns the lane-wise disjunction.
func Or(a, b Mask) Mask {
	for i := range a {
		a[i] = a[i] || b[i]
	}
	return a
}

// Select takes lanes of a where m is set and lanes of b elsewhere.
func Select[T any](m Mask, a, b Vec[T]) Vec[T] {
	for i := range m {
		if !m[i] {
			a[i] = b[i]
		}
	}
	return a
}

// ReduceAdd sums the lanes pairwise.
func ReduceAdd[T Number](v Vec[T]) T {
	s0 := (v[0] + v[4]) + (v[2] + v[6])
	s1 := (v[1] + v[5]) + (v[3] + v[7])
	return s0 + s1
}

// ReduceMul multiplies the lanes pairwise.
func ReduceMul[T Number](v Vec[T]) T {
	p0 := (v[0] * v[4]) * (v[2] * v[6])
	p1 := (v[1] * v[5]) * (v[3] * v[7])
	return p0 * p1
}

// ReduceMax returns the largest lane.
func ReduceMax[T Number](v Vec[T]) T {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// ReduceMin returns the smallest lane.
func ReduceMin[T Number](v Vec[T]) T {
	m := v[0]
	for _, x := range v[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// ReduceAny reports whether any lane is set.
func ReduceAny(m Mask) bool {
	for _, x := range m {
		if x {
			return true
		}
	}
	return false
}

// ReduceAll reports whether every lane is set.
func ReduceAll(m Mask) bool {
	for _, x := range m {
		if !x {
			return false
		}
	}
	return true
}
