package cpu

import "github.com/born-ml/ndarray/internal/simd"

// And returns a && b.
func And(a, b bool) bool { return a && b }

// Or returns a || b.
func Or(a, b bool) bool { return a || b }

// Not returns !x.
func Not(x bool) bool { return !x }

// NotVec is the lane-wise Not.
func NotVec(m simd.Mask) simd.Mask {
	return simd.NotEqual(m, simd.Splat(true))
}
