package cpu

import (
	"github.com/born-ml/ndarray/internal/simd"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Fold describes a reduction: an identity value and an accumulation step.
//
// Vector, Lanes and Combine are optional. Vector folds a batch of source
// elements into a batch of accumulators lane by lane; Lanes collapses an
// accumulator batch into one value and Combine merges two partial results.
// Without Lanes and Combine a reduction whose destination stays put along the
// inner run (a full reduction of contiguous data) uses the scalar loop.
type Fold[T, U tensor.DType] struct {
	Initial U
	Scalar  func(acc U, x T) U
	Vector  func(acc simd.Vec[U], x simd.Vec[T]) simd.Vec[U]
	Lanes   func(acc simd.Vec[U]) U
	Combine func(a, b U) U
}

// SumFold adds elements, starting from 0.
func SumFold[T tensor.Numeric]() Fold[T, T] {
	return Fold[T, T]{
		Initial: 0,
		Scalar:  Add[T],
		Vector:  simd.Add[T],
		Lanes:   simd.ReduceAdd[T],
		Combine: Add[T],
	}
}

// ProductFold multiplies elements, starting from 1.
func ProductFold[T tensor.Numeric]() Fold[T, T] {
	return Fold[T, T]{
		Initial: 1,
		Scalar:  Mul[T],
		Vector:  simd.Mul[T],
		Lanes:   simd.ReduceMul[T],
		Combine: Mul[T],
	}
}

// MaxFold keeps the largest element, starting from the lowest finite value.
func MaxFold[T tensor.Numeric]() Fold[T, T] {
	return Fold[T, T]{
		Initial: Lowest[T](),
		Scalar:  Max[T],
		Vector:  simd.Max[T],
		Lanes:   simd.ReduceMax[T],
		Combine: Max[T],
	}
}

// MinFold keeps the smallest element, starting from the highest finite value.
func MinFold[T tensor.Numeric]() Fold[T, T] {
	return Fold[T, T]{
		Initial: Highest[T](),
		Scalar:  Min[T],
		Vector:  simd.Min[T],
		Lanes:   simd.ReduceMin[T],
		Combine: Min[T],
	}
}

// AnyFold reports whether some element is non-zero (true for bool).
func AnyFold[T tensor.DType]() Fold[T, bool] {
	var zero T
	zeros := simd.Zero[T]()
	return Fold[T, bool]{
		Initial: false,
		Scalar:  func(acc bool, x T) bool { return acc || x != zero },
		Vector: func(acc simd.Mask, x simd.Vec[T]) simd.Mask {
			return simd.Or(acc, simd.NotEqual(x, zeros))
		},
		Lanes:   simd.ReduceAny,
		Combine: Or,
	}
}

// AllFold reports whether every element is non-zero (true for bool).
func AllFold[T tensor.DType]() Fold[T, bool] {
	var zero T
	zeros := simd.Zero[T]()
	return Fold[T, bool]{
		Initial: true,
		Scalar:  func(acc bool, x T) bool { return acc && x != zero },
		Vector: func(acc simd.Mask, x simd.Vec[T]) simd.Mask {
			return simd.And(acc, simd.NotEqual(x, zeros))
		},
		Lanes:   simd.ReduceAll,
		Combine: And,
	}
}

// Reduce folds src into dst. dst has src's rank with size 1 on every reduced
// axis (the keep-dims shape); its stride there is treated as 0, so all source
// positions along reduced axes fold into the same destination cell.
// dst is first reset to fold.Initial.
func Reduce[T, U tensor.DType](dst tensor.Strided[U], src tensor.Strided[T], fold Fold[T, U]) {
	checkSource("reduce", dst.Shape, src.Shape)
	Fill(dst, fold.Initial)

	cfg := CurrentConfig()
	rank := src.Rank()
	p := newPlan(src.Shape, cfg.VectorThreshold, true, layoutOf(dst, rank), layoutOf(src, rank))
	vector := fold.Vector != nil && p.vectorizable(cfg)
	p.log("reduce", vector)

	d, s := dst.Data, src.Data
	p.walk(func(off offsets) {
		i, j := off[0], off[1]
		ds, ss := p.innerStride[0], p.innerStride[1]
		if vector && ss == 1 {
			switch {
			case ds == 1:
				foldRun(d[i:i+p.n], s[j:j+p.n], fold)
				return
			case ds == 0 && fold.Lanes != nil && fold.Combine != nil:
				d[i] = fold.Combine(d[i], foldLanes(s[j:j+p.n], fold))
				return
			}
		}
		if ds == 0 {
			acc := d[i]
			for k := 0; k < p.n; k++ {
				acc = fold.Scalar(acc, s[j])
				j += ss
			}
			d[i] = acc
			return
		}
		for k := 0; k < p.n; k++ {
			d[i] = fold.Scalar(d[i], s[j])
			i += ds
			j += ss
		}
	})
}

// foldRun accumulates s into d element by element.
func foldRun[T, U tensor.DType](d []U, s []T, fold Fold[T, U]) {
	n, k := len(d), 0
	for ; k+simd.Width <= n; k += simd.Width {
		simd.Store(d[k:], fold.Vector(simd.Load(d[k:]), simd.Load(s[k:])))
	}
	for ; k < n; k++ {
		d[k] = fold.Scalar(d[k], s[k])
	}
}

// foldLanes reduces s to a single value using Width independent accumulators.
func foldLanes[T, U tensor.DType](s []T, fold Fold[T, U]) U {
	acc := simd.Splat(fold.Initial)
	n, k := len(s), 0
	for ; k+simd.Width <= n; k += simd.Width {
		acc = fold.Vector(acc, simd.Load(s[k:]))
	}
	r := fold.Lanes(acc)
	for ; k < n; k++ {
		r = fold.Scalar(r, s[k])
	}
	return r
}
