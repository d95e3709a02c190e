package array

import (
	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/tensor"
)

// reduce folds a over axes. The result drops the reduced axes, or keeps them
// with extent 1 when keepDims is set. No axes means no reduction: the result
// is a copy of a.
func reduce[T, U tensor.DType](op string, a Array[T], axes []int, keepDims bool, fold cpu.Fold[T, U]) Array[U] {
	info, err := tensor.ReduceShape(a.shape, axes, keepDims)
	if err != nil {
		panic(errors.WithMessage(err, op))
	}
	result := newArray[U](info.ReducedShape)
	dst := tensor.Strided[U]{
		Data:    result.buf.Data(),
		Shape:   info.KeepDimsShape,
		Strides: info.KeepDimsStrides,
	}
	cpu.Reduce(dst, a.strided(), fold)
	return result
}

// ReduceSum sums a over axes.
func ReduceSum[T tensor.Numeric](a Array[T], axes []int, keepDims bool) Array[T] {
	return reduce("reduce_sum", a, axes, keepDims, cpu.SumFold[T]())
}

// ReduceProduct multiplies a over axes.
func ReduceProduct[T tensor.Numeric](a Array[T], axes []int, keepDims bool) Array[T] {
	return reduce("reduce_product", a, axes, keepDims, cpu.ProductFold[T]())
}

// ReduceMax takes the maximum of a over axes.
func ReduceMax[T tensor.Numeric](a Array[T], axes []int, keepDims bool) Array[T] {
	return reduce("reduce_max", a, axes, keepDims, cpu.MaxFold[T]())
}

// ReduceMin takes the minimum of a over axes.
func ReduceMin[T tensor.Numeric](a Array[T], axes []int, keepDims bool) Array[T] {
	return reduce("reduce_min", a, axes, keepDims, cpu.MinFold[T]())
}

// ReduceAny reports, over axes, whether some element is non-zero.
func ReduceAny[T tensor.DType](a Array[T], axes []int, keepDims bool) Array[bool] {
	return reduce("reduce_any", a, axes, keepDims, cpu.AnyFold[T]())
}

// ReduceAll reports, over axes, whether every element is non-zero.
func ReduceAll[T tensor.DType](a Array[T], axes []int, keepDims bool) Array[bool] {
	return reduce("reduce_all", a, axes, keepDims, cpu.AllFold[T]())
}

// ReduceMean averages a over axes: the sum divided by the number of elements
// folded into each result. Integer types use integer division.
func ReduceMean[T tensor.Numeric](a Array[T], axes []int, keepDims bool) Array[T] {
	info, err := tensor.ReduceShape(a.shape, axes, keepDims)
	if err != nil {
		panic(errors.WithMessage(err, "reduce_mean"))
	}
	sum := ReduceSum(a, axes, keepDims)
	if info.Divisor == 1 {
		return sum
	}
	DivAssign(sum, Scalar(T(info.Divisor)))
	return sum
}

// Sum returns the sum of every element of a.
func Sum[T tensor.Numeric](a Array[T]) T {
	return ReduceSum(a, a.Axes(), false).Item()
}

// Mean returns the mean of every element of a.
func Mean[T tensor.Numeric](a Array[T]) T {
	return ReduceMean(a, a.Axes(), false).Item()
}
