package array

import (
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
)

// shapeOf validates dims as a concrete shape.
func shapeOf(dims []int) (tensor.Coordinates, error) {
	shape, err := tensor.NewCoordinates(dims...)
	if err != nil {
		return shape, err
	}
	for i, d := range dims {
		if d < 0 {
			return shape, errors.Wrapf(tensor.ErrInvalidArgument, "negative extent %d on axis %d", d, i)
		}
	}
	return shape, nil
}

// FromSlice creates an array holding a copy of data with the given shape.
// With no shape the result is one-dimensional.
func FromSlice[T tensor.DType](data []T, shape ...int) (Array[T], error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	s, err := shapeOf(shape)
	if err != nil {
		return Array[T]{}, err
	}
	if s.Product() != len(data) {
		return Array[T]{}, errors.Wrapf(tensor.ErrShapeMismatch,
			"%d elements do not fill shape %s", len(data), s)
	}
	return Array[T]{
		buf:        tensor.BufferFrom(data),
		shape:      s,
		strides:    tensor.RowMajorStrides(s),
		contiguous: true,
	}, nil
}

// Scalar creates a rank-0 array holding v.
func Scalar[T tensor.DType](v T) Array[T] {
	a := newArray[T](tensor.Coordinates{})
	a.buf.Data()[0] = v
	return a
}

// Constant creates an array of the given shape with every element set to v.
func Constant[T tensor.DType](v T, shape ...int) (Array[T], error) {
	s, err := shapeOf(shape)
	if err != nil {
		return Array[T]{}, err
	}
	a := newArray[T](s)
	data := a.buf.Data()
	for i := range data {
		data[i] = v
	}
	return a, nil
}

// Zeros creates an array of the given shape filled with zeros.
func Zeros[T tensor.DType](shape ...int) (Array[T], error) {
	s, err := shapeOf(shape)
	if err != nil {
		return Array[T]{}, err
	}
	return newArray[T](s), nil
}

// ZerosLike creates a zero-filled array with a's shape.
func ZerosLike[T tensor.DType](a Array[T]) Array[T] {
	return newArray[T](a.shape)
}

// Range returns the one-dimensional array [from, from+1, ..., to).
func Range[T tensor.Numeric](from, to T) Array[T] {
	a, err := RangeStep(from, to, 1)
	check(err)
	return a
}

// RangeStep returns the one-dimensional array of from + i*step for every
// i >= 0 that stays on the near side of to. A negative step counts down.
func RangeStep[T tensor.Numeric](from, to, step T) (Array[T], error) {
	if step == 0 {
		return Array[T]{}, errors.Wrapf(tensor.ErrInvalidArgument, "range step is zero")
	}
	n := int(math.Ceil((float64(to) - float64(from)) / float64(step)))
	values := make([]T, max(n, 0))
	for i := range values {
		values[i] = from + T(i)*step
	}
	return FromSlice(values)
}

// FromLines stacks equally shaped arrays along a new leading axis: the result
// has shape [len(lines), lines[0].Shape()...]. Lines are copied concurrently
// when parallel execution is enabled.
func FromLines[T tensor.DType](lines []Array[T]) (Array[T], error) {
	if len(lines) == 0 {
		return Array[T]{}, errors.Wrapf(tensor.ErrInvalidArgument, "no lines to stack")
	}
	lineShape := lines[0].shape
	shape, err := tensor.MustCoordinates(len(lines)).Append(lineShape)
	if err != nil {
		return Array[T]{}, err
	}
	for i, line := range lines {
		if !line.shape.Equal(lineShape) {
			return Array[T]{}, errors.Wrapf(tensor.ErrShapeMismatch,
				"line %d has shape %s, line 0 has %s", i, line.shape, lineShape)
		}
	}
	result := newArray[T](shape)
	data := result.buf.Data()
	n := lineShape.Product()
	parallel.For(len(lines), func(i int) {
		dst := rowMajor(data[i*n:(i+1)*n], lineShape)
		cpu.Unary(dst, lines[i].strided(), cpu.Identity[T], cpu.IdentityVec[T])
	}, cpu.CurrentConfig().Parallel)
	return result, nil
}

// FromFlatLines stacks equally long slices into a [len(lines), len(lines[0])] array.
func FromFlatLines[T tensor.DType](lines [][]T) (Array[T], error) {
	if len(lines) == 0 {
		return Array[T]{}, errors.Wrapf(tensor.ErrInvalidArgument, "no lines to stack")
	}
	n := len(lines[0])
	data := make([]T, 0, len(lines)*n)
	for i, line := range lines {
		if len(line) != n {
			return Array[T]{}, errors.Wrapf(tensor.ErrShapeMismatch,
				"line %d has %d elements, line 0 has %d", i, len(line), n)
		}
		data = append(data, line...)
	}
	return FromSlice(data, len(lines), n)
}

// rowMajor describes data as a contiguous operand of the given shape.
func rowMajor[T tensor.DType](data []T, shape tensor.Coordinates) tensor.Strided[T] {
	return tensor.Strided[T]{Data: data, Shape: shape, Strides: tensor.RowMajorStrides(shape)}
}
