// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/pkg/errors"
	"github.com/x448/float16"

	"github.com/born-ml/ndarray/internal/array"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Type aliases for public API

// DType is the constraint for array element types.
type DType = tensor.DType

// Numeric is the constraint for element types that support arithmetic.
type Numeric = tensor.Numeric

// Float is the constraint for floating point element types.
type Float = tensor.Float

// Integer is the constraint for integer element types.
type Integer = tensor.Integer

// DataType represents the element type of an array at run time.
type DataType = tensor.DataType

// Data type constants.
const (
	Bool    DataType = tensor.Bool
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Int     DataType = tensor.Int
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
	Uint    DataType = tensor.Uint
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Coordinates is the fixed-capacity vector used for shapes and strides.
type Coordinates = tensor.Coordinates

// MaxRank is the largest number of axes an array may have.
const MaxRank = tensor.MaxRank

// Wildcard marks the one extent Reshape infers.
const Wildcard = tensor.Wildcard

// Array is a strided view over a shared buffer.
//
// Example:
//
//	m := tensor.Range[int64](0, 6).Reshape(2, 3)
//	row := m.Take([]int{1}, false) // [3, 4, 5], sharing m's buffer
type Array[T DType] = array.Array[T]

// Generator draws random arrays from a seeded source.
type Generator = array.Generator

// MatMulOptions configures MatMulInto.
type MatMulOptions = array.MatMulOptions

// Creation functions

// FromSlice creates an array holding a copy of data. With no shape the
// result is one-dimensional.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
func FromSlice[T DType](data []T, shape ...int) (Array[T], error) {
	return array.FromSlice(data, shape...)
}

// Scalar creates a rank-0 array.
func Scalar[T DType](v T) Array[T] {
	return array.Scalar(v)
}

// Constant creates an array with every element set to v.
//
// Example:
//
//	x, err := tensor.Constant[float32](3.14, 2, 3)
func Constant[T DType](v T, shape ...int) (Array[T], error) {
	return array.Constant(v, shape...)
}

// Zeros creates an array filled with zeros.
func Zeros[T DType](shape ...int) (Array[T], error) {
	return array.Zeros[T](shape...)
}

// ZerosLike creates a zero-filled array with a's shape.
func ZerosLike[T DType](a Array[T]) Array[T] {
	return array.ZerosLike(a)
}

// Range creates the one-dimensional array [from, to).
//
// Example:
//
//	x := tensor.Range[float32](0, 10) // [0, 1, 2, ..., 9]
func Range[T Numeric](from, to T) Array[T] {
	return array.Range(from, to)
}

// RangeStep creates the one-dimensional array from, from+step, ... short of to.
func RangeStep[T Numeric](from, to, step T) (Array[T], error) {
	return array.RangeStep(from, to, step)
}

// FromLines stacks equally shaped arrays along a new leading axis.
func FromLines[T DType](lines []Array[T]) (Array[T], error) {
	return array.FromLines(lines)
}

// FromFlatLines stacks equally long slices into a matrix.
func FromFlatLines[T DType](lines [][]T) (Array[T], error) {
	return array.FromFlatLines(lines)
}

// FromFloat16 widens half-precision values into an array.
func FromFloat16[T Float](data []float16.Float16, shape ...int) (Array[T], error) {
	return array.FromFloat16[T](data, shape...)
}

// ToFloat16 narrows the elements of a to half precision, in row-major order.
func ToFloat16[T Float](a Array[T]) []float16.Float16 {
	return array.ToFloat16(a)
}

// NewGenerator returns a random Generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	return array.NewGenerator(seed)
}

// Uniform draws from the uniform distribution on [low, high).
func Uniform[T Float](g *Generator, low, high T, shape ...int) (Array[T], error) {
	return array.Uniform(g, low, high, shape...)
}

// Normal draws from the normal distribution.
//
// Example:
//
//	g := tensor.NewGenerator(42)
//	w, err := tensor.Normal[float32](g, 0, 0.02, 768, 768)
func Normal[T Float](g *Generator, mean, std T, shape ...int) (Array[T], error) {
	return array.Normal(g, mean, std, shape...)
}

// UniformInt draws integers uniformly from [low, high).
func UniformInt[T Numeric](g *Generator, low, high int64, shape ...int) (Array[T], error) {
	return array.UniformInt[T](g, low, high, shape...)
}

// Binomial draws binomially distributed counts.
func Binomial[T Numeric](g *Generator, trials int, p float64, shape ...int) (Array[T], error) {
	return array.Binomial[T](g, trials, p, shape...)
}

// Poisson draws from the Poisson distribution with mean lambda.
func Poisson[T Numeric](g *Generator, lambda float64, shape ...int) (Array[T], error) {
	return array.Poisson[T](g, lambda, shape...)
}

// Utility functions

// BroadcastShapes computes the broadcast shape of two shapes following NumPy
// broadcasting rules. The flag reports whether either operand has to be
// repeated to reach it.
//
// Example:
//
//	shape, repeats, err := tensor.BroadcastShapes([]int{3, 1}, []int{3, 4})
//	// shape = [3, 4], repeats = true
func BroadcastShapes(a, b []int) ([]int, bool, error) {
	ca, err := tensor.NewCoordinates(a...)
	if err != nil {
		return nil, false, err
	}
	cb, err := tensor.NewCoordinates(b...)
	if err != nil {
		return nil, false, err
	}
	rel := tensor.BroadcastRelationship(ca, cb)
	if rel == tensor.BroadcastNone {
		return nil, false, errors.Wrapf(tensor.ErrIncompatibleBroadcast, "shapes %v and %v", a, b)
	}
	shape, err := tensor.BroadcastShape(ca, cb)
	if err != nil {
		return nil, false, err
	}
	return shape.Slice(), rel != tensor.BroadcastMatch, nil
}
