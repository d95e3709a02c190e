// Package array implements Array, a strided view over a shared,
// reference-counted buffer, together with the operations built on the cpu
// dispatch core: elementwise arithmetic with broadcasting, math functions,
// reductions and batched matrix multiplication.
//
// Views (Transpose, Reshape, Slice, expansions) never copy: they share the
// source's buffer and writes through one view are visible through all others.
// Copy, Extend and every computing operation allocate a fresh buffer.
//
// Constructors report bad input as an error. Operations on existing arrays
// panic with an error wrapping one of the tensor sentinels (for example
// tensor.ErrIncompatibleBroadcast); use Try to turn such a panic into an error.
package array

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// Array is an n-dimensional view over a shared buffer.
//
// The zero value is not usable; create arrays with the factories in this
// package. Arrays are small values: copying one copies the view, not the data.
type Array[T tensor.DType] struct {
	buf        *tensor.Buffer[T]
	shape      tensor.Coordinates
	strides    tensor.Coordinates
	offset     int
	contiguous bool
}

// newArray allocates a zeroed, contiguous array of the given shape.
func newArray[T tensor.DType](shape tensor.Coordinates) Array[T] {
	return Array[T]{
		buf:        tensor.NewBuffer[T](shape.Product()),
		shape:      shape,
		strides:    tensor.RowMajorStrides(shape),
		contiguous: true,
	}
}

// view returns an array sharing a's buffer with a new geometry. Strides of
// size-1 axes are set to 0, and the view is contiguous exactly when its
// strides are the row-major strides of its shape.
func (a Array[T]) view(shape, strides tensor.Coordinates, offset int) Array[T] {
	for i := 0; i < shape.Len(); i++ {
		if shape.At(i) == 1 {
			strides.Set(i, 0)
		}
	}
	a.buf.Retain()
	return Array[T]{
		buf:        a.buf,
		shape:      shape,
		strides:    strides,
		offset:     offset,
		contiguous: isRowMajor(shape, strides),
	}
}

// isRowMajor reports whether strides are the row-major strides of shape.
func isRowMajor(shape, strides tensor.Coordinates) bool {
	return strides.Equal(tensor.RowMajorStrides(shape))
}

// Shape returns the extent of every axis.
func (a Array[T]) Shape() tensor.Coordinates { return a.shape }

// Strides returns the element step of every axis; 0 marks a size-1 axis.
func (a Array[T]) Strides() tensor.Coordinates { return a.strides }

// Offset returns the position of the first element in the buffer.
func (a Array[T]) Offset() int { return a.offset }

// Rank returns the number of axes.
func (a Array[T]) Rank() int { return a.shape.Len() }

// FlatLength returns the number of elements.
func (a Array[T]) FlatLength() int { return a.shape.Product() }

// IsContiguous reports whether the elements are laid out row-major with no
// gaps, starting at Offset.
func (a Array[T]) IsContiguous() bool { return a.contiguous }

// DType returns the element type.
func (a Array[T]) DType() tensor.DataType { return tensor.DTypeOf[T]() }

// Buffer returns the shared storage of a.
func (a Array[T]) Buffer() *tensor.Buffer[T] { return a.buf }

// SharesBuffer reports whether a and b are views of the same storage.
func (a Array[T]) SharesBuffer(b Array[T]) bool { return a.buf == b.buf }

// Release drops a's reference to its buffer. The storage is freed once every
// view sharing it has been released; a must not be used afterwards.
func (a Array[T]) Release() {
	a.buf.Release()
}

// Axes returns [0, 1, ..., Rank()-1], the axis list reducing over everything.
func (a Array[T]) Axes() []int {
	axes := make([]int, a.Rank())
	for i := range axes {
		axes[i] = i
	}
	return axes
}

// strided describes a as a kernel operand.
func (a Array[T]) strided() tensor.Strided[T] {
	return tensor.Strided[T]{
		Data:    a.buf.Data(),
		Offset:  a.offset,
		Shape:   a.shape,
		Strides: a.strides,
	}
}

// ToSlice returns the elements in row-major order as a new slice.
func (a Array[T]) ToSlice() []T {
	if a.contiguous {
		out := make([]T, a.FlatLength())
		copy(out, a.buf.Data()[a.offset:])
		return out
	}
	return a.Copy().buf.Data()
}
