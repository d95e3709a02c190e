package array

import (
	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Transpose swaps two axes; negative axes count from the end. No data moves.
// Transposing the same pair twice restores the original view.
func (a Array[T]) Transpose(axis1, axis2 int) Array[T] {
	i, err := tensor.NormalizeAxis(axis1, a.Rank())
	check(errors.WithMessage(err, "transpose"))
	j, err := tensor.NormalizeAxis(axis2, a.Rank())
	check(errors.WithMessage(err, "transpose"))
	shape, strides := a.shape, a.strides
	shape.Swap(i, j)
	strides.Swap(i, j)
	return a.view(shape, strides, a.offset)
}

// Reshape reinterprets the elements of a contiguous array under a new shape.
// At most one entry may be tensor.Wildcard (-1); it takes whatever extent
// makes the element counts agree.
func (a Array[T]) Reshape(dims ...int) Array[T] {
	if !a.contiguous {
		usage(tensor.ErrNotContiguous, "reshape of %s (strides %s) to %v", a.shape, a.strides, dims)
	}
	ws, err := tensor.NewWildcardShape(dims...)
	check(errors.WithMessage(err, "reshape"))
	shape, err := ws.Resolve(a.FlatLength())
	check(errors.WithMessagef(err, "reshape %s", a.shape))
	return a.view(shape, tensor.RowMajorStrides(shape), a.offset)
}

// Flatten returns a contiguous one-dimensional view, copying first when a is
// not contiguous.
func (a Array[T]) Flatten() Array[T] {
	if !a.contiguous {
		a = a.Copy()
	}
	return a.Reshape(tensor.Wildcard)
}

// LeftExpandDims prepends n size-1 axes.
func (a Array[T]) LeftExpandDims(n int) Array[T] {
	if n < 0 {
		usage(tensor.ErrInvalidArgument, "cannot add %d axes", n)
	}
	shape, err := a.shape.ShiftRight(1, n)
	check(err)
	strides, err := a.strides.ShiftRight(0, n)
	check(err)
	return a.view(shape, strides, a.offset)
}

// RightExpandDims appends n size-1 axes.
func (a Array[T]) RightExpandDims(n int) Array[T] {
	if n < 0 {
		usage(tensor.ErrInvalidArgument, "cannot add %d axes", n)
	}
	shape, strides := a.shape, a.strides
	for range n {
		check(shape.PushBack(1))
		check(strides.PushBack(0))
	}
	return a.view(shape, strides, a.offset)
}

// Slice restricts the leading len(from) axes to [from[i], upto[i]).
//
// Bounds lie in [-extent, extent]; negative bounds count from the end. An
// axis with from == upto is removed, or kept with extent 1 when keepDims is
// set; the position it selects must lie inside the axis. Axes beyond
// len(from) are kept whole.
func (a Array[T]) Slice(from, upto []int, keepDims bool) Array[T] {
	if len(from) != len(upto) {
		usage(tensor.ErrInvalidArgument, "slice bounds %v and %v differ in length", from, upto)
	}
	if len(from) > a.Rank() {
		usage(tensor.ErrIndexOutOfRange, "slice bounds %v for rank %d", from, a.Rank())
	}
	var shape, strides tensor.Coordinates
	offset := a.offset
	for i := 0; i < a.Rank(); i++ {
		extent, stride := a.shape.At(i), a.strides.At(i)
		if i >= len(from) {
			check(shape.PushBack(extent))
			check(strides.PushBack(stride))
			continue
		}
		lo, hi := from[i], upto[i]
		if lo < -extent || lo > extent || hi < -extent || hi > extent {
			usage(tensor.ErrIndexOutOfRange, "slice [%d, %d) of axis %d with extent %d", lo, hi, i, extent)
		}
		if lo < 0 {
			lo += extent
		}
		if hi < 0 {
			hi += extent
		}
		if lo > hi {
			usage(tensor.ErrInvalidArgument, "slice of axis %d starts at %d after its end %d", i, lo, hi)
		}
		if lo == hi && lo == extent {
			usage(tensor.ErrIndexOutOfRange, "position %d of axis %d with extent %d", lo, i, extent)
		}
		offset += lo * stride
		switch {
		case lo != hi:
			check(shape.PushBack(hi - lo))
			check(strides.PushBack(stride))
		case keepDims:
			check(shape.PushBack(1))
			check(strides.PushBack(0))
		}
	}
	return a.view(shape, strides, offset)
}

// Take selects one position on each of the leading len(at) axes. The selected
// axes are removed unless keepDims is set.
//
// Example:
//
//	m.Take([]int{1}, false) // second row of a matrix
func (a Array[T]) Take(at []int, keepDims bool) Array[T] {
	return a.Slice(at, at, keepDims)
}

// Extend materializes a broadcast into a new array of the given shape, in
// which every size-1 axis of a is replicated explicitly.
func (a Array[T]) Extend(shape ...int) Array[T] {
	s, err := shapeOf(shape)
	check(err)
	if !tensor.IsSubshape(a.shape, s) {
		usage(tensor.ErrIncompatibleBroadcast, "cannot extend %s to %s", a.shape, s)
	}
	result := newArray[T](s)
	cpu.Unary(result.strided(), a.strided(), cpu.Identity[T], cpu.IdentityVec[T])
	return result
}

// Copy returns a contiguous array with its own buffer and the same contents.
func (a Array[T]) Copy() Array[T] {
	result := newArray[T](a.shape)
	if a.contiguous {
		copy(result.buf.Data(), a.buf.Data()[a.offset:])
		return result
	}
	cpu.Unary(result.strided(), a.strided(), cpu.Identity[T], cpu.IdentityVec[T])
	return result
}

// Fill sets every element of a, and so of every view sharing those elements, to v.
func (a Array[T]) Fill(v T) {
	cpu.Fill(a.strided(), v)
}

// Assign copies src into a, broadcasting src over a's shape.
func (a Array[T]) Assign(src Array[T]) {
	checkInPlace("assign", a.shape, src.shape)
	cpu.Unary(a.strided(), src.strided(), cpu.Identity[T], cpu.IdentityVec[T])
}
