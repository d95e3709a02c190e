package array

import (
	"github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/simd"
	"github.com/born-ml/ndarray/internal/tensor"
)

// wrap maps i into [0, extent) modulo extent.
func wrap(i, extent int) int {
	if extent == 0 {
		usage(tensor.ErrIndexOutOfRange, "index %d into an empty axis", i)
	}
	i %= extent
	if i < 0 {
		i += extent
	}
	return i
}

// position returns the buffer position of the element at indices. Every
// index wraps modulo its axis, so -1 is the last element.
func (a Array[T]) position(indices []int) int {
	if len(indices) != a.Rank() {
		usage(tensor.ErrIndexOutOfRange, "%d indices for an array of rank %d", len(indices), a.Rank())
	}
	pos := a.offset
	for i, ix := range indices {
		pos += wrap(ix, a.shape.At(i)) * a.strides.At(i)
	}
	return pos
}

// At returns the element at indices, one per axis.
func (a Array[T]) At(indices ...int) T {
	return a.buf.Data()[a.position(indices)]
}

// Set overwrites the element at indices.
func (a Array[T]) Set(v T, indices ...int) {
	a.buf.Data()[a.position(indices)] = v
}

// AtFlat returns the i-th element in row-major order; i wraps modulo the
// flat length.
func (a Array[T]) AtFlat(i int) T {
	pos := a.offset
	i = wrap(i, a.FlatLength())
	for axis := a.Rank() - 1; axis >= 0; axis-- {
		extent := a.shape.At(axis)
		pos += (i % extent) * a.strides.At(axis)
		i /= extent
	}
	return a.buf.Data()[pos]
}

// Item returns the only element of a one-element array.
func (a Array[T]) Item() T {
	if n := a.FlatLength(); n != 1 {
		usage(tensor.ErrShapeMismatch, "item of an array with %d elements", n)
	}
	return a.buf.Data()[a.offset]
}

// FindWhere lists the indices of the elements satisfying pred, in row-major
// order, as an [n, rank] array.
func FindWhere[T tensor.DType](a Array[T], pred func(T) bool) Array[int64] {
	rank := a.Rank()
	var found []int64
	data := a.buf.Data()
	index := make([]int, rank)
	for k := 0; k < a.FlatLength(); k++ {
		pos := a.offset
		for i, ix := range index {
			pos += ix * a.strides.At(i)
		}
		if pred(data[pos]) {
			for _, ix := range index {
				found = append(found, int64(ix))
			}
		}
		for i := rank - 1; i >= 0; i-- {
			index[i]++
			if index[i] < a.shape.At(i) {
				break
			}
			index[i] = 0
		}
	}
	n := 0
	if rank > 0 {
		n = len(found) / rank
	} else if a.FlatLength() == 1 && pred(data[a.offset]) {
		n = 1
	}
	result, err := FromSlice(found, n, rank)
	check(err)
	return result
}

// FindZero lists the indices of the zero (or false) elements of a.
func FindZero[T tensor.DType](a Array[T]) Array[int64] {
	var zero T
	return FindWhere(a, func(x T) bool { return x == zero })
}

// FindNonZero lists the indices of the non-zero (or true) elements of a.
func FindNonZero[T tensor.DType](a Array[T]) Array[int64] {
	var zero T
	return FindWhere(a, func(x T) bool { return x != zero })
}

// OneHot encodes the integer array a against the values [from, to): the
// result has a's shape plus a trailing axis of extent to-from, holding 1
// where a equals from+k and 0 elsewhere.
func OneHot[U tensor.Numeric, T tensor.Integer](a Array[T], from, to T) Array[U] {
	if to <= from {
		usage(tensor.ErrInvalidArgument, "one_hot: empty value range [%v, %v)", from, to)
	}
	values := Range(from, to)
	hits := binary("one_hot", a.RightExpandDims(1), values, cpu.Equal[T], simd.Equal[T])
	return FromBool[U](hits)
}

// OneHotAuto is OneHot over [min(a), max(a)].
func OneHotAuto[U tensor.Numeric, T tensor.Integer](a Array[T]) Array[U] {
	lo := ReduceMin(a, a.Axes(), false).Item()
	hi := ReduceMax(a, a.Axes(), false).Item()
	return OneHot[U](a, lo, hi+1)
}
