package array

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/tensor"
)

func shape(dims ...int) tensor.Coordinates {
	return tensor.MustCoordinates(dims...)
}

func TestFromSlice(t *testing.T) {
	a := must.M1(FromSlice([]float32{1, 2, 3}))
	assert.Equal(t, shape(3), a.Shape())
	assert.True(t, a.IsContiguous())
	assert.Equal(t, tensor.Float32, a.DType())

	m := must.M1(FromSlice([]int32{1, 2, 3, 4, 5, 6}, 2, 3))
	assert.Equal(t, shape(2, 3), m.Shape())
	assert.Equal(t, shape(3, 1), m.Strides())
	assert.Equal(t, int32(6), m.At(1, 2))

	_, err := FromSlice([]int32{1, 2, 3}, 2, 2)
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))

	_, err = FromSlice([]int32{}, 2, -1)
	assert.True(t, errors.Is(err, tensor.ErrInvalidArgument))
}

func TestFactories(t *testing.T) {
	z := must.M1(Zeros[float64](2, 2))
	assert.Equal(t, []float64{0, 0, 0, 0}, z.ToSlice())

	c := must.M1(Constant[int8](7, 3))
	assert.Equal(t, []int8{7, 7, 7}, c.ToSlice())
	assert.Equal(t, shape(3), ZerosLike(c).Shape())

	s := Scalar(2.5)
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 1, s.FlatLength())
	assert.Equal(t, 2.5, s.Item())

	_, err := Zeros[float32](1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.True(t, errors.Is(err, tensor.ErrRankExceeded))
}

func TestRange(t *testing.T) {
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, Range[int64](0, 5).ToSlice())
	assert.Equal(t, []int64{}, Range[int64](3, 3).ToSlice())
	assert.Equal(t, []int32{10, 7, 4, 1}, must.M1(RangeStep[int32](10, 0, -3)).ToSlice())
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75}, must.M1(RangeStep(0, 1, 0.25)).ToSlice())

	// Narrow integer types must not overflow while counting elements.
	assert.Equal(t, []int8{0, 100}, must.M1(RangeStep[int8](0, 127, 100)).ToSlice())
	assert.Equal(t, []uint8{0, 100, 200}, must.M1(RangeStep[uint8](0, 255, 100)).ToSlice())
	assert.Equal(t, []int8{120, 0, -120}, must.M1(RangeStep[int8](120, -128, -120)).ToSlice())
	assert.Equal(t, []int32{}, must.M1(RangeStep[int32](5, 0, 1)).ToSlice())

	_, err := RangeStep(0, 10, 0)
	assert.True(t, errors.Is(err, tensor.ErrInvalidArgument))
}

func TestConstantBroadcastAdd(t *testing.T) {
	a := must.M1(Constant[float32](5, 2, 3))
	b := must.M1(Constant[float32](1, 3))
	want := must.M1(Constant[float32](6, 2, 3))
	got := Add(a, b)
	assert.Equal(t, want.Shape(), got.Shape())
	assert.Equal(t, want.ToSlice(), got.ToSlice())
}

func TestTransposeCopy(t *testing.T) {
	a := Range[int64](0, 18).Reshape(3, 2, 3).Transpose(0, 2)
	assert.False(t, a.IsContiguous())
	assert.Equal(t, shape(3, 2, 3), a.Shape())

	c := a.Copy()
	assert.True(t, c.IsContiguous())
	assert.False(t, c.SharesBuffer(a))
	assert.Equal(t, []int64{
		0, 6, 12, 3, 9, 15,
		1, 7, 13, 4, 10, 16,
		2, 8, 14, 5, 11, 17,
	}, c.ToSlice())
}

func TestTranspose_Involution(t *testing.T) {
	a := Range[float32](0, 24).Reshape(2, 3, 4)
	for _, axes := range [][2]int{{0, 1}, {0, 2}, {1, -1}, {-3, -1}} {
		back := a.Transpose(axes[0], axes[1]).Transpose(axes[0], axes[1])
		assert.Equal(t, a.Shape(), back.Shape())
		assert.Equal(t, a.Strides(), back.Strides())
		assert.True(t, back.IsContiguous())
		assert.Equal(t, a.ToSlice(), back.ToSlice())
	}

	err := Try(func() { a.Transpose(0, 3) })
	assert.True(t, errors.Is(err, tensor.ErrAxisOutOfRange))
}

func TestCopy_Identity(t *testing.T) {
	m := Range[int32](0, 12).Reshape(3, 4)
	views := map[string]Array[int32]{
		"contiguous": m,
		"transposed": m.Transpose(0, 1),
		"sliced":     m.Slice([]int{0, 1}, []int{3, 3}, false),
		"row":        m.Take([]int{2}, true),
	}
	for name, v := range views {
		c := v.Copy()
		assert.Equal(t, v.Shape(), c.Shape(), name)
		assert.Equal(t, v.ToSlice(), c.ToSlice(), name)
		assert.True(t, c.IsContiguous(), name)
	}
}

func TestReshape(t *testing.T) {
	a := Range[int64](0, 12)
	assert.Equal(t, shape(3, 4), a.Reshape(3, tensor.Wildcard).Shape())
	assert.Equal(t, shape(2, 2, 3), a.Reshape(2, -1, 3).Shape())
	assert.Equal(t, shape(12), a.Reshape(3, 4).Flatten().Shape())

	err := Try(func() { a.Reshape(-1, -1) })
	assert.True(t, errors.Is(err, tensor.ErrTooManyWildcards))

	err = Try(func() { a.Reshape(5, -1) })
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))

	err = Try(func() { a.Reshape(3, 5) })
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))

	tr := a.Reshape(3, 4).Transpose(0, 1)
	err = Try(func() { tr.Reshape(12) })
	assert.True(t, errors.Is(err, tensor.ErrNotContiguous))

	flat := tr.Flatten()
	assert.Equal(t, []int64{0, 4, 8, 1, 5, 9, 2, 6, 10, 3, 7, 11}, flat.ToSlice())
	assert.False(t, flat.SharesBuffer(tr))
}

func TestExpandDims(t *testing.T) {
	a := Range[float64](0, 3)
	l := a.LeftExpandDims(2)
	assert.Equal(t, shape(1, 1, 3), l.Shape())
	assert.Equal(t, shape(0, 0, 1), l.Strides())
	assert.True(t, l.IsContiguous())

	r := a.RightExpandDims(1)
	assert.Equal(t, shape(3, 1), r.Shape())
	assert.Equal(t, a.ToSlice(), r.ToSlice())
	assert.True(t, r.SharesBuffer(a))

	err := Try(func() { a.LeftExpandDims(8) })
	assert.True(t, errors.Is(err, tensor.ErrRankExceeded))
}

func TestSlice(t *testing.T) {
	// [[0, 1, 2, 3], [4, 5, 6, 7], [8, 9, 10, 11]]
	m := Range[int64](0, 12).Reshape(3, 4)

	inner := m.Slice([]int{1, 1}, []int{3, 3}, false)
	assert.Equal(t, shape(2, 2), inner.Shape())
	assert.Equal(t, []int64{5, 6, 9, 10}, inner.ToSlice())
	assert.False(t, inner.IsContiguous())
	assert.Equal(t, 5, inner.Offset())

	last := m.Slice([]int{-1}, []int{3}, false)
	assert.Equal(t, shape(1, 4), last.Shape())
	assert.True(t, last.IsContiguous())
	assert.Equal(t, []int64{8, 9, 10, 11}, last.ToSlice())

	cols := m.Slice([]int{0, 2}, []int{3, -1}, false)
	assert.Equal(t, shape(3, 1), cols.Shape())
	assert.False(t, cols.IsContiguous())
	assert.Equal(t, []int64{2, 6, 10}, cols.ToSlice())

	err := Try(func() { m.Slice([]int{0}, []int{4}, false) })
	assert.True(t, errors.Is(err, tensor.ErrIndexOutOfRange))
	err = Try(func() { m.Slice([]int{2}, []int{1}, false) })
	assert.True(t, errors.Is(err, tensor.ErrInvalidArgument))
	err = Try(func() { m.Slice([]int{0, 0, 0}, []int{1, 1, 1}, false) })
	assert.True(t, errors.Is(err, tensor.ErrIndexOutOfRange))
}

func TestTake(t *testing.T) {
	m := Range[int64](0, 12).Reshape(3, 4)

	row := m.Take([]int{1}, false)
	assert.Equal(t, shape(4), row.Shape())
	assert.Equal(t, []int64{4, 5, 6, 7}, row.ToSlice())

	kept := m.Take([]int{1}, true)
	assert.Equal(t, shape(1, 4), kept.Shape())

	elem := m.Take([]int{-1, 2}, false)
	assert.Equal(t, 0, elem.Rank())
	assert.Equal(t, int64(10), elem.Item())

	err := Try(func() { m.Take([]int{3}, false) })
	assert.True(t, errors.Is(err, tensor.ErrIndexOutOfRange))
}

func TestViewsShareBuffer(t *testing.T) {
	m := Range[float32](0, 6).Reshape(2, 3)
	tr := m.Transpose(0, 1)
	require.True(t, tr.SharesBuffer(m))

	tr.Set(100, 2, 1)
	assert.Equal(t, float32(100), m.At(1, 2))

	m.Take([]int{0}, false).Fill(-1)
	assert.Equal(t, []float32{-1, -1, -1, 3, 4, 100}, m.ToSlice())
	assert.Equal(t, []float32{-1, 3, -1, 4, -1, 100}, tr.ToSlice())
}

func TestRelease(t *testing.T) {
	base := must.M1(Zeros[float32](4))
	buf := base.Buffer()
	assert.Equal(t, 1, buf.RefCount())

	v := base.Reshape(2, 2)
	w := v.Transpose(0, 1)
	assert.Equal(t, 3, buf.RefCount())

	w.Release()
	v.Release()
	assert.True(t, buf.IsUnique())
	assert.False(t, buf.Released())

	base.Release()
	assert.True(t, buf.Released())
	assert.Equal(t, 0, buf.Len())
}

func TestExtend(t *testing.T) {
	col := must.M1(FromSlice([]int32{1, 2}, 2, 1))
	e := col.Extend(2, 3)
	assert.Equal(t, []int32{1, 1, 1, 2, 2, 2}, e.ToSlice())
	assert.True(t, e.IsContiguous())

	lifted := Range[int32](0, 3).Extend(2, 3)
	assert.Equal(t, []int32{0, 1, 2, 0, 1, 2}, lifted.ToSlice())

	err := Try(func() { col.Extend(3, 3) })
	assert.True(t, errors.Is(err, tensor.ErrIncompatibleBroadcast))
}

func TestAssign(t *testing.T) {
	dst := must.M1(Zeros[float64](2, 3))
	dst.Assign(must.M1(FromSlice([]float64{1, 2, 3})))
	assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, dst.ToSlice())

	err := Try(func() { dst.Assign(must.M1(Zeros[float64](3, 3))) })
	assert.True(t, errors.Is(err, tensor.ErrIncompatibleBroadcast))
}

func TestFromLines(t *testing.T) {
	a := Range[int64](0, 4).Reshape(2, 2)
	b := a.Transpose(0, 1)
	stacked := must.M1(FromLines([]Array[int64]{a, b}))
	assert.Equal(t, shape(2, 2, 2), stacked.Shape())
	assert.Equal(t, []int64{0, 1, 2, 3, 0, 2, 1, 3}, stacked.ToSlice())

	_, err := FromLines([]Array[int64]{a, Range[int64](0, 4)})
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))
	_, err = FromLines[int64](nil)
	assert.True(t, errors.Is(err, tensor.ErrInvalidArgument))

	flat := must.M1(FromFlatLines([][]bool{{true, false}, {false, true}}))
	assert.Equal(t, shape(2, 2), flat.Shape())
	assert.Equal(t, []bool{true, false, false, true}, flat.ToSlice())

	_, err = FromFlatLines([][]bool{{true}, {false, true}})
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))
}
