package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/simd"
	"github.com/born-ml/ndarray/internal/tensor"
)

// rowMajor wraps data as a contiguous operand of the given shape.
func rowMajor[T tensor.DType](data []T, shape ...int) tensor.Strided[T] {
	s := tensor.MustCoordinates(shape...)
	return tensor.Strided[T]{Data: data, Shape: s, Strides: tensor.RowMajorStrides(s)}
}

// transposed swaps axes i and j of s without moving data.
func transposed[T tensor.DType](s tensor.Strided[T], i, j int) tensor.Strided[T] {
	s.Shape.Swap(i, j)
	s.Strides.Swap(i, j)
	return s
}

func iota64(n int) []int64 {
	data := make([]int64, n)
	for i := range data {
		data[i] = int64(i)
	}
	return data
}

func iotaF64(n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)*0.25 - 3
	}
	return data
}

// forEachIndex visits every index of shape in row-major order.
func forEachIndex(shape tensor.Coordinates, f func(idx tensor.Coordinates)) {
	if shape.Product() == 0 {
		return
	}
	idx := tensor.Filled(shape.Len(), 0)
	for {
		f(idx)
		k := shape.Len() - 1
		for ; k >= 0; k-- {
			idx.Set(k, idx.At(k)+1)
			if idx.At(k) < shape.At(k) {
				break
			}
			idx.Set(k, 0)
		}
		if k < 0 {
			return
		}
	}
}

// broadcastAt reads s at idx, right-aligned, with size-1 axes repeating.
func broadcastAt[T tensor.DType](s tensor.Strided[T], idx tensor.Coordinates) T {
	pos := s.Offset
	shift := idx.Len() - s.Rank()
	for i := 0; i < s.Rank(); i++ {
		pos += (idx.At(i+shift) % s.Shape.At(i)) * s.Strides.At(i)
	}
	return s.Data[pos]
}

// layouts returns the same logical [rows, cols] operand in three memory layouts.
func layouts(rows, cols int) map[string]tensor.Strided[int64] {
	contiguous := rowMajor(iota64(rows*cols), rows, cols)
	trans := transposed(rowMajor(iota64(rows*cols), cols, rows), 0, 1)
	// A [rows, cols] window into a larger [rows+2, cols+3] buffer.
	big := rowMajor(iota64((rows+2)*(cols+3)), rows+2, cols+3)
	sliced := big
	sliced.Offset = 1*(cols+3) + 2
	sliced.Shape = tensor.MustCoordinates(rows, cols)
	return map[string]tensor.Strided[int64]{
		"contiguous": contiguous,
		"transposed": trans,
		"sliced":     sliced,
	}
}

func TestNewPlan_FlattensContiguousRun(t *testing.T) {
	src := rowMajor(iota64(80), 4, 20)
	p := newPlan(src.Shape, 8, true, layoutOf(src, 2), layoutOf(src, 2))
	assert.True(t, p.flat)
	assert.Equal(t, 80, p.n)
	assert.Equal(t, 0, p.outer)
	assert.Equal(t, offsets{1, 1, 0}, p.innerStride)
}

func TestNewPlan_BoostAxisIsLargestExtent(t *testing.T) {
	src := transposed(rowMajor(iota64(60), 30, 2), 0, 1) // shape [2, 30], strides [1, 2]
	dst := rowMajor(make([]int64, 60), 2, 30)
	p := newPlan(dst.Shape, 8, true, layoutOf(dst, 2), layoutOf(src, 2))
	assert.False(t, p.flat)
	assert.Equal(t, 30, p.n)
	assert.Equal(t, 1, p.innerStride[0])
	assert.Equal(t, 2, p.innerStride[1])
	assert.Equal(t, 1, p.outer)
	assert.Equal(t, 2, p.extent[0])
}

func TestNewPlan_BroadcastOperandKeepsRunFlat(t *testing.T) {
	dst := rowMajor(make([]int64, 60), 3, 20)
	row := rowMajor(iota64(20), 20)
	scalar := rowMajor([]int64{7}, 1)
	p := newPlan(dst.Shape, 8, true, layoutOf(dst, 2), layoutOf(row, 2), layoutOf(scalar, 2))
	// row repeats along axis 0, so only axis 1 merges.
	assert.True(t, p.flat)
	assert.Equal(t, 20, p.n)
	assert.Equal(t, offsets{1, 1, 0}, p.innerStride)
	assert.Equal(t, 1, p.outer)
	assert.Equal(t, 0, p.strides[1][0])
}

func TestNewPlan_EmptyShape(t *testing.T) {
	dst := rowMajor([]int64{}, 3, 0)
	p := newPlan(dst.Shape, 8, true, layoutOf(dst, 2))
	assert.True(t, p.empty)
	calls := 0
	p.walk(func(offsets) { calls++ })
	assert.Zero(t, calls)
}

func TestFill_StridedView(t *testing.T) {
	data := iota64(12)
	view := transposed(rowMajor(data, 3, 4), 0, 1)
	view.Shape = tensor.MustCoordinates(2, 3) // first two columns
	Fill(view, -1)
	assert.Equal(t, []int64{-1, -1, 2, 3, -1, -1, 6, 7, -1, -1, 10, 11}, data)
}

func TestBinary_Broadcast(t *testing.T) {
	left := rowMajor([]int64{1, 2, 3, 4, 5, 6}, 2, 3)
	right := rowMajor([]int64{10, 20, 30}, 3)
	dst := rowMajor(make([]int64, 6), 2, 3)
	Binary(dst, left, right, Add[int64], simd.Add[int64])
	assert.Equal(t, []int64{11, 22, 33, 14, 25, 36}, dst.Data)

	column := rowMajor([]int64{100, 200}, 2, 1)
	Binary(dst, left, column, Mul[int64], simd.Mul[int64])
	assert.Equal(t, []int64{100, 200, 300, 800, 1000, 1200}, dst.Data)
}

func TestBinary_BothSidesBroadcast(t *testing.T) {
	column := rowMajor([]int64{1, 2, 3}, 3, 1)
	row := rowMajor(iota64(12), 1, 12)
	dst := rowMajor(make([]int64, 36), 3, 12)
	Binary(dst, column, row, Sub[int64], simd.Sub[int64])
	forEachIndex(dst.Shape, func(idx tensor.Coordinates) {
		want := column.Data[idx.At(0)] - row.Data[idx.At(1)]
		assert.Equal(t, want, dst.Data[dst.IndexOf(idx)], "at %s", idx)
	})
}

func TestBinary_IncompatiblePanics(t *testing.T) {
	left := rowMajor(iota64(6), 2, 3)
	right := rowMajor(iota64(4), 4)
	dst := rowMajor(make([]int64, 6), 2, 3)
	assert.Panics(t, func() {
		Binary(dst, left, right, Add[int64], nil)
	})
}

func TestUnary_RankZero(t *testing.T) {
	src := tensor.Strided[float64]{Data: []float64{-2}}
	dst := tensor.Strided[float64]{Data: []float64{0}}
	Unary(dst, src, Abs[float64], nil)
	assert.Equal(t, 2.0, dst.Data[0])
}

func TestUnary_ToBool(t *testing.T) {
	src := rowMajor([]float64{1, 0, -3, 0}, 4)
	dst := rowMajor(make([]bool, 4), 4)
	Unary(dst, src, func(x float64) bool { return x != 0 }, nil)
	assert.Equal(t, []bool{true, false, true, false}, dst.Data)
}

func TestUnaryParam_Clip(t *testing.T) {
	src := rowMajor(iotaF64(40), 40)
	dst := rowMajor(make([]float64, 40), 40)
	bounds := simd.Bounds[float64]{Lower: -1, Upper: 2}
	UnaryParam(dst, src, bounds, Clip[float64], simd.Clip[float64])
	for i, x := range src.Data {
		assert.Equal(t, min(max(x, -1), 2), dst.Data[i])
	}
}

// TestScalarVectorEquivalence runs every kernel family with and without the
// batch layer over contiguous, transposed and sliced inputs.
func TestScalarVectorEquivalence(t *testing.T) {
	const rows, cols = 5, 19
	right := rowMajor(iota64(cols+1)[1:], cols) // 1..cols, no zeros
	for name, src := range layouts(rows, cols) {
		t.Run(name, func(t *testing.T) {
			run := func() (sum, neg, quo, cmp, reduced []int64, nonZero []bool) {
				d := rowMajor(make([]int64, rows*cols), rows, cols)
				Binary(d, src, right, Add[int64], simd.Add[int64])
				sum = d.Data

				d = rowMajor(make([]int64, rows*cols), rows, cols)
				Unary(d, src, Neg[int64], NegVec[int64])
				neg = d.Data

				d = rowMajor(make([]int64, rows*cols), rows, cols)
				Binary(d, src, right, Div[int64], simd.Div[int64])
				quo = d.Data

				m := rowMajor(make([]bool, rows*cols), rows, cols)
				Binary(m, src, right, Less[int64], simd.Less[int64])
				cmp = make([]int64, len(m.Data))
				for i, b := range m.Data {
					if b {
						cmp[i] = 1
					}
				}

				r := rowMajor(make([]int64, rows), rows, 1)
				Reduce(r, src, SumFold[int64]())
				reduced = r.Data

				a := rowMajor(make([]bool, cols), 1, cols)
				Reduce(a, src, AnyFold[int64]())
				nonZero = a.Data
				return
			}
			sum, neg, quo, cmp, reduced, nonZero := run()
			restore := ForceScalar()
			sum2, neg2, quo2, cmp2, reduced2, nonZero2 := run()
			restore()

			assert.Equal(t, sum2, sum)
			assert.Equal(t, neg2, neg)
			assert.Equal(t, quo2, quo)
			assert.Equal(t, cmp2, cmp)
			assert.Equal(t, reduced2, reduced)
			assert.Equal(t, nonZero2, nonZero)

			// And both agree with direct indexing.
			forEachIndex(src.Shape, func(idx tensor.Coordinates) {
				x := broadcastAt(src, idx)
				pos := idx.At(0)*cols + idx.At(1)
				require.Equal(t, x+right.Data[idx.At(1)], sum[pos])
				require.Equal(t, -x, neg[pos])
			})
		})
	}
}

func TestScalarVectorEquivalence_Float(t *testing.T) {
	const n = 67
	src := rowMajor(iotaF64(n), n)
	run := func() (exp []float64, sum float64) {
		d := rowMajor(make([]float64, n), n)
		Unary(d, src, Exp[float64], Lanes(Exp[float64]))
		r := rowMajor(make([]float64, 1), 1)
		Reduce(r, src, SumFold[float64]())
		return d.Data, r.Data[0]
	}
	exp, sum := run()
	restore := ForceScalar()
	exp2, sum2 := run()
	restore()
	assert.Equal(t, exp2, exp)
	assert.InDelta(t, sum2, sum, 1e-9)
}
