package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/ndarray/internal/simd"
)

func TestIntPow(t *testing.T) {
	assert.Equal(t, int64(1), IntPow(int64(7), 0))
	assert.Equal(t, int64(7), IntPow(int64(7), 1))
	assert.Equal(t, int64(1024), IntPow(int64(2), 10))
	assert.Equal(t, int64(-27), IntPow(int64(-3), 3))
	assert.InDelta(t, math.Pow(1.1, 13), IntPow(1.1, 13), 1e-12)
}

func TestElementFunctions(t *testing.T) {
	assert.Equal(t, 3.0, Abs(-3.0))
	assert.Equal(t, int8(5), Abs(int8(-5)))
	assert.Equal(t, uint16(9), Square(uint16(3)))
	assert.Equal(t, 8.0, Pow(2.0, 3.0))
	assert.Equal(t, int32(1), Mod(int32(7), int32(3)))
	assert.Equal(t, int32(-1), Mod(int32(-7), int32(3)))
	assert.Equal(t, 2.0, Clip(5.0, simd.Bounds[float64]{Lower: -2, Upper: 2}))
	assert.Equal(t, -2.0, Clip(-5.0, simd.Bounds[float64]{Lower: -2, Upper: 2}))

	assert.True(t, IsNaN(math.NaN()))
	assert.False(t, IsNaN(1.0))
	assert.True(t, IsInf(float32(math.Inf(-1))))
	assert.False(t, IsInf(float32(3)))

	assert.Equal(t, 2.0, Max(2.0, 1.0))
	assert.Equal(t, 1.0, Min(2.0, 1.0))
	assert.True(t, math.IsNaN(Max(math.NaN(), 1.0)))
}

func TestLaneLifting(t *testing.T) {
	v := simd.Vec[float64]{-1, 0, 1, 2, 3, 4, 5, 6}
	sq := Lanes(Square[float64])(v)
	assert.Equal(t, SquareVec(v), sq)

	pow := LanesParam(IntPow[float64])(v, 3)
	for i := range v {
		assert.Equal(t, IntPow(v[i], 3), pow[i])
	}

	m := Lanes2(Greater[float64])(v, simd.Splat(2.0))
	assert.Equal(t, GreaterVec(v, simd.Splat(2.0)), m)
	assert.Equal(t, simd.Mask{true, true, true, true, false, false, false, false}, NotVec(m))
}
