package tensor

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	c, err := NewCoordinates(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []int{2, 3, 4}, c.Slice())
	assert.Equal(t, 24, c.Product())
	assert.Equal(t, "[2, 3, 4]", c.String())

	_, err = NewCoordinates(1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRankExceeded))

	empty := MustCoordinates()
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 1, empty.Product())
	assert.Equal(t, "[]", empty.String())
}

func TestCoordinatesValueSemantics(t *testing.T) {
	a := MustCoordinates(1, 2, 3)
	b := a
	b.Set(0, 9)
	assert.Equal(t, 1, a.At(0))
	assert.Equal(t, 9, b.At(0))
}

func TestCoordinatesGetWraps(t *testing.T) {
	c := MustCoordinates(10, 20, 30)
	assert.Equal(t, 30, c.Get(-1))
	assert.Equal(t, 10, c.Get(3))
	assert.Equal(t, 20, c.Get(-5))
}

func TestCoordinatesPushBack(t *testing.T) {
	c := Filled(7, 1)
	require.NoError(t, c.PushBack(5))
	assert.Equal(t, MaxRank, c.Len())
	assert.Equal(t, 5, c.At(7))

	err := c.PushBack(6)
	assert.True(t, errors.Is(err, ErrRankExceeded))
	assert.Equal(t, MaxRank, c.Len())
}

func TestCoordinatesAppend(t *testing.T) {
	a := MustCoordinates(1, 2)
	b := MustCoordinates(3, 4, 5)
	ab, err := a.Append(b)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ab.Slice())
	assert.Equal(t, []int{1, 2}, a.Slice(), "receiver must not change")

	_, err = ab.Append(MustCoordinates(1, 1, 1, 1))
	assert.True(t, errors.Is(err, ErrRankExceeded))

	abv, err := a.AppendValue(7)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 7}, abv.Slice())
}

func TestCoordinatesInterval(t *testing.T) {
	c := MustCoordinates(5, 6, 7, 8)
	mid, err := c.Interval(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 7}, mid.Slice())

	none, err := c.Interval(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, none.Len())

	_, err = c.Interval(3, 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = c.Interval(0, 5)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestCoordinatesShiftRight(t *testing.T) {
	c := MustCoordinates(2, 3)

	padded, err := c.ShiftRight(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 3}, padded.Slice())

	dropped, err := padded.ShiftRight(0, -3)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, dropped.Slice())

	_, err = c.ShiftRight(0, 7)
	assert.True(t, errors.Is(err, ErrRankExceeded))
	_, err = c.ShiftRight(0, -3)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestCoordinatesEqual(t *testing.T) {
	assert.True(t, MustCoordinates(1, 2).Equal(MustCoordinates(1, 2)))
	assert.False(t, MustCoordinates(1, 2).Equal(MustCoordinates(1, 2, 1)))
	assert.False(t, MustCoordinates(1, 2).Equal(MustCoordinates(2, 1)))
}

func TestFindDifferences(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want []int
	}{
		{"equal", []int{2, 3}, []int{2, 3}, []int{}},
		{"broadcast row", []int{1, 3}, []int{4, 3}, []int{0}},
		{"missing leading", []int{3}, []int{2, 4, 3}, []int{0, 1}},
		{"leading and inner", []int{5, 1}, []int{2, 5, 3}, []int{0, 2}},
		{"longer left", []int{2, 4, 3}, []int{1}, []int{0, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindDifferences(MustCoordinates(tt.a...), MustCoordinates(tt.b...))
			assert.Equal(t, tt.want, got.Slice())
		})
	}
}

func TestFilledPanicsPastMaxRank(t *testing.T) {
	assert.Panics(t, func() { Filled(MaxRank+1, 0) })
}
