package tensor

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBufferAligned(t *testing.T) {
	for _, n := range []int{1, 3, 8, 17, 1000} {
		f32 := NewBuffer[float32](n)
		require.Equal(t, n, f32.Len())
		assert.Zero(t, uintptr(unsafe.Pointer(&f32.Data()[0]))%Alignment)

		b := NewBuffer[bool](n)
		assert.Zero(t, uintptr(unsafe.Pointer(&b.Data()[0]))%Alignment)

		i16 := NewBuffer[int16](n)
		assert.Zero(t, uintptr(unsafe.Pointer(&i16.Data()[0]))%Alignment)
	}
	assert.Equal(t, 0, NewBuffer[float64](0).Len())
}

func TestBufferFromCopies(t *testing.T) {
	src := []int32{1, 2, 3}
	buf := BufferFrom(src)
	src[0] = 100
	assert.Equal(t, []int32{1, 2, 3}, buf.Data())
}

func TestBufferRefCount(t *testing.T) {
	buf := NewBuffer[float64](4)
	assert.True(t, buf.IsUnique())

	buf.Retain()
	assert.Equal(t, 2, buf.RefCount())
	assert.False(t, buf.IsUnique())

	buf.Data()[1] = 7
	buf.Release()
	assert.True(t, buf.IsUnique())
	assert.Equal(t, 7.0, buf.Data()[1], "storage survives while referenced")

	buf.Release()
	assert.True(t, buf.Released())
	assert.Nil(t, buf.Data())
	assert.Equal(t, 0, buf.Len())
}

func TestBufferConcurrentRetainRelease(t *testing.T) {
	buf := NewBuffer[float32](16)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf.Retain()
			buf.Release()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, buf.RefCount())
	assert.NotNil(t, buf.Data())
}

func TestDTypeOf(t *testing.T) {
	type celsius float32
	assert.Equal(t, Float32, DTypeOf[float32]())
	assert.Equal(t, Float32, DTypeOf[celsius]())
	assert.Equal(t, Int64, DTypeOf[int64]())
	assert.Equal(t, Bool, DTypeOf[bool]())
	assert.Equal(t, Uint8, DTypeOf[uint8]())
	assert.Equal(t, 8, Float64.Size())
	assert.Equal(t, "int16", Int16.String())
	assert.True(t, Float64.IsFloat())
	assert.False(t, Int32.IsFloat())
}
