package tensor

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/pkg/errors"
)

// Alignment is the byte alignment of the first element of every Buffer.
const Alignment = 32

// Buffer is a reference-counted block of elements shared by array views.
//
// A Buffer never changes length. Writes through any view are visible to every
// other view of the same Buffer; there is no copy-on-write. The storage is
// dropped when the last reference is released, after which Data returns nil.
type Buffer[T DType] struct {
	data     []T
	refCount atomic.Int32
	mu       sync.Mutex // guards data during deallocation
}

// NewBuffer allocates a zeroed, aligned buffer of n elements with refCount = 1.
func NewBuffer[T DType](n int) *Buffer[T] {
	if n < 0 {
		panic(errors.Wrapf(ErrInvalidArgument, "negative buffer length %d", n))
	}
	buf := &Buffer[T]{data: alignedSlice[T](n)}
	buf.refCount.Store(1)
	return buf
}

// BufferFrom allocates a buffer holding a copy of values.
func BufferFrom[T DType](values []T) *Buffer[T] {
	buf := NewBuffer[T](len(values))
	copy(buf.data, values)
	return buf
}

// alignedSlice returns a zeroed slice of n elements whose first element sits
// on an Alignment boundary.
func alignedSlice[T DType](n int) []T {
	if n == 0 {
		return []T{}
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	pad := Alignment / size
	raw := make([]T, n+pad)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	skip := 0
	if rem := int(addr % Alignment); rem != 0 {
		skip = (Alignment - rem) / size
	}
	return raw[skip : skip+n : skip+n]
}

// Len returns the number of elements, or 0 once released.
func (b *Buffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Data returns the backing slice. Views index it with their own offset and strides.
func (b *Buffer[T]) Data() []T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// Retain adds a reference for a new view.
func (b *Buffer[T]) Retain() {
	b.refCount.Add(1)
}

// Release drops a reference and frees the storage when none remain.
// Releasing more often than retaining is a precondition violation, detected
// only in debug builds.
func (b *Buffer[T]) Release() {
	n := b.refCount.Add(-1)
	if n == 0 {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.data = nil
		return
	}
	if Debug && n < 0 {
		panic(errors.Wrapf(ErrOverRelease, "reference count is %d", n))
	}
}

// RefCount returns the current number of references.
func (b *Buffer[T]) RefCount() int {
	return int(b.refCount.Load())
}

// IsUnique reports whether exactly one view references the buffer.
func (b *Buffer[T]) IsUnique() bool {
	return b.refCount.Load() == 1
}

// Released reports whether the storage has been dropped.
func (b *Buffer[T]) Released() bool {
	return b.refCount.Load() <= 0
}
