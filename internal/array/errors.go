package array

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/internal/tensor"
)

// Try runs fn and returns the error it panicked with, if any.
//
// Example:
//
//	err := array.Try(func() { c = array.Add(a, b) })
//	if errors.Is(err, tensor.ErrIncompatibleBroadcast) { ... }
func Try(fn func()) error {
	return exceptions.TryCatch[error](fn)
}

// check panics with err when it is not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// usage panics with an error wrapping sentinel.
func usage(sentinel error, format string, args ...any) {
	panic(errors.Wrapf(sentinel, format, args...))
}

// broadcastShape validates a binary operation over shapes a and b and
// returns the result shape.
func broadcastShape(op string, a, b tensor.Coordinates) tensor.Coordinates {
	if tensor.BroadcastRelationship(a, b) == tensor.BroadcastNone {
		usage(tensor.ErrIncompatibleBroadcast, "%s: shapes %s and %s", op, a, b)
	}
	shape, err := tensor.BroadcastShape(a, b)
	if err != nil {
		panic(errors.WithMessage(err, op))
	}
	return shape
}

// checkInPlace validates an in-place operation writing into dst.
func checkInPlace(op string, dst, src tensor.Coordinates) {
	if !tensor.IsSubshape(src, dst) {
		usage(tensor.ErrIncompatibleBroadcast, "%s: %s does not broadcast into the destination %s", op, src, dst)
	}
}
