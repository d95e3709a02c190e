// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndarray/internal/array"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Error sentinels. Errors returned or panicked by this package wrap one of
// them; test with errors.Is.
var (
	ErrShapeMismatch         = tensor.ErrShapeMismatch
	ErrIncompatibleBroadcast = tensor.ErrIncompatibleBroadcast
	ErrAxisOutOfRange        = tensor.ErrAxisOutOfRange
	ErrTooManyWildcards      = tensor.ErrTooManyWildcards
	ErrNotContiguous         = tensor.ErrNotContiguous
	ErrRankExceeded          = tensor.ErrRankExceeded
	ErrIndexOutOfRange       = tensor.ErrIndexOutOfRange
	ErrOverRelease           = tensor.ErrOverRelease
	ErrInvalidArgument       = tensor.ErrInvalidArgument
)

// Try runs fn and returns the error it panicked with, if any.
//
// Example:
//
//	err := tensor.Try(func() { c = tensor.MatMul(a, b) })
func Try(fn func()) error {
	return array.Try(fn)
}
