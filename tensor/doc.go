// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides strided, broadcasting n-dimensional arrays for Go.
//
// # Overview
//
// An Array[T] is a view over a shared, reference-counted buffer. This package provides:
//   - Generic type-safe arrays (Array[T])
//   - NumPy-style broadcasting
//   - Zero-copy views: Transpose, Reshape, Slice, Take, expansions
//   - Reductions over any set of axes
//   - Batched matrix multiplication with kernel selection and optional threading
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray/tensor"
//
//	func main() {
//	    x := tensor.Range[float32](0, 6).Reshape(2, 3)
//	    y, _ := tensor.Constant[float32](1, 3)
//
//	    z := tensor.Add(x, y)                          // [2, 3]
//	    m := tensor.MatMul(z, z.Transpose(0, 1))       // [2, 2]
//	    s := tensor.ReduceSum(m, []int{1}, false)      // [2]
//	    fmt.Println(s)
//	}
//
// # Supported Data Types
//
// Arrays hold any type satisfying DType: every Go integer and float type
// plus bool. Arithmetic requires Numeric, the transcendental functions
// require Float and Mod requires Integer; misuse is a compile error.
//
// # Broadcasting
//
// Binary operations follow NumPy broadcasting rules:
//
//	a, _ := tensor.Zeros[float32](3, 1)     // (3, 1)
//	b, _ := tensor.Constant[float32](1, 3, 4) // (3, 4)
//	c := tensor.Add(a, b)                   // (3, 4)
//
// In-place operations (AddAssign and friends) require the source to broadcast
// into the destination without growing it.
//
// # Errors
//
// Constructors return errors. Operations on existing arrays panic with an
// error wrapping one of the Err sentinels; Try recovers it:
//
//	err := tensor.Try(func() { c = tensor.Add(a, b) })
//	if errors.Is(err, tensor.ErrIncompatibleBroadcast) { ... }
//
// # Memory Management
//
// Views share storage with the array they were taken from, so writes through
// one view are visible through the others. Release drops a view's reference;
// the storage is freed when the last reference goes.
//
// # Performance
//
// Contiguous runs longer than eight elements go through an eight-lane batch
// layer. ForceScalar disables it; EnableParallel threads large matrix
// products over a worker pool.
package tensor
