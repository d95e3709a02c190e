// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Config controls kernel selection: the batch layer and threaded matrix
// multiplication.
type Config = cpu.Config

// ParallelConfig configures the matrix multiplication worker pool.
type ParallelConfig = parallel.Config

// DefaultConfig returns the default configuration: batch layer on, single-threaded.
func DefaultConfig() Config {
	return cpu.DefaultConfig()
}

// CurrentConfig returns the configuration in effect.
func CurrentConfig() Config {
	return cpu.CurrentConfig()
}

// SetConfig installs cfg and returns a function restoring the previous one.
//
// Example:
//
//	defer tensor.SetConfig(cfg)()
func SetConfig(cfg Config) (restore func()) {
	return cpu.SetConfig(cfg)
}

// ForceScalar disables the batch layer until the returned function is called.
func ForceScalar() (restore func()) {
	return cpu.ForceScalar()
}

// EnableParallel threads large matrix products over workers goroutines
// (0 means one per CPU) until the returned function is called.
func EnableParallel(workers int) (restore func()) {
	return cpu.EnableParallel(workers)
}
