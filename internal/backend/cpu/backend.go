// Package cpu implements the CPU kernels of the array engine: one generic
// n-dimensional dispatch core shared by elementwise maps, binary maps and
// reductions, plus the batched matrix multiplication subsystem.
//
// Kernels operate on tensor.Strided descriptors and never allocate the
// destination; the array package owns allocation and validation of user input.
package cpu

import (
	"sync/atomic"

	"github.com/born-ml/ndarray/internal/parallel"
)

// Config controls kernel selection.
type Config struct {
	// FastPath enables the simd batch layer on contiguous runs.
	FastPath bool
	// VectorThreshold is the run length a contiguous inner loop must exceed
	// before it is handed to the batch layer.
	VectorThreshold int
	// Parallel configures threaded matrix multiplication.
	Parallel parallel.Config
	// ParallelMinWork is the number of multiply-adds below which a matrix
	// product always runs on the calling goroutine.
	ParallelMinWork int
}

// DefaultConfig returns the default configuration: batch layer on, single-threaded.
func DefaultConfig() Config {
	return Config{
		FastPath:        true,
		VectorThreshold: 8,
		Parallel:        parallel.Sequential(),
		ParallelMinWork: 1 << 16,
	}
}

var current atomic.Pointer[Config]

func init() {
	cfg := DefaultConfig()
	current.Store(&cfg)
}

// CurrentConfig returns the configuration in effect.
func CurrentConfig() Config {
	return *current.Load()
}

// SetConfig installs cfg and returns a function restoring the previous one.
//
// Example:
//
//	defer cpu.SetConfig(cfg)()
func SetConfig(cfg Config) (restore func()) {
	if cfg.VectorThreshold < 0 {
		cfg.VectorThreshold = 0
	}
	prev := current.Swap(&cfg)
	return func() {
		current.Store(prev)
	}
}

// ForceScalar disables the batch layer until the returned function is called.
//
// Example:
//
//	defer cpu.ForceScalar()()
//	result := array.Add(a, b) // scalar path only
func ForceScalar() (restore func()) {
	cfg := CurrentConfig()
	cfg.FastPath = false
	return SetConfig(cfg)
}

// EnableParallel turns on threaded matrix multiplication with the given
// worker count (0 means one per CPU) until the returned function is called.
func EnableParallel(workers int) (restore func()) {
	cfg := CurrentConfig()
	cfg.Parallel = parallel.DefaultConfig()
	if workers > 0 {
		cfg.Parallel.NumWorkers = workers
	}
	cfg.Parallel.Enabled = cfg.Parallel.NumWorkers > 1
	return SetConfig(cfg)
}
