// Package parallel splits index ranges across a bounded set of goroutines.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Maximum number of goroutines running at once.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// Sequential returns a Config that runs everything on the calling goroutine.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// Range is the half-open index interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of indices in r.
func (r Range) Len() int { return r.End - r.Start }

// Chunks partitions [0, n) into at most cfg.NumWorkers contiguous ranges of
// at least cfg.MinChunkSize items each. A single range covering [0, n) is
// returned when parallelism is disabled or n is too small to split.
func Chunks(n int, cfg Config) []Range {
	if n <= 0 {
		return nil
	}
	workers := max(cfg.NumWorkers, 1)
	if !cfg.Enabled || workers == 1 || n < 2*max(cfg.MinChunkSize, 1) {
		return []Range{{0, n}}
	}
	chunkSize := max((n+workers-1)/workers, cfg.MinChunkSize, 1)
	ranges := make([]Range, 0, (n+chunkSize-1)/chunkSize)
	for start := 0; start < n; start += chunkSize {
		ranges = append(ranges, Range{start, min(start+chunkSize, n)})
	}
	return ranges
}

// ForRange executes f over disjoint ranges covering [0, n) and returns once
// every range is done. Ranges run concurrently, at most cfg.NumWorkers at a time.
func ForRange(n int, f func(start, end int), cfg Config) {
	ranges := Chunks(n, cfg)
	if len(ranges) <= 1 {
		for _, r := range ranges {
			f(r.Start, r.End)
		}
		return
	}
	klog.V(3).Infof("parallel: %d items in %d ranges of up to %d", n, len(ranges), ranges[0].Len())

	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for _, r := range ranges {
		g.Go(func() error {
			f(r.Start, r.End)
			return nil
		})
	}
	_ = g.Wait()
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ForRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}
