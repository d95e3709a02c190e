package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray/tensor"
)

type benchOptions struct {
	Size, Batch, Iters, Workers int
	Scalar                      bool
	Seed                        uint64
}

// benchResult summarizes a benchmark run.
type benchResult struct {
	Elapsed time.Duration
	Flops   float64
}

func runBench(opts benchOptions) error {
	if opts.Size <= 0 || opts.Batch <= 0 || opts.Iters <= 0 {
		return errors.Errorf("size, batch and iters must be positive, got %d, %d and %d", opts.Size, opts.Batch, opts.Iters)
	}
	if opts.Scalar {
		defer tensor.ForceScalar()()
	}
	if opts.Workers != 1 {
		defer tensor.EnableParallel(opts.Workers)()
	}
	klog.V(1).Infof("bench config: %+v", tensor.CurrentConfig())

	g := tensor.NewGenerator(opts.Seed)
	left, err := tensor.Normal[float32](g, 0, 1, opts.Batch, opts.Size, opts.Size)
	if err != nil {
		return errors.WithMessage(err, "left operand")
	}
	right, err := tensor.Normal[float32](g, 0, 1, opts.Size, opts.Size)
	if err != nil {
		return errors.WithMessage(err, "right operand")
	}
	fmt.Println(titleStyle.Render("matmul benchmark"))
	fmt.Println(field("left", left.Summary()))
	fmt.Println(field("right", right.Summary()))

	result, err := bench(left, right, opts.Iters)
	if err != nil {
		return err
	}
	perIter := result.Elapsed / time.Duration(opts.Iters)
	fmt.Println(field("iterations", humanize.Comma(int64(opts.Iters))))
	fmt.Println(field("per iteration", perIter))
	fmt.Println(field("throughput", humanize.SIWithDigits(result.Flops/result.Elapsed.Seconds(), 2, "FLOP/s")))
	return nil
}

// bench multiplies left by right iters times behind a progress bar.
func bench(left, right tensor.Array[float32], iters int) (benchResult, error) {
	var result benchResult
	bar := progressbar.NewOptions(iters,
		progressbar.OptionSetDescription("matmul"),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("products"),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionClearOnFinish(),
	)
	shape := left.Shape()
	m, k := shape.At(shape.Len()-2), shape.At(shape.Len()-1)
	n := right.Shape().At(right.Rank() - 1)
	perProduct := 2 * float64(left.FlatLength()/(m*k)) * float64(m) * float64(n) * float64(k)

	start := time.Now()
	for range iters {
		var product tensor.Array[float32]
		err := tensor.Try(func() { product = tensor.MatMul(left, right) })
		if err != nil {
			return result, err
		}
		if tensor.CheckNumerics(product) {
			return result, errors.New("product holds NaN or Inf values")
		}
		product.Release()
		result.Flops += perProduct
		if err := bar.Add(1); err != nil {
			klog.V(2).Infof("progress bar: %v", err)
		}
	}
	result.Elapsed = time.Since(start)
	_ = bar.Finish()
	return result, nil
}
