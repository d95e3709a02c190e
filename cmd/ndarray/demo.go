package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/tensor"
)

// runDemo prints a short tour of views, broadcasting, reductions and matmul.
func runDemo(w io.Writer) error {
	section := func(title string, a fmt.Stringer) {
		fmt.Fprintln(w, titleStyle.Render(title))
		fmt.Fprintln(w, a)
		fmt.Fprintln(w)
	}

	x := tensor.Range[int64](0, 18).Reshape(3, 2, 3)
	section("range(18) as [3, 2, 3]", x)

	t := x.Transpose(0, 2)
	section(fmt.Sprintf("transpose(0, 2): a view, contiguous=%v", t.IsContiguous()), t)
	section("copy of the transpose: contiguous again", t.Copy())

	rows, err := tensor.Constant[float32](5, 2, 3)
	if err != nil {
		return err
	}
	bias, err := tensor.Constant[float32](1, 3)
	if err != nil {
		return err
	}
	section("[2, 3] of 5 plus [3] of 1", tensor.Add(rows, bias))

	m := tensor.Range[float64](1, 7).Reshape(2, 3)
	section("sum over axis 1, keepDims", tensor.ReduceSum(m, []int{1}, true))
	section("m x transpose(m)", tensor.MatMul(m, m.Transpose(0, 1)))

	err = tensor.Try(func() { tensor.Add(m, tensor.Range[float64](0, 4)) })
	if !errors.Is(err, tensor.ErrIncompatibleBroadcast) {
		return errors.Errorf("expected a broadcast error, got %v", err)
	}
	fmt.Fprintln(w, titleStyle.Render("[2, 3] plus [4]"))
	fmt.Fprintln(w, err)
	return nil
}
