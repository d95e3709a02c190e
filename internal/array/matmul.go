package array

import (
	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/tensor"
)

// MatMulOptions configures MatMulInto.
type MatMulOptions struct {
	// LeftProductAxis is the axis of the left operand summed over; negative
	// values count from the end.
	LeftProductAxis int
	// RightProductAxis is the axis of the right operand summed over.
	RightProductAxis int
	// Zero clears the destination before accumulating into it.
	Zero bool
}

// DefaultMatMulOptions contracts the last axis of the left operand with the
// second-to-last axis of the right one, overwriting the destination.
func DefaultMatMulOptions() MatMulOptions {
	return MatMulOptions{LeftProductAxis: -1, RightProductAxis: -2, Zero: true}
}

func planProduct(a, b tensor.Coordinates, leftProductAxis, rightProductAxis int) cpu.Product {
	prod, err := cpu.PlanProduct(a, b, leftProductAxis, rightProductAxis)
	if err != nil {
		panic(errors.WithMessage(err, "matmul"))
	}
	return prod
}

// MatMul returns the batched matrix product of a and b, contracting the last
// axis of a with the second-to-last axis of b. Leading axes broadcast.
func MatMul[T tensor.Numeric](a, b Array[T]) Array[T] {
	return MatMulAxes(a, b, -1, -2)
}

// MatMulAxes is MatMul contracting a along leftProductAxis and b along
// rightProductAxis. In the result, rightProductAxis takes a's extent there
// and leftProductAxis takes b's extent there.
func MatMulAxes[T tensor.Numeric](a, b Array[T], leftProductAxis, rightProductAxis int) Array[T] {
	prod := planProduct(a.shape, b.shape, leftProductAxis, rightProductAxis)
	result := newArray[T](prod.Shape)
	cpu.MatMul(result.strided(), a.strided(), b.strided(), prod, false)
	return result
}

// MatMulInto writes the product of a and b into dst. dst may be smaller than
// the product: its shape must broadcast into the product's shape, and the
// products along every axis dst lacks are summed into it. Without opts.Zero
// the products are added to dst's current contents.
func MatMulInto[T tensor.Numeric](dst, a, b Array[T], opts MatMulOptions) {
	prod := planProduct(a.shape, b.shape, opts.LeftProductAxis, opts.RightProductAxis)
	if !tensor.IsSubshape(dst.shape, prod.Shape) {
		usage(tensor.ErrIncompatibleBroadcast, "matmul: destination %s does not broadcast into the product %s", dst.shape, prod.Shape)
	}
	cpu.MatMul(dst.strided(), a.strided(), b.strided(), prod, opts.Zero)
}
