package array

import (
	"github.com/x448/float16"

	"github.com/born-ml/ndarray/internal/tensor"
)

// FromFloat16 widens half-precision values into an array of T.
func FromFloat16[T tensor.Float](data []float16.Float16, shape ...int) (Array[T], error) {
	values := make([]T, len(data))
	for i, h := range data {
		values[i] = T(h.Float32())
	}
	return FromSlice(values, shape...)
}

// ToFloat16 narrows the elements of a to half precision, in row-major order.
// Values outside the half-precision range become infinities.
func ToFloat16[T tensor.Float](a Array[T]) []float16.Float16 {
	values := a.ToSlice()
	out := make([]float16.Float16, len(values))
	for i, x := range values {
		out[i] = float16.Fromfloat32(float32(x))
	}
	return out
}
