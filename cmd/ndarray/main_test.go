package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/tensor"
)

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runDemo(&buf))
	out := buf.String()
	assert.Contains(t, out, "[[[0, 6, 12],\n  [3, 9, 15]],")
	assert.Contains(t, out, "[[6, 6, 6],\n [6, 6, 6]]")
	assert.Contains(t, out, "[[6],\n [15]]")
}

func TestBench(t *testing.T) {
	left := tensor.Range[float32](0, 2*4*3).Reshape(2, 4, 3)
	right := tensor.Range[float32](0, 3*5).Reshape(3, 5)
	result, err := bench(left, right, 3)
	require.NoError(t, err)
	assert.Equal(t, 3*2*2.0*4*5*3, result.Flops)
	assert.Greater(t, int64(result.Elapsed), int64(0))
}

func TestRunBench_Validates(t *testing.T) {
	assert.Error(t, runBench(benchOptions{Size: 0, Batch: 1, Iters: 1}))
	assert.NoError(t, runBench(benchOptions{Size: 9, Batch: 2, Iters: 2, Workers: 2, Scalar: true, Seed: 1}))
}
