package cpu

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/simd"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Kernel identifies the inner loop used for one matrix product.
type Kernel int

const (
	// KernelStrided is the generic triple loop over arbitrary strides.
	KernelStrided Kernel = iota
	// KernelDot computes each output cell as a dot product; both operands
	// are unit-stride along the product axis.
	KernelDot
	// KernelAxpyRight accumulates scaled rows of right into rows of the
	// result; right and the result are unit-stride along the column axis.
	KernelAxpyRight
	// KernelAxpyLeft accumulates scaled columns of left into columns of the
	// result; left and the result are unit-stride along the row axis.
	KernelAxpyLeft
)

func (k Kernel) String() string {
	switch k {
	case KernelDot:
		return "dot"
	case KernelAxpyRight:
		return "axpy-right"
	case KernelAxpyLeft:
		return "axpy-left"
	default:
		return "strided"
	}
}

// Geometry is one (M x K) * (K x N) product inside a batch, as strides into
// the operands' data.
type Geometry struct {
	M, N, K int

	LeftRow, LeftProduct   int
	RightProduct, RightCol int
	DstRow, DstCol         int
}

// unit reports whether an axis can be walked as a contiguous slice.
func unit(stride, extent int) bool {
	return stride == 1 || extent == 1
}

// SelectKernel picks the inner loop for g from which strides are 1.
func SelectKernel(g Geometry) Kernel {
	dot := unit(g.LeftProduct, g.K) && unit(g.RightProduct, g.K)
	axpyRight := unit(g.RightCol, g.N) && unit(g.DstCol, g.N)
	axpyLeft := unit(g.LeftRow, g.M) && unit(g.DstRow, g.M)
	switch {
	case dot && (g.N == 1 || !axpyRight):
		return KernelDot
	case axpyRight:
		return KernelAxpyRight
	case dot:
		return KernelDot
	case axpyLeft:
		return KernelAxpyLeft
	default:
		return KernelStrided
	}
}

// Product is the validated shape algebra of one matrix multiplication.
type Product struct {
	// Shape is the result shape.
	Shape tensor.Coordinates
	// LeftProductAxis and RightProductAxis are the product axes in the
	// result frame. The left operand contracts along LeftProductAxis, the
	// right operand along RightProductAxis.
	LeftProductAxis, RightProductAxis int
}

// PlanProduct validates a matrix multiplication of shapes left and right.
//
// leftProductAxis is an axis of left and rightProductAxis an axis of right;
// negative values count from the end. After right-aligning both shapes to a
// common rank the two axes must differ and have the same extent. The result
// takes left's extent on rightProductAxis (rows) and right's extent on
// leftProductAxis (columns); every other axis broadcasts.
func PlanProduct(left, right tensor.Coordinates, leftProductAxis, rightProductAxis int) (Product, error) {
	var p Product
	lp, err := tensor.NormalizeAxis(leftProductAxis, left.Len())
	if err != nil {
		return p, errors.WithMessage(err, "left product axis")
	}
	rp, err := tensor.NormalizeAxis(rightProductAxis, right.Len())
	if err != nil {
		return p, errors.WithMessage(err, "right product axis")
	}
	rank := max(left.Len(), right.Len())
	lp += rank - left.Len()
	rp += rank - right.Len()
	if lp == rp {
		return p, errors.Wrapf(tensor.ErrAxisOutOfRange,
			"product axes of %s and %s resolve to the same axis %d", left, right, lp)
	}
	l, err := left.ShiftRight(1, rank-left.Len())
	if err != nil {
		return p, err
	}
	r, err := right.ShiftRight(1, rank-right.Len())
	if err != nil {
		return p, err
	}
	if l.At(lp) != r.At(rp) {
		return p, errors.Wrapf(tensor.ErrShapeMismatch,
			"matmul of %s and %s: product extents %d and %d differ", left, right, l.At(lp), r.At(rp))
	}

	shape := tensor.Filled(rank, 1)
	for i := 0; i < rank; i++ {
		switch i {
		case rp:
			shape.Set(i, l.At(rp))
		case lp:
			shape.Set(i, r.At(lp))
		default:
			a, b := l.At(i), r.At(i)
			switch {
			case a == b || b == 1:
				shape.Set(i, a)
			case a == 1:
				shape.Set(i, b)
			default:
				return p, errors.Wrapf(tensor.ErrIncompatibleBroadcast,
					"matmul of %s and %s: batch axis %d has extents %d and %d", left, right, i, a, b)
			}
		}
	}
	p.Shape = shape
	p.LeftProductAxis, p.RightProductAxis = lp, rp
	return p, nil
}

// MatMul accumulates the product of left and right into dst.
//
// dst must broadcast into prod.Shape; where it is smaller, the products along
// the missing axes are summed into it. With zero set dst is cleared first,
// otherwise the products are added to its current contents.
func MatMul[T tensor.Numeric](dst, left, right tensor.Strided[T], prod Product, zero bool) {
	checkSource("matmul", dst.Shape, prod.Shape)
	if zero {
		Fill(dst, 0)
	}
	rank := prod.Shape.Len()
	lp, rp := prod.LeftProductAxis, prod.RightProductAxis
	dl, ll, rl := layoutOf(dst, rank), layoutOf(left, rank), layoutOf(right, rank)
	ls := left.AlignTo(rank).Shape

	g := Geometry{
		M: ls.At(rp), K: ls.At(lp), N: prod.Shape.At(lp),
		LeftRow: ll.strides.At(rp), LeftProduct: ll.strides.At(lp),
		RightProduct: rl.strides.At(rp), RightCol: rl.strides.At(lp),
		DstRow: dl.strides.At(rp), DstCol: dl.strides.At(lp),
	}
	if g.M == 0 || g.N == 0 {
		return
	}

	cfg := CurrentConfig()
	mm := matmul[T]{
		kernel: SelectKernel(g),
		d:      dst.Data,
		l:      left.Data,
		r:      right.Data,
	}
	switch mm.kernel {
	case KernelDot:
		mm.vector = cfg.FastPath && g.K > cfg.VectorThreshold
	case KernelAxpyRight:
		mm.vector = cfg.FastPath && g.N > cfg.VectorThreshold
	case KernelAxpyLeft:
		mm.vector = cfg.FastPath && g.M > cfg.VectorThreshold
	}

	batch := prod.Shape
	batch.Set(lp, 1)
	batch.Set(rp, 1)
	p := newPlan(batch, cfg.VectorThreshold, false, dl, ll, rl)
	work := p.n * g.M * g.N * g.K
	for k := 0; k < p.outer; k++ {
		work *= p.extent[k]
	}
	split := cfg.Parallel.Enabled && work >= cfg.ParallelMinWork
	if v := klog.V(2); v.Enabled() {
		v.Infof("matmul %s: M=%d N=%d K=%d kernel=%s vector=%t parallel=%t",
			prod.Shape, g.M, g.N, g.K, mm.kernel, mm.vector, split)
	}

	p.walk(func(off offsets) {
		i, j, k := off[0], off[1], off[2]
		for step := 0; step < p.n; step++ {
			if split {
				mm.runParallel(g, i, j, k, cfg.Parallel)
			} else {
				mm.run(g, i, j, k)
			}
			i += p.innerStride[0]
			j += p.innerStride[1]
			k += p.innerStride[2]
		}
	})
}

// matmul runs one kernel over matrices inside shared operand data.
type matmul[T tensor.Numeric] struct {
	kernel  Kernel
	vector  bool
	d, l, r []T
}

// runParallel splits the longer free axis of g whose result stride is not
// zero into disjoint bands, one per worker. Each band writes only its own
// rows (or columns) of the result.
func (mm *matmul[T]) runParallel(g Geometry, do, lo, ro int, cfg parallel.Config) {
	rows := g.DstRow != 0 && (g.M >= g.N || g.DstCol == 0)
	cols := !rows && g.DstCol != 0
	switch {
	case rows:
		parallel.ForRange(g.M, func(start, end int) {
			band := g
			band.M = end - start
			mm.run(band, do+start*g.DstRow, lo+start*g.LeftRow, ro)
		}, cfg)
	case cols:
		parallel.ForRange(g.N, func(start, end int) {
			band := g
			band.N = end - start
			mm.run(band, do+start*g.DstCol, lo, ro+start*g.RightCol)
		}, cfg)
	default:
		mm.run(g, do, lo, ro)
	}
}

func (mm *matmul[T]) run(g Geometry, do, lo, ro int) {
	switch mm.kernel {
	case KernelDot:
		mm.dot(g, do, lo, ro)
	case KernelAxpyRight:
		mm.axpyRight(g, do, lo, ro)
	case KernelAxpyLeft:
		mm.axpyLeft(g, do, lo, ro)
	default:
		mm.strided(g, do, lo, ro)
	}
}

func (mm *matmul[T]) strided(g Geometry, do, lo, ro int) {
	d, l, r := mm.d, mm.l, mm.r
	for i := 0; i < g.M; i++ {
		for j := 0; j < g.N; j++ {
			var acc T
			li, rj := lo+i*g.LeftRow, ro+j*g.RightCol
			for p := 0; p < g.K; p++ {
				acc += T(l[li] * r[rj])
				li += g.LeftProduct
				rj += g.RightProduct
			}
			d[do+i*g.DstRow+j*g.DstCol] += acc
		}
	}
}

func (mm *matmul[T]) dot(g Geometry, do, lo, ro int) {
	d, l, r := mm.d, mm.l, mm.r
	for i := 0; i < g.M; i++ {
		row := l[lo+i*g.LeftRow:]
		for j := 0; j < g.N; j++ {
			col := r[ro+j*g.RightCol:]
			var acc T
			if mm.vector {
				acc = dotVector(row[:g.K], col[:g.K])
			} else {
				for p := 0; p < g.K; p++ {
					acc += T(row[p] * col[p])
				}
			}
			d[do+i*g.DstRow+j*g.DstCol] += acc
		}
	}
}

func (mm *matmul[T]) axpyRight(g Geometry, do, lo, ro int) {
	d, l, r := mm.d, mm.l, mm.r
	for i := 0; i < g.M; i++ {
		out := d[do+i*g.DstRow:]
		out = out[:g.N]
		for p := 0; p < g.K; p++ {
			a := l[lo+i*g.LeftRow+p*g.LeftProduct]
			axpy(out, a, r[ro+p*g.RightProduct:], mm.vector)
		}
	}
}

func (mm *matmul[T]) axpyLeft(g Geometry, do, lo, ro int) {
	d, l, r := mm.d, mm.l, mm.r
	for j := 0; j < g.N; j++ {
		out := d[do+j*g.DstCol:]
		out = out[:g.M]
		for p := 0; p < g.K; p++ {
			a := r[ro+p*g.RightProduct+j*g.RightCol]
			axpy(out, a, l[lo+p*g.LeftProduct:], mm.vector)
		}
	}
}

// axpy adds a*x[k] to y[k] for every k < len(y).
func axpy[T tensor.Numeric](y []T, a T, x []T, vector bool) {
	n, k := len(y), 0
	x = x[:n]
	if vector {
		av := simd.Splat(a)
		for ; k+simd.Width <= n; k += simd.Width {
			simd.Store(y[k:], simd.FMA(av, simd.Load(x[k:]), simd.Load(y[k:])))
		}
	}
	for ; k < n; k++ {
		y[k] += T(a * x[k])
	}
}

// dotVector computes the dot product of l and r with two independent
// accumulator batches.
func dotVector[T tensor.Numeric](l, r []T) T {
	var a0, a1 simd.Vec[T]
	n, k := len(l), 0
	for ; k+2*simd.Width <= n; k += 2 * simd.Width {
		a0 = simd.FMA(simd.Load(l[k:]), simd.Load(r[k:]), a0)
		a1 = simd.FMA(simd.Load(l[k+simd.Width:]), simd.Load(r[k+simd.Width:]), a1)
	}
	for ; k+simd.Width <= n; k += simd.Width {
		a0 = simd.FMA(simd.Load(l[k:]), simd.Load(r[k:]), a0)
	}
	acc := simd.ReduceAdd(simd.Add(a0, a1))
	for ; k < n; k++ {
		acc += T(l[k] * r[k])
	}
	return acc
}
