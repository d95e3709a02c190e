package cpu

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray/internal/simd"
	"github.com/born-ml/ndarray/internal/tensor"
)

// maxOperands is the destination plus up to two sources.
const maxOperands = 3

// offsets holds one data position per operand, destination first.
type offsets [maxOperands]int

// layout is an operand's strides in the iteration frame.
type layout struct {
	offset  int
	strides tensor.Coordinates
}

// layoutOf aligns s to rank axes. Axes where s has extent 1 get stride 0, so
// the operand re-reads the same element while the iteration advances.
func layoutOf[T tensor.DType](s tensor.Strided[T], rank int) layout {
	shape, strides := s.Shape, s.Strides
	if shape.Len() > rank {
		// Extra leading axes of a subshape are all size 1.
		drop := shape.Len() - rank
		shape, _ = shape.ShiftRight(0, -drop)
		strides, _ = strides.ShiftRight(0, -drop)
	}
	s.Shape, s.Strides = shape, strides
	s = s.AlignTo(rank)
	l := layout{offset: s.Offset, strides: s.Strides}
	for i := 0; i < rank; i++ {
		if s.Shape.At(i) == 1 {
			l.strides.Set(i, 0)
		}
	}
	return l
}

// plan is the iteration schedule of one kernel call: an inner loop of n steps
// and an odometer over the remaining axes.
type plan struct {
	nops        int
	n           int
	innerStride offsets
	// flat is set when the inner loop is a merged contiguous run: every
	// operand either advances by 1 or stays put (stride 0) along it.
	flat bool

	outer   int
	extent  [tensor.MaxRank]int
	strides [maxOperands][tensor.MaxRank]int
	start   offsets
	empty   bool
}

// newPlan schedules a walk over shape for the given operand layouts.
//
// With flatten set, the longest trailing run of axes that all operands
// traverse contiguously (or broadcast uniformly) is merged into one inner
// loop; if it is longer than threshold it becomes the inner loop. Otherwise
// the axis with the largest extent (the boost axis) is the inner loop.
func newPlan(shape tensor.Coordinates, threshold int, flatten bool, ops ...layout) plan {
	p := plan{nops: len(ops), n: 1}
	for o, op := range ops {
		p.start[o] = op.offset
	}

	rank := shape.Len()
	var active [tensor.MaxRank]int
	na := 0
	for i := 0; i < rank; i++ {
		switch shape.At(i) {
		case 0:
			p.empty = true
			return p
		case 1:
		default:
			active[na] = i
			na++
		}
	}
	if na == 0 {
		return p
	}

	run, runAxes := 1, 0
	if flatten {
		var moving [maxOperands]bool
	scan:
		for k := na - 1; k >= 0; k-- {
			axis := active[k]
			for o, op := range ops {
				s := op.strides.At(axis)
				if runAxes == 0 {
					if s != 0 && s != 1 {
						break scan
					}
					moving[o] = s == 1
					continue
				}
				if (moving[o] && s != run) || (!moving[o] && s != 0) {
					break scan
				}
			}
			run *= shape.At(axis)
			runAxes++
		}
		if runAxes > 0 && run > threshold {
			p.flat = true
			p.n = run
			for o := range ops {
				if moving[o] {
					p.innerStride[o] = 1
				}
			}
			p.setOuter(shape, active[:na-runAxes], ops)
			return p
		}
	}

	boost := active[na-1]
	for k := na - 2; k >= 0; k-- {
		if shape.At(active[k]) > shape.At(boost) {
			boost = active[k]
		}
	}
	p.n = shape.At(boost)
	for o, op := range ops {
		p.innerStride[o] = op.strides.At(boost)
	}
	var rest [tensor.MaxRank]int
	nr := 0
	for _, axis := range active[:na] {
		if axis != boost {
			rest[nr] = axis
			nr++
		}
	}
	p.setOuter(shape, rest[:nr], ops)
	return p
}

func (p *plan) setOuter(shape tensor.Coordinates, axes []int, ops []layout) {
	p.outer = len(axes)
	for k, axis := range axes {
		p.extent[k] = shape.At(axis)
		for o, op := range ops {
			p.strides[o][k] = op.strides.At(axis)
		}
	}
}

// vectorizable reports whether the inner loop may use the batch layer.
func (p *plan) vectorizable(cfg Config) bool {
	return cfg.FastPath && p.flat && p.n > cfg.VectorThreshold
}

// walk calls body once per inner loop with the operands' starting positions.
// The odometer advances the fastest outer axis and carries into slower ones,
// rewinding each overflowing axis by stride*extent.
func (p *plan) walk(body func(off offsets)) {
	if p.empty {
		return
	}
	off := p.start
	var counter [tensor.MaxRank]int
	for {
		body(off)
		k := p.outer - 1
		for ; k >= 0; k-- {
			counter[k]++
			for o := 0; o < p.nops; o++ {
				off[o] += p.strides[o][k]
			}
			if counter[k] < p.extent[k] {
				break
			}
			counter[k] = 0
			for o := 0; o < p.nops; o++ {
				off[o] -= p.strides[o][k] * p.extent[k]
			}
		}
		if k < 0 {
			return
		}
	}
}

func (p *plan) log(op string, vector bool) {
	if v := klog.V(3); v.Enabled() {
		v.Infof("%s: inner=%d flat=%t vector=%t outer axes=%d", op, p.n, p.flat, vector, p.outer)
	}
}

// checkSource panics unless src broadcasts into dst.
func checkSource(op string, src, dst tensor.Coordinates) {
	if !tensor.IsSubshape(src, dst) {
		panic(errors.Wrapf(tensor.ErrIncompatibleBroadcast,
			"%s: source shape %s does not broadcast into destination shape %s", op, src, dst))
	}
}

// Fill sets every element addressed by dst to v.
func Fill[T tensor.DType](dst tensor.Strided[T], v T) {
	cfg := CurrentConfig()
	p := newPlan(dst.Shape, cfg.VectorThreshold, true, layoutOf(dst, dst.Rank()))
	d := dst.Data
	p.walk(func(off offsets) {
		i, ds := off[0], p.innerStride[0]
		if p.flat && ds == 1 {
			run := d[i : i+p.n]
			for k := range run {
				run[k] = v
			}
			return
		}
		for k := 0; k < p.n; k++ {
			d[i] = v
			i += ds
		}
	})
}

// Unary writes f(src) into dst, broadcasting src over dst's shape.
// vf, when not nil, must compute f lane by lane; it is used on contiguous runs.
func Unary[T, U tensor.DType](dst tensor.Strided[U], src tensor.Strided[T], f func(T) U, vf func(simd.Vec[T]) simd.Vec[U]) {
	checkSource("unary", src.Shape, dst.Shape)
	cfg := CurrentConfig()
	rank := dst.Rank()
	p := newPlan(dst.Shape, cfg.VectorThreshold, true, layoutOf(dst, rank), layoutOf(src, rank))
	vector := vf != nil && p.vectorizable(cfg)
	p.log("unary", vector)

	d, s := dst.Data, src.Data
	p.walk(func(off offsets) {
		i, j := off[0], off[1]
		ds, ss := p.innerStride[0], p.innerStride[1]
		if vector && ds == 1 {
			if ss == 0 {
				fillRun(d[i:i+p.n], f(s[j]))
			} else {
				unaryRun(d[i:i+p.n], s[j:j+p.n], vf)
			}
			return
		}
		for k := 0; k < p.n; k++ {
			d[i] = f(s[j])
			i += ds
			j += ss
		}
	})
}

// UnaryParam is Unary for functions taking one extra parameter, bound once per call.
func UnaryParam[T, U tensor.DType, P any](dst tensor.Strided[U], src tensor.Strided[T], param P,
	f func(T, P) U, vf func(simd.Vec[T], P) simd.Vec[U]) {
	g := func(x T) U { return f(x, param) }
	var vg func(simd.Vec[T]) simd.Vec[U]
	if vf != nil {
		vg = func(v simd.Vec[T]) simd.Vec[U] { return vf(v, param) }
	}
	Unary(dst, src, g, vg)
}

// Binary writes f(left, right) into dst, broadcasting both sources over dst's shape.
func Binary[T, U tensor.DType](dst tensor.Strided[U], left, right tensor.Strided[T], f func(T, T) U, vf func(a, b simd.Vec[T]) simd.Vec[U]) {
	checkSource("binary", left.Shape, dst.Shape)
	checkSource("binary", right.Shape, dst.Shape)
	cfg := CurrentConfig()
	rank := dst.Rank()
	p := newPlan(dst.Shape, cfg.VectorThreshold, true, layoutOf(dst, rank), layoutOf(left, rank), layoutOf(right, rank))
	vector := vf != nil && p.vectorizable(cfg)
	p.log("binary", vector)

	d, l, r := dst.Data, left.Data, right.Data
	p.walk(func(off offsets) {
		i, j, k := off[0], off[1], off[2]
		ds, ls, rs := p.innerStride[0], p.innerStride[1], p.innerStride[2]
		if vector && ds == 1 {
			switch {
			case ls == 0 && rs == 0:
				fillRun(d[i:i+p.n], f(l[j], r[k]))
			case rs == 0:
				binaryRunSplatRight(d[i:i+p.n], l[j:j+p.n], r[k], vf)
			case ls == 0:
				binaryRunSplatLeft(d[i:i+p.n], l[j], r[k:k+p.n], vf)
			default:
				binaryRun(d[i:i+p.n], l[j:j+p.n], r[k:k+p.n], vf)
			}
			return
		}
		for step := 0; step < p.n; step++ {
			d[i] = f(l[j], r[k])
			i += ds
			j += ls
			k += rs
		}
	})
}

func fillRun[T any](d []T, v T) {
	for i := range d {
		d[i] = v
	}
}

// The run helpers below finish with a masked tail whose padding lanes repeat
// the last valid element, so vf never sees values the scalar loop would not.

func unaryRun[T, U any](d []U, s []T, vf func(simd.Vec[T]) simd.Vec[U]) {
	n, k := len(d), 0
	for ; k+simd.Width <= n; k += simd.Width {
		simd.Store(d[k:], vf(simd.Load(s[k:])))
	}
	if rem := n - k; rem > 0 {
		simd.StoreMasked(d[k:], vf(simd.LoadMasked(s[k:], rem, s[n-1])), rem)
	}
}

func binaryRun[T, U any](d []U, l, r []T, vf func(a, b simd.Vec[T]) simd.Vec[U]) {
	n, k := len(d), 0
	for ; k+simd.Width <= n; k += simd.Width {
		simd.Store(d[k:], vf(simd.Load(l[k:]), simd.Load(r[k:])))
	}
	if rem := n - k; rem > 0 {
		lv := simd.LoadMasked(l[k:], rem, l[n-1])
		rv := simd.LoadMasked(r[k:], rem, r[n-1])
		simd.StoreMasked(d[k:], vf(lv, rv), rem)
	}
}

func binaryRunSplatRight[T, U any](d []U, l []T, r T, vf func(a, b simd.Vec[T]) simd.Vec[U]) {
	rv := simd.Splat(r)
	n, k := len(d), 0
	for ; k+simd.Width <= n; k += simd.Width {
		simd.Store(d[k:], vf(simd.Load(l[k:]), rv))
	}
	if rem := n - k; rem > 0 {
		simd.StoreMasked(d[k:], vf(simd.LoadMasked(l[k:], rem, l[n-1]), rv), rem)
	}
}

func binaryRunSplatLeft[T, U any](d []U, l T, r []T, vf func(a, b simd.Vec[T]) simd.Vec[U]) {
	lv := simd.Splat(l)
	n, k := len(d), 0
	for ; k+simd.Width <= n; k += simd.Width {
		simd.Store(d[k:], vf(lv, simd.Load(r[k:])))
	}
	if rem := n - k; rem > 0 {
		simd.StoreMasked(d[k:], vf(lv, simd.LoadMasked(r[k:], rem, r[n-1])), rem)
	}
}
