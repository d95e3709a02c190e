package tensor

import (
	"github.com/pkg/errors"
)

// BroadcastType classifies how two shapes align under broadcasting.
//
// The bits read as: Left when the right shape fits into the left one, Right
// when the left shape fits into the right one, Mix when at least one side has
// to be repeated. Match sets all three, meaning the shapes agree exactly after
// right-alignment.
type BroadcastType uint8

// Broadcast relationships.
const (
	BroadcastNone     BroadcastType = 0
	BroadcastMix      BroadcastType = 1
	BroadcastLeft     BroadcastType = 2
	BroadcastLeftMix  BroadcastType = 3
	BroadcastRight    BroadcastType = 4
	BroadcastRightMix BroadcastType = 5
	BroadcastMatch    BroadcastType = 7
)

// Has reports whether all bits of flag are set in t.
func (t BroadcastType) Has(flag BroadcastType) bool {
	return t&flag == flag && flag != 0
}

// String returns the relationship name.
func (t BroadcastType) String() string {
	switch t {
	case BroadcastNone:
		return "None"
	case BroadcastMix:
		return "Mix"
	case BroadcastLeft:
		return "Left"
	case BroadcastLeftMix:
		return "LeftMix"
	case BroadcastRight:
		return "Right"
	case BroadcastRightMix:
		return "RightMix"
	case BroadcastMatch:
		return "Match"
	default:
		return "Invalid"
	}
}

// BroadcastRelationship right-aligns both shapes and classifies how they can
// be broadcast to each other.
//
// Examples:
//
//	[2, 3] vs [2, 3] -> Match
//	[2, 3] vs [3]    -> LeftMix  (right repeats along the leading axis)
//	[3]    vs [2, 3] -> RightMix
//	[2, 1] vs [1, 3] -> Mix      (both sides repeat)
//	[2, 3] vs [4, 3] -> None
func BroadcastRelationship(left, right Coordinates) BroadcastType {
	minDim := min(left.n, right.n)
	shiftL, shiftR := left.n-minDim, right.n-minDim
	result := BroadcastMatch

	for i := 0; i < shiftL; i++ {
		if left.vals[i] != 1 {
			result &= BroadcastLeftMix
			break
		}
	}
	for i := 0; i < shiftR; i++ {
		if right.vals[i] != 1 {
			result &= BroadcastRightMix
			break
		}
	}

	for i := minDim - 1; i >= 0; i-- {
		l, r := left.vals[i+shiftL], right.vals[i+shiftR]
		if l == r {
			continue
		}
		switch {
		case l == 1:
			result &= BroadcastRightMix
		case r == 1:
			result &= BroadcastLeftMix
		default:
			return BroadcastNone
		}
	}
	return result
}

// IsSubshape reports whether sub can be broadcast into shape without shape
// itself having to grow.
func IsSubshape(sub, shape Coordinates) bool {
	return BroadcastRelationship(sub, shape)&BroadcastRight != 0
}

// IsShapeMatch reports whether the two shapes are identical after
// right-alignment, ignoring leading size-1 axes.
func IsShapeMatch(a, b Coordinates) bool {
	return BroadcastRelationship(a, b) == BroadcastMatch
}

// BroadcastShape returns the shape produced by broadcasting a against b: the
// right-aligned elementwise maximum, with the longer shape's leading axes
// carried over.
//
// A Wildcard entry survives only when the other side is 1 at that position;
// the result may carry at most one Wildcard.
func BroadcastShape(a, b Coordinates) (Coordinates, error) {
	dim := max(a.n, b.n)
	shiftA, shiftB := dim-a.n, dim-b.n
	var result Coordinates
	result.n = dim
	wildcards := 0

	for i := 0; i < dim; i++ {
		var d int
		switch {
		case i < shiftA:
			d = b.vals[i]
		case i < shiftB:
			d = a.vals[i]
		default:
			x, y := a.vals[i-shiftA], b.vals[i-shiftB]
			switch {
			case x == Wildcard && y == Wildcard:
				return result, errors.Wrapf(ErrTooManyWildcards, "broadcasting %s and %s: both have a wildcard at axis %d", a, b, i)
			case x == Wildcard || y == Wildcard:
				if x != 1 && y != 1 {
					return result, errors.Wrapf(ErrIncompatibleBroadcast, "broadcasting %s and %s: wildcard against %d at axis %d", a, b, max(x, y), i)
				}
				d = Wildcard
			case x == y || y == 1:
				d = x
			case x == 1:
				d = y
			default:
				return result, errors.Wrapf(ErrIncompatibleBroadcast, "broadcasting %s and %s: %d vs %d at axis %d", a, b, x, y, i)
			}
		}
		if d == Wildcard {
			wildcards++
		}
		result.vals[i] = d
	}
	if wildcards > 1 {
		return result, errors.Wrapf(ErrTooManyWildcards, "broadcasting %s and %s", a, b)
	}
	return result, nil
}

// FindOuterShape returns the shape all given same-rank shapes broadcast to:
// every axis takes the one non-trivial extent the shapes agree on.
func FindOuterShape(shapes ...Coordinates) (Coordinates, error) {
	var result Coordinates
	if len(shapes) == 0 {
		return result, nil
	}
	result = shapes[0]
	for _, shape := range shapes[1:] {
		if shape.n != result.n {
			return result, errors.Wrapf(ErrShapeMismatch, "outer shape of %s and %s: ranks differ", result, shape)
		}
		for i := 0; i < result.n; i++ {
			d := shape.vals[i]
			if d == 1 {
				continue
			}
			if result.vals[i] == 1 {
				result.vals[i] = d
			} else if result.vals[i] != d {
				return result, errors.Wrapf(ErrIncompatibleBroadcast, "outer shape of %s and %s: axis %d", result, shape, i)
			}
		}
	}
	return result, nil
}

// RowMajorStrides returns the row-major strides of shape, with stride 0 on
// every size-1 axis.
func RowMajorStrides(shape Coordinates) Coordinates {
	var strides Coordinates
	strides.n = shape.n
	step := 1
	for i := shape.n - 1; i >= 0; i-- {
		if shape.vals[i] == 1 {
			strides.vals[i] = 0
		} else {
			strides.vals[i] = step
		}
		step *= shape.vals[i]
	}
	return strides
}

// FlatLength returns the number of elements addressed by shape.
func FlatLength(shape Coordinates) int {
	return shape.Product()
}

// ReduceInfo describes the outcome of reducing a shape over some axes.
type ReduceInfo struct {
	// KeepDimsShape is the source shape with every reduced axis set to 1.
	KeepDimsShape Coordinates
	// KeepDimsStrides are row-major strides over KeepDimsShape, 0 on reduced axes.
	// Used as destination strides they fold every reduced position into one cell.
	KeepDimsStrides Coordinates
	// ReducedShape is the shape of the result: KeepDimsShape with the reduced
	// axes dropped, unless keepDims was requested.
	ReducedShape Coordinates
	// FlatLength is the number of result elements; negative when a kept axis
	// is a Wildcard.
	FlatLength int
	// Divisor is the number of source elements folded into each result element;
	// negative when a reduced axis is a Wildcard.
	Divisor int
}

// ReduceShape validates axes against shape and computes the result layout of
// a reduction over them.
func ReduceShape(shape Coordinates, axes []int, keepDims bool) (ReduceInfo, error) {
	var info ReduceInfo
	reduce, err := AxesMask(axes, shape.n)
	if err != nil {
		return info, err
	}

	info.KeepDimsShape.n = shape.n
	info.KeepDimsStrides.n = shape.n
	info.Divisor = 1
	step := 1
	for i := shape.n - 1; i >= 0; i-- {
		d := shape.vals[i]
		if reduce[i] {
			info.Divisor *= d
			d = 1
		}
		info.KeepDimsShape.vals[i] = d
		if d != 1 {
			info.KeepDimsStrides.vals[i] = step
			step *= d
		}
	}
	for i := 0; i < shape.n; i++ {
		if reduce[i] && !keepDims {
			continue
		}
		info.ReducedShape.push(info.KeepDimsShape.vals[i])
	}
	info.FlatLength = info.KeepDimsShape.Product()
	return info, nil
}

// NormalizeAxis maps axis from [-rank, rank) onto [0, rank).
func NormalizeAxis(axis, rank int) (int, error) {
	if axis < -rank || axis >= rank {
		return 0, errors.Wrapf(ErrAxisOutOfRange, "axis %d for rank %d", axis, rank)
	}
	if axis < 0 {
		axis += rank
	}
	return axis, nil
}

// AxesMask normalizes axes for rank and marks them in a per-axis mask.
// Duplicated axes are rejected.
func AxesMask(axes []int, rank int) ([MaxRank]bool, error) {
	var mask [MaxRank]bool
	for _, axis := range axes {
		a, err := NormalizeAxis(axis, rank)
		if err != nil {
			return mask, err
		}
		if mask[a] {
			return mask, errors.Wrapf(ErrAxisOutOfRange, "axis %d given more than once", axis)
		}
		mask[a] = true
	}
	return mask, nil
}
