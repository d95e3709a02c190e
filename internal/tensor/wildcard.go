package tensor

import (
	"github.com/pkg/errors"
)

// Wildcard is the shape entry meaning "size inferred from the flat length".
const Wildcard = -1

// Dim is one entry of a shape that may still be unbound: either a known
// extent or the wildcard.
type Dim struct {
	size     int
	wildcard bool
}

// Known returns a Dim of the given extent.
func Known(size int) Dim { return Dim{size: size} }

// Unbound returns the wildcard Dim.
func Unbound() Dim { return Dim{wildcard: true} }

// IsWildcard reports whether d is the wildcard.
func (d Dim) IsWildcard() bool { return d.wildcard }

// Size returns the known extent, or Wildcard.
func (d Dim) Size() int {
	if d.wildcard {
		return Wildcard
	}
	return d.size
}

// WildcardShape is a shape that may carry one unbound entry. It must be
// resolved against a flat length before strides or sizes are derived from it.
type WildcardShape struct {
	dims     [MaxRank]Dim
	n        int
	wildcard int // index of the wildcard entry, or -1
}

// NewWildcardShape reads dims, treating Wildcard (-1) as the unbound entry.
// It fails on negative extents other than Wildcard, on more than one
// wildcard, and on more than MaxRank entries.
func NewWildcardShape(dims ...int) (WildcardShape, error) {
	ws := WildcardShape{wildcard: -1}
	if len(dims) > MaxRank {
		return ws, errors.Wrapf(ErrRankExceeded, "shape %v", dims)
	}
	for i, d := range dims {
		switch {
		case d == Wildcard:
			if ws.wildcard >= 0 {
				return ws, errors.Wrapf(ErrTooManyWildcards, "shape %v", dims)
			}
			ws.wildcard = i
			ws.dims[i] = Unbound()
		case d < 0:
			return ws, errors.Wrapf(ErrInvalidArgument, "shape %v: negative extent %d at axis %d", dims, d, i)
		default:
			ws.dims[i] = Known(d)
		}
	}
	ws.n = len(dims)
	return ws, nil
}

// Len returns the rank.
func (ws WildcardShape) Len() int { return ws.n }

// Dim returns entry i.
func (ws WildcardShape) Dim(i int) Dim { return ws.dims[i] }

// HasWildcard reports whether one entry is unbound.
func (ws WildcardShape) HasWildcard() bool { return ws.wildcard >= 0 }

// Resolve binds the wildcard so that the shape addresses flatLength elements.
// Without a wildcard the known product must equal flatLength; with one, the
// known product must divide it.
func (ws WildcardShape) Resolve(flatLength int) (Coordinates, error) {
	var shape Coordinates
	shape.n = ws.n
	known := 1
	for i := 0; i < ws.n; i++ {
		if i == ws.wildcard {
			continue
		}
		shape.vals[i] = ws.dims[i].size
		known *= ws.dims[i].size
	}
	if ws.wildcard < 0 {
		if known != flatLength {
			return shape, errors.Wrapf(ErrShapeMismatch, "shape %s addresses %d elements, want %d", shape, known, flatLength)
		}
		return shape, nil
	}
	if known == 0 || flatLength%known != 0 {
		return shape, errors.Wrapf(ErrShapeMismatch, "cannot infer wildcard: %d elements are not divisible by %d", flatLength, known)
	}
	shape.vals[ws.wildcard] = flatLength / known
	return shape, nil
}

// String renders the shape with -1 for the wildcard.
func (ws WildcardShape) String() string {
	var c Coordinates
	c.n = ws.n
	for i := 0; i < ws.n; i++ {
		c.vals[i] = ws.dims[i].Size()
	}
	return c.String()
}
