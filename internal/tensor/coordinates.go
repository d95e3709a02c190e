package tensor

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxRank is the largest number of axes an array may have.
const MaxRank = 8

// Coordinates is a fixed-capacity vector of signed integers used for shapes,
// strides and index tuples.
//
// It is a value type: the entries live inline, so copying a Coordinates copies
// its contents and never allocates.
type Coordinates struct {
	vals [MaxRank]int
	n    int
}

// NewCoordinates builds a Coordinates holding vals.
func NewCoordinates(vals ...int) (Coordinates, error) {
	var c Coordinates
	if len(vals) > MaxRank {
		return c, errors.Wrapf(ErrRankExceeded, "%d values given, capacity is %d", len(vals), MaxRank)
	}
	c.n = copy(c.vals[:], vals)
	return c, nil
}

// MustCoordinates is like NewCoordinates but panics if vals has more than MaxRank entries.
func MustCoordinates(vals ...int) Coordinates {
	c, err := NewCoordinates(vals...)
	if err != nil {
		panic(err)
	}
	return c
}

// Filled returns a Coordinates of length n with every entry set to v.
// It panics if n is negative or larger than MaxRank.
func Filled(n, v int) Coordinates {
	if n < 0 || n > MaxRank {
		panic(errors.Wrapf(ErrRankExceeded, "cannot create coordinates of length %d", n))
	}
	var c Coordinates
	c.n = n
	for i := 0; i < n; i++ {
		c.vals[i] = v
	}
	return c
}

// Len returns the number of entries.
func (c Coordinates) Len() int { return c.n }

// At returns entry i. The index is only checked in debug builds.
func (c Coordinates) At(i int) int {
	if Debug && (i < 0 || i >= c.n) {
		panic(errors.Wrapf(ErrIndexOutOfRange, "coordinates index %d, length %d", i, c.n))
	}
	return c.vals[i]
}

// Set overwrites entry i. The index is only checked in debug builds.
func (c *Coordinates) Set(i, v int) {
	if Debug && (i < 0 || i >= c.n) {
		panic(errors.Wrapf(ErrIndexOutOfRange, "coordinates index %d, length %d", i, c.n))
	}
	c.vals[i] = v
}

// Get returns entry i, wrapping i modulo Len() so that -1 is the last entry.
func (c Coordinates) Get(i int) int {
	i %= c.n
	if i < 0 {
		i += c.n
	}
	return c.vals[i]
}

// Swap exchanges entries i and j.
func (c *Coordinates) Swap(i, j int) {
	c.vals[i], c.vals[j] = c.vals[j], c.vals[i]
}

// PushBack appends v in place.
func (c *Coordinates) PushBack(v int) error {
	if c.n >= MaxRank {
		return errors.Wrapf(ErrRankExceeded, "cannot push onto full coordinates %s", c)
	}
	c.vals[c.n] = v
	c.n++
	return nil
}

// push is PushBack for callers that already bounded the length.
func (c *Coordinates) push(v int) {
	if err := c.PushBack(v); err != nil {
		panic(err)
	}
}

// Append returns c followed by other.
func (c Coordinates) Append(other Coordinates) (Coordinates, error) {
	if c.n+other.n > MaxRank {
		return c, errors.Wrapf(ErrRankExceeded, "concatenating %s and %s", c, other)
	}
	copy(c.vals[c.n:], other.vals[:other.n])
	c.n += other.n
	return c, nil
}

// AppendValue returns c followed by v.
func (c Coordinates) AppendValue(v int) (Coordinates, error) {
	err := c.PushBack(v)
	return c, err
}

// Interval returns the entries in [from, upto).
func (c Coordinates) Interval(from, upto int) (Coordinates, error) {
	var result Coordinates
	if from < 0 || from > c.n || upto < 0 || upto > c.n {
		return result, errors.Wrapf(ErrIndexOutOfRange, "interval [%d, %d) of length %d", from, upto, c.n)
	}
	if from > upto {
		return result, errors.Wrapf(ErrInvalidArgument, "interval start %d is after its end %d", from, upto)
	}
	result.n = copy(result.vals[:], c.vals[from:upto])
	return result, nil
}

// ShiftRight moves every entry shift positions to the right, filling the
// vacated leading positions with pad. A negative shift drops leading entries.
func (c Coordinates) ShiftRight(pad, shift int) (Coordinates, error) {
	var result Coordinates
	newLen := c.n + shift
	if newLen < 0 {
		return result, errors.Wrapf(ErrInvalidArgument, "shifting %s by %d leaves a negative length", c, shift)
	}
	if newLen > MaxRank {
		return result, errors.Wrapf(ErrRankExceeded, "shifting %s by %d", c, shift)
	}
	result.n = newLen
	if shift >= 0 {
		for i := 0; i < shift; i++ {
			result.vals[i] = pad
		}
		copy(result.vals[shift:], c.vals[:c.n])
	} else {
		copy(result.vals[:], c.vals[-shift:c.n])
	}
	return result, nil
}

// padLeft is ShiftRight for callers that already bounded the rank.
func (c Coordinates) padLeft(pad, shift int) Coordinates {
	result, err := c.ShiftRight(pad, shift)
	if err != nil {
		panic(err)
	}
	return result
}

// Equal reports whether both vectors have the same length and entries.
func (c Coordinates) Equal(other Coordinates) bool {
	if c.n != other.n {
		return false
	}
	for i := 0; i < c.n; i++ {
		if c.vals[i] != other.vals[i] {
			return false
		}
	}
	return true
}

// Slice returns a fresh []int with the entries.
func (c Coordinates) Slice() []int {
	out := make([]int, c.n)
	copy(out, c.vals[:c.n])
	return out
}

// Product returns the product of all entries (1 for an empty vector).
func (c Coordinates) Product() int {
	p := 1
	for i := 0; i < c.n; i++ {
		p *= c.vals[i]
	}
	return p
}

// String renders the vector as "[a, b, c]".
func (c Coordinates) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < c.n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(c.vals[i]))
	}
	sb.WriteByte(']')
	return sb.String()
}

// FindDifferences right-aligns a and b and lists, in the frame of the longer
// vector, every index where they differ plus every leading index present only
// in the longer one.
//
// After a broadcasting binary operation, FindDifferences(operandShape, resultShape)
// names the axes that must be summed over to bring a gradient back to the operand.
func FindDifferences(a, b Coordinates) Coordinates {
	var result Coordinates
	longest := max(a.n, b.n)
	aShift, bShift := longest-a.n, longest-b.n
	for i := 0; i < longest; i++ {
		if i < aShift || i < bShift || a.vals[i-aShift] != b.vals[i-bShift] {
			result.vals[result.n] = i
			result.n++
		}
	}
	return result
}
