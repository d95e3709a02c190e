package array

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// MaxPrintLength is the largest flat length String renders element by element.
const MaxPrintLength = 10000

// String renders a as nested brackets, one bracket level per axis:
//
//	[[0, 1, 2],
//	 [3, 4, 5]]
//
// Arrays longer than MaxPrintLength render as a length report instead.
func (a Array[T]) String() string {
	if n := a.FlatLength(); n > MaxPrintLength {
		return "Output too long. Flat length is " + humanize.Comma(int64(n))
	}
	if a.Rank() == 0 {
		return fmt.Sprint(a.buf.Data()[a.offset])
	}
	var sb strings.Builder
	a.format(&sb, a.buf.Data(), 0, a.offset)
	return sb.String()
}

func (a Array[T]) format(sb *strings.Builder, data []T, axis, pos int) {
	rank := a.Rank()
	sb.WriteByte('[')
	for i := 0; i < a.shape.At(axis); i++ {
		if i > 0 {
			sb.WriteByte(',')
			if axis == rank-1 {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(strings.Repeat("\n", rank-1-axis))
				sb.WriteString(strings.Repeat(" ", axis+1))
			}
		}
		p := pos + i*a.strides.At(axis)
		if axis == rank-1 {
			fmt.Fprint(sb, data[p])
		} else {
			a.format(sb, data, axis+1, p)
		}
	}
	sb.WriteByte(']')
}

// Summary describes a's geometry in one line, for logs.
func (a Array[T]) Summary() string {
	return fmt.Sprintf("%s%s (%s elements, %s)", a.DType(), a.shape,
		humanize.Comma(int64(a.FlatLength())), humanize.Bytes(uint64(a.FlatLength()*a.DType().Size())))
}
