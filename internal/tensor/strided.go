package tensor

// Strided describes one operand of a kernel: a window into Data addressed by
// Offset + sum(index[i] * Strides[i]) for every index within Shape.
type Strided[T DType] struct {
	Data    []T
	Offset  int
	Shape   Coordinates
	Strides Coordinates
}

// AlignTo returns s left-padded with size-1, stride-0 axes up to rank.
// Ranks already at or above rank are returned unchanged.
func (s Strided[T]) AlignTo(rank int) Strided[T] {
	if s.Shape.n >= rank {
		return s
	}
	shift := rank - s.Shape.n
	s.Shape = s.Shape.padLeft(1, shift)
	s.Strides = s.Strides.padLeft(0, shift)
	return s
}

// Rank returns the number of axes.
func (s Strided[T]) Rank() int { return s.Shape.n }

// FlatLength returns the number of addressed elements.
func (s Strided[T]) FlatLength() int { return s.Shape.Product() }

// IndexOf returns the position in Data of the element at index.
func (s Strided[T]) IndexOf(index Coordinates) int {
	pos := s.Offset
	for i := 0; i < s.Shape.n; i++ {
		pos += index.vals[i] * s.Strides.vals[i]
	}
	return pos
}
