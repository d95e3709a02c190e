package tensor

import "github.com/pkg/errors"

// Sentinel errors for shape, axis and buffer misuse.
//
// Every usage error raised by the engine wraps one of these, so callers can
// match them with errors.Is after recovering the panic (see array.Try).
var (
	// ErrShapeMismatch reports shapes whose flat lengths or ranks do not agree.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrIncompatibleBroadcast reports two shapes that cannot be broadcast together.
	ErrIncompatibleBroadcast = errors.New("tensor: incompatible broadcast")

	// ErrAxisOutOfRange reports an axis outside [-rank, rank), or a duplicated axis.
	ErrAxisOutOfRange = errors.New("tensor: axis out of range")

	// ErrTooManyWildcards reports a shape with more than one wildcard (-1) entry.
	ErrTooManyWildcards = errors.New("tensor: more than one wildcard dimension")

	// ErrNotContiguous reports a row-major reinterpretation of a non-contiguous view.
	ErrNotContiguous = errors.New("tensor: array is not contiguous")

	// ErrRankExceeded reports a coordinate vector that would grow past MaxRank.
	ErrRankExceeded = errors.New("tensor: rank exceeds MaxRank")

	// ErrIndexOutOfRange reports an index outside the addressed extent.
	ErrIndexOutOfRange = errors.New("tensor: index out of range")

	// ErrOverRelease reports a buffer released more times than it was retained.
	ErrOverRelease = errors.New("tensor: buffer released too many times")

	// ErrInvalidArgument reports any other malformed argument (negative sizes, bad bounds).
	ErrInvalidArgument = errors.New("tensor: invalid argument")
)
