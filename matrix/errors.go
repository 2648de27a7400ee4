package matrix

import "errors"

// Sentinel errors for matrix construction and access. Every message is
// prefixed with "matrix:" so call sites can wrap with fmt.Errorf("op: %w", …)
// and tests can still match via errors.Is.
var (
	// ErrBadShape is returned when requested dimensions are not positive.
	ErrBadShape = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set/Row) return this; they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadLength indicates a bulk Fill whose data length differs from
	// rows*cols.
	ErrBadLength = errors.New("matrix: fill length mismatch")

	// ErrNaN indicates an attempt to store a NaN value. +Inf is legal
	// (it encodes "no path"); NaN never is.
	ErrNaN = errors.New("matrix: NaN value rejected")

	// ErrNonSquare signals that a square matrix was required but the input
	// was rectangular.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
