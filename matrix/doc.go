// Package matrix provides the dense numeric primitive shared by the
// contagio engine and its collaborators.
//
// Overview:
//
//   - Dense is a row-major matrix of float64 values backed by a single flat
//     slice, which keeps the Floyd–Warshall hot loops cache-friendly and
//     allocation-free.
//   - +Inf is a first-class value: it encodes "no direct contact" in
//     adjacency and distance matrices. NaN is rejected at every write.
//   - All public indexers return sentinel errors instead of panicking;
//     callers match them with errors.Is.
//
// The package deliberately exposes a single concrete type rather than a
// Matrix interface: the engine has exactly one storage variant, and a value
// type with pure functions keeps the matrices trivially copyable and
// testable.
//
// Errors (sentinel):
//
//	– ErrBadShape   if requested dimensions are not positive.
//	– ErrOutOfRange if a row or column index is outside valid bounds.
//	– ErrBadLength  if a bulk fill does not match rows*cols.
//	– ErrNaN        if a NaN value is written.
//	– ErrNonSquare  if a square matrix was required but not provided.
//	– ErrNilMatrix  if a nil *Dense is passed where a matrix is required.
package matrix
