// Package contactgraph loads social-contact networks from their
// line-oriented text description and hands the engine a ready adjacency
// matrix.
//
// Format (one graph per file, blank lines ignored):
//
//	20          ← vertex count n; vertices are indexed 0..n-1
//	49          ← number of edge lines that follow
//	0 1 5       ← directed edge 0→1 with transmission resistance 5
//	1 6 6
//	…
//
// Weights are real-valued. A missing edge means "no direct contact" and
// becomes +Inf in the adjacency matrix; the diagonal is 0.
//
// Validation is strict and happens entirely before any computation: an
// edge referencing a vertex outside [0, n), a non-numeric or NaN weight,
// or fewer edge lines than declared all fail parsing with a sentinel
// error, so the engine never runs on partially-valid data.
//
// Errors (sentinel):
//
//	– ErrEmptyInput  if the input holds no non-blank lines.
//	– ErrBadHeader   if the vertex or edge count is missing or not a
//	                 positive / non-negative integer respectively.
//	– ErrBadEdge     if an edge line does not hold exactly three fields.
//	– ErrVertexRange if an edge references a vertex outside [0, n).
//	– ErrBadWeight   if a weight is non-numeric or NaN.
//	– ErrEdgeCount   if the file ends before the declared edge count.
package contactgraph
