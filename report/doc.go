// Package report formats analysis results for people: fixed-width matrix
// tables, transmission-route lines, per-pass execution traces and Graphviz
// renderings of the contact network with the minimal-resistance route
// highlighted.
//
// Everything here is presentation; the package never mutates a Result and
// imposes no policy on where the output goes. Tables use a fixed-width
// plain-text layout (∞ marks "no path", ø marks "no hop") so they are
// stable under tests and diff-friendly in trace files. Graph drawings are
// emitted as DOT and rendered through Graphviz.
package report
