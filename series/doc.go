// Package series provides the ordered numeric sequence used throughout the
// module.
//
// A [Series] is a plain sequence of float64 observations whose position is
// the implicit time step. Elementwise arithmetic pairs positions
// left-to-right and requires both operands to have the same length; a
// mismatch is reported as [ErrLengthMismatch] instead of silently
// truncating to the shorter operand. Statistics on an empty series fail
// with [ErrEmptySeries].
//
// Every operation that derives a new series (arithmetic, moving average,
// slicing) returns an independent instance; the receiver is never modified
// except through [Series.Append].
package series
