// Package linalg provides the dense row-major matrix used by the Gaussian
// Process code and its inversion.
//
// Matrices are immutable after construction: every operation returns a new
// [Matrix]. Storage and arithmetic are delegated to gonum's mat.Dense.
// [Invert] reports singular or numerically ill-conditioned input as
// [ErrNotInvertible] rather than returning an unusable result.
package linalg
