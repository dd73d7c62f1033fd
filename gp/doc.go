// Package gp implements Gaussian Process regression over one-dimensional
// inputs.
//
// [Compute] conditions a GP prior, given by a kernel.Kernel, on training
// observations and returns the posterior mean and covariance at a set of
// query coordinates:
//
//	K   = k(Xtrain, Xtrain) + sigma_y^2 * I
//	Ks  = k(Xtrain, Xs)
//	Kss = k(Xs, Xs) + Jitter * I
//	mu  = Ks^T K^-1 y
//	cov = Kss - Ks^T K^-1 Ks
//
// A singular K is reported as linalg.ErrNotInvertible; the caller decides
// whether to retry with more observation noise.
//
// [Regressor] wraps Compute for the common case of smoothing a series, using
// the observation positions 0, 1, 2, ... as coordinates.
package gp
