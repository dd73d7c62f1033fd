// Package oddity is the entry point for time-series analysis with the
// algo-oddity module.
//
// It exposes four call shapes over plain Go values: building a series,
// decomposing it into detrended/seasonal/residual components, flagging
// 3-sigma outliers, and smoothing it with Gaussian Process regression.
// Callers that need more control use the underlying packages directly:
//
//	series     ordered observations and elementwise arithmetic
//	linalg     dense matrices and inversion
//	gp/kernel  RBF, periodic and locally periodic covariance functions
//	gp         posterior inference
//	spectral   zero-padded radix-2 FFT
//	decompose  moving-average decomposition with period estimation
//	outlier    3-sigma screening
//	detector   two-stage GP anomaly model
package oddity
