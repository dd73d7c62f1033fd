// Package detector implements a two-stage Gaussian Process anomaly model.
//
// A first GP with a long length scale captures the trend of a series. Its
// posterior mean is subtracted and a second, periodic GP models what is
// left. The sum of both posterior means is the expected value of every
// observation; deviations from it (the residuals) are screened with the
// 3-sigma rule from package outlier.
package detector
