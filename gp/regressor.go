package gp

import (
	"github.com/cwbudde/algo-oddity/gp/kernel"
	"github.com/cwbudde/algo-oddity/series"
)

// Regressor fits a GP with a fixed kernel.
type Regressor struct {
	Kernel kernel.Kernel
}

// NewRegressor creates a regressor using k.
func NewRegressor(k kernel.Kernel) *Regressor {
	return &Regressor{Kernel: k}
}

// DefaultRegressor uses an RBF kernel with unit length scale and signal.
func DefaultRegressor() *Regressor {
	return NewRegressor(kernel.NewRBF(1, 1))
}

// Predict returns the posterior at xs conditioned on (xTrain, y).
func (r *Regressor) Predict(xs, xTrain, y []float64, sigmaY float64) (*Posterior, error) {
	return Compute(xs, xTrain, y, r.Kernel, sigmaY)
}

// Fit smooths s by conditioning on every observation and querying the same
// positions. Position i of the series is used as coordinate i.
func (r *Regressor) Fit(s *series.Series, sigmaY float64) (*Posterior, error) {
	x := Positions(s.Len())
	return Compute(x, x, s.Values(), r.Kernel, sigmaY)
}

// Positions returns the coordinates 0, 1, ..., n-1.
func Positions(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
