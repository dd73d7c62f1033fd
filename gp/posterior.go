package gp

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-oddity/gp/kernel"
	"github.com/cwbudde/algo-oddity/linalg"
)

// Jitter is added to the diagonal of the query covariance for numerical
// stability.
const Jitter = 1e-8

var (
	ErrNoData        = errors.New("gp: training and query coordinates must be non-empty")
	ErrTargetsLength = errors.New("gp: targets length does not match training coordinates")
)

// Posterior is the GP predictive distribution at the query coordinates.
type Posterior struct {
	Mean       []float64
	Covariance *linalg.Matrix
}

// Compute returns the posterior at xs given training coordinates xTrain,
// targets y and observation noise standard deviation sigmaY.
func Compute(xs, xTrain, y []float64, k kernel.Kernel, sigmaY float64) (*Posterior, error) {
	if len(xs) == 0 || len(xTrain) == 0 {
		return nil, ErrNoData
	}
	if len(y) != len(xTrain) {
		return nil, fmt.Errorf("%w: %d targets, %d coordinates", ErrTargetsLength, len(y), len(xTrain))
	}

	kTrain, err := k.Gram(xTrain, xTrain)
	if err != nil {
		return nil, err
	}
	kTrain, err = kTrain.AddDiagonal(sigmaY * sigmaY)
	if err != nil {
		return nil, err
	}

	kS, err := k.Gram(xTrain, xs)
	if err != nil {
		return nil, err
	}

	kSS, err := k.Gram(xs, xs)
	if err != nil {
		return nil, err
	}
	kSS, err = kSS.AddDiagonal(Jitter)
	if err != nil {
		return nil, err
	}

	kInv, err := linalg.Invert(kTrain)
	if err != nil {
		return nil, fmt.Errorf("gp: training covariance: %w", err)
	}

	// Ks^T K^-1 is shared by the mean and the covariance.
	gain, err := kS.T().Mul(kInv)
	if err != nil {
		return nil, err
	}

	mean, err := gain.MulVec(y)
	if err != nil {
		return nil, err
	}

	explained, err := gain.Mul(kS)
	if err != nil {
		return nil, err
	}
	cov, err := kSS.Sub(explained)
	if err != nil {
		return nil, err
	}

	return &Posterior{Mean: mean, Covariance: cov}, nil
}

// Variance returns the diagonal of the posterior covariance.
func (p *Posterior) Variance() []float64 {
	n, _ := p.Covariance.Dims()
	out := make([]float64, n)
	for i := range out {
		out[i] = p.Covariance.At(i, i)
	}
	return out
}

// StdDev returns the pointwise posterior standard deviation. Slightly
// negative variances caused by rounding are clamped to zero.
func (p *Posterior) StdDev() []float64 {
	v := p.Variance()
	for i, x := range v {
		v[i] = math.Sqrt(max(x, 0))
	}
	return v
}
