package oddity

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-oddity/decompose"
	"github.com/cwbudde/algo-oddity/gp"
	"github.com/cwbudde/algo-oddity/gp/kernel"
	"github.com/cwbudde/algo-oddity/outlier"
	"github.com/cwbudde/algo-oddity/series"
)

var (
	// ErrUnknownKernel matches kernel.ErrUnknownKind.
	ErrUnknownKernel = kernel.ErrUnknownKind
	ErrInvalidNoise  = errors.New("oddity: noise standard deviation must be non-negative")
)

// Series is the ordered sequence consumed by every call in this package.
type Series = series.Series

// Outlier is one flagged observation.
type Outlier = outlier.Outlier

// ConstructSeries copies values into a new Series.
func ConstructSeries(values []float64) *Series {
	return series.New(values)
}

// Options configures Decompose. A nil Period requests automatic estimation.
type Options struct {
	Period *int
}

// Decompose returns the detrended series, its seasonal component and the
// residual, all of the same length.
func Decompose(s *Series, opts Options) (detrended, seasonal, residual *Series, err error) {
	period := decompose.Auto()
	if opts.Period != nil {
		period = decompose.Explicit(*opts.Period)
	}

	res, err := decompose.Decompose(s, period)
	if err != nil {
		return nil, nil, nil, err
	}
	detrended, seasonal, residual = res.Components()
	return detrended, seasonal, residual, nil
}

// DetectOutliers returns every observation at or beyond mean ± 3σ.
func DetectOutliers(s *Series) ([]Outlier, error) {
	return outlier.Detect(s)
}

// GPROptions selects the kernel for FitGPR. Zero-valued fields take the
// defaults of DefaultGPROptions.
type GPROptions struct {
	Kernel         string
	LengthScale    float64
	SignalVariance float64
	Period         float64
}

// DefaultGPROptions returns an RBF kernel with unit length scale and signal
// variance, and a period of 12 for the periodic forms.
func DefaultGPROptions() GPROptions {
	return GPROptions{
		Kernel:         kernel.RBF.String(),
		LengthScale:    1,
		SignalVariance: 1,
		Period:         12,
	}
}

func (o GPROptions) withDefaults() GPROptions {
	def := DefaultGPROptions()
	if o.Kernel == "" {
		o.Kernel = def.Kernel
	}
	if o.LengthScale == 0 {
		o.LengthScale = def.LengthScale
	}
	if o.SignalVariance == 0 {
		o.SignalVariance = def.SignalVariance
	}
	if o.Period == 0 {
		o.Period = def.Period
	}
	return o
}

// ResolveKernel resolves the options into a covariance function.
func (o GPROptions) ResolveKernel() (kernel.Kernel, error) {
	o = o.withDefaults()
	kind, err := kernel.ParseKind(o.Kernel)
	if err != nil {
		return kernel.Kernel{}, err
	}
	return kernel.Kernel{
		Kind:           kind,
		LengthScale:    o.LengthScale,
		SignalVariance: o.SignalVariance,
		Period:         o.Period,
	}, nil
}

// FitGPR conditions a GP on s using positions 0..n-1 as coordinates and
// returns the posterior mean and covariance at the same positions.
func FitGPR(s *Series, noiseStd float64, opts GPROptions) (mean []float64, cov [][]float64, err error) {
	if noiseStd < 0 {
		return nil, nil, fmt.Errorf("%w: %g", ErrInvalidNoise, noiseStd)
	}

	k, err := opts.ResolveKernel()
	if err != nil {
		return nil, nil, err
	}

	post, err := gp.NewRegressor(k).Fit(s, noiseStd)
	if err != nil {
		return nil, nil, err
	}
	return post.Mean, post.Covariance.Rows(), nil
}
