package detector

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cwbudde/algo-oddity/gp"
	"github.com/cwbudde/algo-oddity/gp/kernel"
	"github.com/cwbudde/algo-oddity/linalg"
	"github.com/cwbudde/algo-oddity/outlier"
	"github.com/cwbudde/algo-oddity/series"
)

// ErrInvalidNoise is returned when a stage has a negative noise level.
var ErrInvalidNoise = errors.New("detector: noise standard deviation must be non-negative")

// Stage configures one GP fit.
type Stage struct {
	Kernel   kernel.Kernel
	NoiseStd float64
}

// Params holds both stages.
type Params struct {
	Trend    Stage
	Seasonal Stage
}

// DefaultParams returns a smooth RBF trend stage and a 12-sample periodic
// seasonal stage.
func DefaultParams() Params {
	return Params{
		Trend: Stage{
			Kernel:   kernel.NewRBF(10, 1),
			NoiseStd: 2.0,
		},
		Seasonal: Stage{
			Kernel:   kernel.NewPeriodic(1, 1, 12),
			NoiseStd: 0.25,
		},
	}
}

// Validate checks the noise levels of both stages.
func (p Params) Validate() error {
	if p.Trend.NoiseStd < 0 {
		return fmt.Errorf("%w: trend %g", ErrInvalidNoise, p.Trend.NoiseStd)
	}
	if p.Seasonal.NoiseStd < 0 {
		return fmt.Errorf("%w: seasonal %g", ErrInvalidNoise, p.Seasonal.NoiseStd)
	}
	return nil
}

// Detector fits the two-stage model.
type Detector struct {
	params Params
	logger *slog.Logger
}

// Option configures a Detector.
type Option func(*Detector)

// WithParams replaces the default stage parameters.
func WithParams(p Params) Option {
	return func(d *Detector) {
		d.params = p
	}
}

// WithLogger sets the logger used for fit diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Detector) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates a Detector. Without options it uses DefaultParams and logs
// nothing.
func New(opts ...Option) *Detector {
	d := &Detector{
		params: DefaultParams(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Params returns the stage parameters in use.
func (d *Detector) Params() Params {
	return d.params
}

// Model is the result of fitting a series.
type Model struct {
	Trend    *gp.Posterior
	Seasonal *gp.Posterior
	// Mean is Trend.Mean + Seasonal.Mean.
	Mean []float64
}

// Covariance returns the seasonal posterior covariance.
func (m *Model) Covariance() *linalg.Matrix {
	return m.Seasonal.Covariance
}

// Residuals returns s minus the combined posterior mean.
func (m *Model) Residuals(s *series.Series) (*series.Series, error) {
	res, err := s.Sub(series.New(m.Mean))
	if err != nil {
		return nil, fmt.Errorf("detector: residuals: %w", err)
	}
	return res, nil
}

// Fit conditions the trend GP on s and the seasonal GP on s minus the trend
// posterior mean.
func (d *Detector) Fit(s *series.Series) (*Model, error) {
	if err := d.params.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	trend, err := gp.NewRegressor(d.params.Trend.Kernel).Fit(s, d.params.Trend.NoiseStd)
	if err != nil {
		return nil, fmt.Errorf("detector: trend stage: %w", err)
	}
	d.logger.Debug("trend stage fitted",
		"kernel", d.params.Trend.Kernel.String(),
		"noise_std", d.params.Trend.NoiseStd,
		"points", s.Len(),
		"elapsed", time.Since(start))

	detrended, err := s.Sub(series.New(trend.Mean))
	if err != nil {
		return nil, fmt.Errorf("detector: detrend: %w", err)
	}

	start = time.Now()
	seasonal, err := gp.NewRegressor(d.params.Seasonal.Kernel).Fit(detrended, d.params.Seasonal.NoiseStd)
	if err != nil {
		return nil, fmt.Errorf("detector: seasonal stage: %w", err)
	}
	d.logger.Debug("seasonal stage fitted",
		"kernel", d.params.Seasonal.Kernel.String(),
		"noise_std", d.params.Seasonal.NoiseStd,
		"elapsed", time.Since(start))

	mean := make([]float64, len(trend.Mean))
	for i := range mean {
		mean[i] = trend.Mean[i] + seasonal.Mean[i]
	}

	return &Model{Trend: trend, Seasonal: seasonal, Mean: mean}, nil
}

// Report bundles a fitted model with the residual outliers it exposes.
type Report struct {
	Model     *Model
	Residuals *series.Series
	Outliers  []outlier.Outlier
}

// Detect fits s and runs the 3-sigma test on the residuals. Outlier values
// are the original observations, not the residuals.
func (d *Detector) Detect(s *series.Series) (*Report, error) {
	model, err := d.Fit(s)
	if err != nil {
		return nil, err
	}

	residuals, err := model.Residuals(s)
	if err != nil {
		return nil, err
	}

	found, err := outlier.Detect(residuals)
	if err != nil {
		return nil, fmt.Errorf("detector: %w", err)
	}
	for i := range found {
		found[i].Value = s.At(found[i].Index)
	}

	d.logger.Debug("residual screening done", "outliers", len(found))

	return &Report{Model: model, Residuals: residuals, Outliers: found}, nil
}
