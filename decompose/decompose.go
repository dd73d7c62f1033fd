package decompose

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-oddity/series"
)

var (
	// ErrInvalidWindow is returned when the trend window is below 1 or
	// longer than the series. It matches series.ErrInvalidWindow.
	ErrInvalidWindow = series.ErrInvalidWindow
	// ErrInvalidPeriod is returned for a period below 1 or one with no
	// complete cycle in the detrended series.
	ErrInvalidPeriod = errors.New("decompose: invalid period")
)

// Result holds the components of one decomposition. Detrended, Seasonal and
// Residual share the same length, Detrended == Seasonal + Residual.
type Result struct {
	Detrended *series.Series
	Seasonal  *series.Series
	Residual  *series.Series
	Trend     *series.Series
	Period    int
	Window    int
}

// Components returns the detrended, seasonal and residual series in that
// order.
func (r *Result) Components() (detrended, seasonal, residual *series.Series) {
	return r.Detrended, r.Seasonal, r.Residual
}

// Decompose removes a moving-average trend from s, extracts the seasonal
// profile of the given period and returns what is left as the residual.
func Decompose(s *series.Series, period Period, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts...)
	window := cfg.Window(s.Len())

	trend, err := s.MovingAverage(window)
	if err != nil {
		return nil, fmt.Errorf("decompose: trend: %w", err)
	}

	detrended, err := s.Slice(0, trend.Len()).Sub(trend)
	if err != nil {
		return nil, fmt.Errorf("decompose: detrend: %w", err)
	}

	p, err := resolvePeriod(period, detrended)
	if err != nil {
		return nil, err
	}

	profile, err := SeasonalProfile(detrended, p)
	if err != nil {
		return nil, err
	}
	seasonal := Tile(profile, detrended.Len())

	residual, err := detrended.Sub(seasonal)
	if err != nil {
		return nil, fmt.Errorf("decompose: residual: %w", err)
	}

	return &Result{
		Detrended: detrended,
		Seasonal:  seasonal,
		Residual:  residual,
		Trend:     trend,
		Period:    p,
		Window:    window,
	}, nil
}

// SeasonalProfile averages detrended over consecutive non-overlapping
// chunks of length period. An incomplete trailing chunk is ignored.
func SeasonalProfile(detrended *series.Series, period int) (*series.Series, error) {
	n := detrended.Len()
	if err := checkPeriod(period, n); err != nil {
		return nil, err
	}

	values := detrended.Values()
	chunks := n / period
	profile := make([]float64, period)
	for c := range chunks {
		chunk := values[c*period : (c+1)*period]
		for j, v := range chunk {
			profile[j] += v
		}
	}
	for j := range profile {
		profile[j] /= float64(chunks)
	}
	return series.New(profile), nil
}

// Tile repeats profile end to end until it covers n samples. The last copy
// is truncated as needed. An empty profile yields an empty series.
func Tile(profile *series.Series, n int) *series.Series {
	p := profile.Len()
	if p == 0 || n <= 0 {
		return series.Empty()
	}

	src := profile.Values()
	out := make([]float64, n)
	for i := 0; i < n; i += p {
		copy(out[i:], src)
	}
	return series.New(out)
}
