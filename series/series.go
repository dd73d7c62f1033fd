package series

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrLengthMismatch = errors.New("series: length mismatch")
	ErrEmptySeries    = errors.New("series: empty series")
	ErrInvalidWindow  = errors.New("series: invalid moving-average window")
)

// Series is an ordered sequence of real-valued observations.
//
// The zero value is an empty series ready for use.
type Series struct {
	values []float64
}

// New creates a series holding a copy of values.
func New(values []float64) *Series {
	v := make([]float64, len(values))
	copy(v, values)
	return &Series{values: v}
}

// Empty returns a series with no observations.
func Empty() *Series {
	return &Series{}
}

// wrap takes ownership of values without copying.
func wrap(values []float64) *Series {
	return &Series{values: values}
}

// Append adds value to the end of the series.
func (s *Series) Append(value float64) {
	s.values = append(s.values, value)
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.values)
}

// At returns the observation at position i. It panics if i is out of range,
// like a slice index.
func (s *Series) At(i int) float64 {
	return s.values[i]
}

// Values returns a copy of the observations.
func (s *Series) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Mean returns the arithmetic mean.
func (s *Series) Mean() (float64, error) {
	if len(s.values) == 0 {
		return 0, ErrEmptySeries
	}
	return stat.Mean(s.values, nil), nil
}

// StdDev returns the population standard deviation (divisor = length).
func (s *Series) StdDev() (float64, error) {
	if len(s.values) == 0 {
		return 0, ErrEmptySeries
	}
	return math.Sqrt(stat.PopVariance(s.values, nil)), nil
}

// Slice returns the observations in [start, end) as a new series. Bounds
// are clamped to the valid range; an empty range yields an empty series.
func (s *Series) Slice(start, end int) *Series {
	start = max(start, 0)
	end = min(end, len(s.values))
	if start >= end {
		return Empty()
	}
	return New(s.values[start:end])
}

// MovingAverage returns the simple moving average over window consecutive
// observations. The result has Len()-window+1 elements; element i is the
// mean of observations i through i+window-1.
func (s *Series) MovingAverage(window int) (*Series, error) {
	n := len(s.values)
	if window < 1 || window > n {
		return nil, fmt.Errorf("%w: window %d for length %d", ErrInvalidWindow, window, n)
	}

	out := make([]float64, n-window+1)
	sum := 0.0
	for i := range window {
		sum += s.values[i]
	}
	out[0] = sum / float64(window)

	for i := window; i < n; i++ {
		sum += s.values[i] - s.values[i-window]
		out[i-window+1] = sum / float64(window)
	}

	return wrap(out), nil
}

// String formats the series like a slice literal.
func (s *Series) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(']')
	return b.String()
}
