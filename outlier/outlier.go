// Package outlier flags observations outside mean ± 3 standard deviations.
package outlier

import (
	"fmt"

	"github.com/cwbudde/algo-oddity/series"
)

// Sigmas is the half-width of the acceptance band in population standard
// deviations.
const Sigmas = 3.0

// Outlier is one flagged observation. Index refers to the input series.
type Outlier struct {
	Index int
	Value float64
}

func (o Outlier) String() string {
	return fmt.Sprintf("%d:%g", o.Index, o.Value)
}

// Bounds returns mean - 3·σ and mean + 3·σ for s.
func Bounds(s *series.Series) (lower, upper float64, err error) {
	mean, err := s.Mean()
	if err != nil {
		return 0, 0, fmt.Errorf("outlier: %w", err)
	}
	std, err := s.StdDev()
	if err != nil {
		return 0, 0, fmt.Errorf("outlier: %w", err)
	}
	return mean - Sigmas*std, mean + Sigmas*std, nil
}

// Detect returns every observation at or beyond the 3-sigma bounds, in index
// order. The bounds are inclusive, so a constant series flags every sample.
func Detect(s *series.Series) ([]Outlier, error) {
	lower, upper, err := Bounds(s)
	if err != nil {
		return nil, err
	}

	var out []Outlier
	for i, v := range s.Values() {
		if v >= upper || v <= lower {
			out = append(out, Outlier{Index: i, Value: v})
		}
	}
	return out, nil
}
