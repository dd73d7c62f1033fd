package decompose

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cwbudde/algo-oddity/series"
	"github.com/cwbudde/algo-oddity/spectral"
)

// Period selects how the seasonal period is determined. The zero value is
// Auto.
type Period struct {
	n        int
	explicit bool
}

// Auto requests FFT-based period estimation.
func Auto() Period { return Period{} }

// Explicit fixes the period to n samples.
func Explicit(n int) Period { return Period{n: n, explicit: true} }

// Value returns the explicit period and true, or 0 and false for Auto.
func (p Period) Value() (int, bool) {
	return p.n, p.explicit
}

// IsAuto reports whether the period is to be estimated.
func (p Period) IsAuto() bool { return !p.explicit }

func (p Period) String() string {
	if !p.explicit {
		return "auto"
	}
	return strconv.Itoa(p.n)
}

// EstimatePeriod returns round(|X[0]| / n) where X is the zero-padded DFT of
// detrended and n its unpadded length. Results below 1 are rejected with
// ErrInvalidPeriod.
func EstimatePeriod(detrended *series.Series) (int, error) {
	n := detrended.Len()
	if n == 0 {
		return 0, fmt.Errorf("%w: empty detrended series", ErrInvalidPeriod)
	}

	mags := spectral.Magnitudes(detrended)
	p := int(math.Round(mags.At(0) / float64(n)))
	if p < 1 {
		return 0, fmt.Errorf("%w: estimated period %d", ErrInvalidPeriod, p)
	}
	return p, nil
}

func resolvePeriod(p Period, detrended *series.Series) (int, error) {
	period, explicit := p.Value()
	if !explicit {
		var err error
		period, err = EstimatePeriod(detrended)
		if err != nil {
			return 0, err
		}
	}
	if err := checkPeriod(period, detrended.Len()); err != nil {
		return 0, err
	}
	return period, nil
}

func checkPeriod(period, n int) error {
	if period < 1 {
		return fmt.Errorf("%w: period %d", ErrInvalidPeriod, period)
	}
	if period > n {
		return fmt.Errorf("%w: period %d exceeds detrended length %d", ErrInvalidPeriod, period, n)
	}
	return nil
}
