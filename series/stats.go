package series

import "math"

// Summary holds descriptive statistics of a series.
type Summary struct {
	Length   int
	Mean     float64
	StdDev   float64 // population
	Variance float64 // population
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
	Range    float64 // max - min
	Skewness float64
	Kurtosis float64 // excess
}

// Describe computes a Summary in a single pass using Welford's online
// algorithm for the higher-order moments.
func (s *Series) Describe() (Summary, error) {
	n := len(s.values)
	if n == 0 {
		return Summary{}, ErrEmptySeries
	}

	var (
		mean float64
		m2   float64
		m3   float64
		m4   float64
	)

	var (
		maxVal = s.values[0]
		maxPos int
		minVal = s.values[0]
		minPos int
	)

	for i, x := range s.values {
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		if x > maxVal {
			maxVal = x
			maxPos = i
		}
		if x < minVal {
			minVal = x
			minPos = i
		}
	}

	nf := float64(n)
	variance := m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return Summary{
		Length:   n,
		Mean:     mean,
		StdDev:   math.Sqrt(variance),
		Variance: variance,
		Min:      minVal,
		MinPos:   minPos,
		Max:      maxVal,
		MaxPos:   maxPos,
		Range:    maxVal - minVal,
		Skewness: skewness,
		Kurtosis: kurtosis,
	}, nil
}
