package testutil

import (
	"math"
	"math/rand"
)

// Seasonal generates amplitude*sin(2*pi*i/period) over length samples.
func Seasonal(period, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi / period
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Linear generates intercept + slope*i over length samples.
func Linear(intercept, slope float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = intercept + slope*float64(i)
	}
	return out
}

// DeterministicNoise generates uniform noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Constant generates a constant-valued series.
func Constant(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Sum adds the given slices elementwise. The result has the length of the
// shortest input.
func Sum(parts ...[]float64) []float64 {
	if len(parts) == 0 {
		return nil
	}
	n := len(parts[0])
	for _, p := range parts[1:] {
		n = min(n, len(p))
	}
	out := make([]float64, n)
	for _, p := range parts {
		for i := range out {
			out[i] += p[i]
		}
	}
	return out
}
