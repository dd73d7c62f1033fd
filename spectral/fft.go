package spectral

import (
	"math"
	"math/bits"
	"math/cmplx"
)

// NextPow2 returns the smallest power of two >= n. NextPow2(0) is 1.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Transform returns the DFT of values zero-padded to NextPow2(len(values))
// points. The result has that padded length.
func Transform(values []float64) []complex128 {
	n := NextPow2(len(values))

	out := make([]complex128, n)
	for i, v := range values {
		out[i] = complex(v, 0)
	}
	scratch := make([]complex128, n)
	copy(scratch, out)

	butterfly(out, scratch, n, 1)
	return out
}

// butterfly computes one decimation level. The sub-transforms of stride
// 2*step are first written into scratch (the roles of the two buffers swap
// on every level), then combined into out with the twiddle factor
// exp(-i*pi*k/n) for even k = 0, 2*step, 4*step, ...
func butterfly(out, scratch []complex128, n, step int) {
	if step >= n {
		return
	}

	butterfly(scratch, out, n, step*2)
	butterfly(scratch[step:], out[step:], n, step*2)

	for k := 0; k < n; k += 2 * step {
		t := cmplx.Exp(complex(0, -math.Pi*float64(k)/float64(n))) * scratch[k+step]
		out[k/2] = scratch[k] + t
		out[(k+n)/2] = scratch[k] - t
	}
}
