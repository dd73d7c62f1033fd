package spectral

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-oddity/series"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// BinMagnitudes returns |X[k]| = sqrt(re^2 + im^2) for each bin.
func BinMagnitudes(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}

	out := make([]float64, len(bins))
	re, im, buf := getScratch(len(bins))

	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// BinPowers returns |X[k]|^2 for each bin.
func BinPowers(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}

	out := make([]float64, len(bins))
	re, im, buf := getScratch(len(bins))

	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Magnitudes transforms s and returns the magnitude of every frequency bin
// as a new series of length NextPow2(s.Len()).
func Magnitudes(s *series.Series) *series.Series {
	return series.New(BinMagnitudes(Transform(s.Values())))
}
