// Package spectral computes discrete Fourier transforms of series.
//
// [Transform] zero-pads its input to the next power of two and evaluates the
// DFT with a recursive radix-2 decimation-in-time Cooley-Tukey scheme that
// alternates between two buffers at each level. [Magnitudes] reduces the
// complex bins to |X[k]| in bin order, bin 0 being the DC component.
//
// Everything here is deterministic and allocation-bounded: the transform of
// an n-point input uses two buffers of next-power-of-two length.
package spectral
