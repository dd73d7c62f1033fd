// Package kernel implements the covariance functions used as Gaussian
// Process priors.
//
// A [Kernel] is a closed variant over three forms selected by [Kind]:
//
//	RBF:             s^2 * exp(-(x-x')^2 / (2*l^2))
//	Periodic:        s^2 * exp(-2*sin^2(pi*|x-x'|/p) / l^2)
//	LocallyPeriodic: Periodic(x, x') * exp(-(x-x')^2 / (2*l^2))
//
// where l is the length scale, s the signal standard deviation and p the
// period. Parameters are not validated; non-positive values give degenerate
// but well-defined results.
package kernel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-oddity/linalg"
)

var ErrUnknownKind = errors.New("kernel: unknown kernel kind")

// Kind selects the kernel form.
type Kind int

const (
	RBF Kind = iota
	Periodic
	LocallyPeriodic
)

func (k Kind) String() string {
	switch k {
	case RBF:
		return "rbf"
	case Periodic:
		return "periodic"
	case LocallyPeriodic:
		return "locally_periodic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a kernel name to its Kind. Matching is case-insensitive
// and accepts "locally periodic" and "locally-periodic" as spellings of
// "locally_periodic".
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rbf":
		return RBF, nil
	case "periodic":
		return Periodic, nil
	case "locally_periodic", "locally periodic", "locally-periodic":
		return LocallyPeriodic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// Kernel is an immutable covariance function value.
type Kernel struct {
	Kind           Kind
	LengthScale    float64
	SignalVariance float64 // s; the kernel is scaled by s^2
	Period         float64 // ignored by RBF
}

// NewRBF returns a squared-exponential kernel.
func NewRBF(lengthScale, signalVariance float64) Kernel {
	return Kernel{Kind: RBF, LengthScale: lengthScale, SignalVariance: signalVariance}
}

// NewPeriodic returns an exp-sine-squared kernel.
func NewPeriodic(lengthScale, signalVariance, period float64) Kernel {
	return Kernel{Kind: Periodic, LengthScale: lengthScale, SignalVariance: signalVariance, Period: period}
}

// NewLocallyPeriodic returns the product of a periodic and an RBF kernel
// sharing one length scale.
func NewLocallyPeriodic(lengthScale, signalVariance, period float64) Kernel {
	return Kernel{Kind: LocallyPeriodic, LengthScale: lengthScale, SignalVariance: signalVariance, Period: period}
}

// Evaluate returns the covariance between x and xPrime.
func (k Kernel) Evaluate(x, xPrime float64) float64 {
	switch k.Kind {
	case Periodic:
		return k.periodic(x, xPrime)
	case LocallyPeriodic:
		return k.periodic(x, xPrime) * k.decay(x, xPrime)
	default:
		return k.SignalVariance * k.SignalVariance * k.decay(x, xPrime)
	}
}

// decay is the unscaled squared-exponential term.
func (k Kernel) decay(x, xPrime float64) float64 {
	d := x - xPrime
	return math.Exp(-(d * d) / (2 * k.LengthScale * k.LengthScale))
}

func (k Kernel) periodic(x, xPrime float64) float64 {
	s := math.Sin(math.Pi * math.Abs(x-xPrime) / k.Period)
	return k.SignalVariance * k.SignalVariance * math.Exp(-2*s*s/(k.LengthScale*k.LengthScale))
}

// Gram evaluates the kernel over the Cartesian product of xs and xPrimes.
// Element (i, j) of the len(xs) x len(xPrimes) result is
// Evaluate(xs[i], xPrimes[j]). Both inputs must be non-empty.
func (k Kernel) Gram(xs, xPrimes []float64) (*linalg.Matrix, error) {
	data := make([]float64, 0, len(xs)*len(xPrimes))
	for _, x := range xs {
		for _, xp := range xPrimes {
			data = append(data, k.Evaluate(x, xp))
		}
	}
	return linalg.NewMatrix(len(xs), len(xPrimes), data)
}

func (k Kernel) String() string {
	if k.Kind == RBF {
		return fmt.Sprintf("%s(l=%g, sigma=%g)", k.Kind, k.LengthScale, k.SignalVariance)
	}
	return fmt.Sprintf("%s(l=%g, sigma=%g, p=%g)", k.Kind, k.LengthScale, k.SignalVariance, k.Period)
}
