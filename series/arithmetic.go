package series

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

func (s *Series) checkLength(other *Series) error {
	if len(s.values) != len(other.values) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(s.values), len(other.values))
	}
	return nil
}

// Add returns s[i] + other[i] for every position.
func (s *Series) Add(other *Series) (*Series, error) {
	if err := s.checkLength(other); err != nil {
		return nil, err
	}
	if len(s.values) == 0 {
		return Empty(), nil
	}
	out := make([]float64, len(s.values))
	copy(out, s.values)
	vecmath.AddBlockInPlace(out, other.values)
	return wrap(out), nil
}

// Sub returns s[i] - other[i] for every position.
func (s *Series) Sub(other *Series) (*Series, error) {
	if err := s.checkLength(other); err != nil {
		return nil, err
	}
	if len(s.values) == 0 {
		return Empty(), nil
	}
	neg := make([]float64, len(other.values))
	vecmath.ScaleBlock(neg, other.values, -1)

	out := make([]float64, len(s.values))
	copy(out, s.values)
	vecmath.AddBlockInPlace(out, neg)
	return wrap(out), nil
}

// Mul returns s[i] * other[i] for every position.
func (s *Series) Mul(other *Series) (*Series, error) {
	if err := s.checkLength(other); err != nil {
		return nil, err
	}
	if len(s.values) == 0 {
		return Empty(), nil
	}
	out := make([]float64, len(s.values))
	vecmath.MulBlock(out, s.values, other.values)
	return wrap(out), nil
}

// Div returns s[i] / other[i] for every position. Division by zero follows
// IEEE-754 and yields ±Inf or NaN.
func (s *Series) Div(other *Series) (*Series, error) {
	if err := s.checkLength(other); err != nil {
		return nil, err
	}
	out := make([]float64, len(s.values))
	for i, v := range s.values {
		out[i] = v / other.values[i]
	}
	return wrap(out), nil
}
