package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-oddity/internal/testutil"
)

func TestNewCopiesInput(t *testing.T) {
	values := []float64{1, 2, 3}
	s := New(values)
	values[0] = 100

	assert.Equal(t, 3, s.Len())
	assert.InDelta(t, 1.0, s.At(0), 0)

	out := s.Values()
	out[1] = 100
	assert.InDelta(t, 2.0, s.At(1), 0, "Values must return a copy")
}

func TestEmptyAndAppend(t *testing.T) {
	s := Empty()
	require.Equal(t, 0, s.Len())

	s.Append(1.5)
	s.Append(-2)
	assert.Equal(t, []float64{1.5, -2}, s.Values())

	var zero Series
	zero.Append(3)
	assert.Equal(t, 1, zero.Len())
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.values).Mean()
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestStdDevIsPopulation(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	got, err := s.StdDev()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-12)
}

func TestStatisticsOnEmptySeries(t *testing.T) {
	_, err := Empty().Mean()
	require.ErrorIs(t, err, ErrEmptySeries)

	_, err = Empty().StdDev()
	require.ErrorIs(t, err, ErrEmptySeries)

	_, err = Empty().Describe()
	require.ErrorIs(t, err, ErrEmptySeries)
}

func TestArithmetic(t *testing.T) {
	a := New([]float64{1, 2, 3, 4})
	b := New([]float64{4, 3, 2, 1})

	tests := []struct {
		name string
		op   func(*Series, *Series) (*Series, error)
		want []float64
	}{
		{"add", (*Series).Add, []float64{5, 5, 5, 5}},
		{"sub", (*Series).Sub, []float64{-3, -1, 1, 3}},
		{"mul", (*Series).Mul, []float64{4, 6, 6, 4}},
		{"div", (*Series).Div, []float64{0.25, 2.0 / 3.0, 1.5, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(a, b)
			require.NoError(t, err)
			testutil.RequireSliceNearlyEqual(t, got.Values(), tt.want, 1e-15)
			assert.Equal(t, []float64{1, 2, 3, 4}, a.Values(), "operand must not change")
		})
	}
}

func TestArithmeticLengthMismatch(t *testing.T) {
	a := New([]float64{1, 2, 3})
	b := New([]float64{1, 2})

	ops := map[string]func(*Series, *Series) (*Series, error){
		"add": (*Series).Add,
		"sub": (*Series).Sub,
		"mul": (*Series).Mul,
		"div": (*Series).Div,
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			got, err := op(a, b)
			require.ErrorIs(t, err, ErrLengthMismatch)
			assert.Nil(t, got)
		})
	}
}

func TestArithmeticOnEmpty(t *testing.T) {
	got, err := Empty().Sub(Empty())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestDivByZeroFollowsIEEE(t *testing.T) {
	got, err := New([]float64{1, 0}).Div(New([]float64{0, 0}))
	require.NoError(t, err)
	assert.True(t, math.IsInf(got.At(0), 1))
	assert.True(t, math.IsNaN(got.At(1)))
}

func TestMovingAverage(t *testing.T) {
	ma, err := New([]float64{1, 2, 3, 4, 5}).MovingAverage(3)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, ma.Values(), []float64{2, 3, 4}, 1e-12)

	full, err := New([]float64{1, 2, 3}).MovingAverage(3)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, full.Values(), []float64{2}, 1e-12)

	one, err := New([]float64{1, 2, 3}).MovingAverage(1)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, one.Values(), []float64{1, 2, 3}, 0)
}

func TestMovingAverageInvalidWindow(t *testing.T) {
	s := New([]float64{1, 2, 3})

	for _, w := range []int{0, -1, 4} {
		_, err := s.MovingAverage(w)
		require.ErrorIs(t, err, ErrInvalidWindow, "window %d", w)
	}
}

func TestSlice(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})

	assert.Equal(t, []float64{2, 3, 4}, s.Slice(1, 4).Values())
	assert.Equal(t, []float64{1, 2}, s.Slice(-3, 2).Values())
	assert.Equal(t, []float64{4, 5}, s.Slice(3, 99).Values())
	assert.Equal(t, 0, s.Slice(4, 2).Len())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1 2.5 -3]", New([]float64{1, 2.5, -3}).String())
	assert.Equal(t, "[]", Empty().String())
}

func TestDescribe(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	sum, err := s.Describe()
	require.NoError(t, err)

	assert.Equal(t, 8, sum.Length)
	assert.InDelta(t, 5.0, sum.Mean, 1e-12)
	assert.InDelta(t, 4.0, sum.Variance, 1e-12)
	assert.InDelta(t, 2.0, sum.StdDev, 1e-12)
	assert.InDelta(t, 2.0, sum.Min, 0)
	assert.Equal(t, 0, sum.MinPos)
	assert.InDelta(t, 9.0, sum.Max, 0)
	assert.Equal(t, 7, sum.MaxPos)
	assert.InDelta(t, 7.0, sum.Range, 0)
	assert.Greater(t, sum.Skewness, 0.0, "right-skewed data")

	std, err := s.StdDev()
	require.NoError(t, err)
	assert.InDelta(t, std, sum.StdDev, 1e-12)
}

func TestDescribeConstant(t *testing.T) {
	sum, err := New(testutil.Constant(3, 10)).Describe()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, sum.Variance, 1e-15)
	assert.InDelta(t, 0.0, sum.Skewness, 0)
	assert.InDelta(t, 0.0, sum.Kurtosis, 0)
}
