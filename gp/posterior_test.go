package gp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-oddity/gp/kernel"
	"github.com/cwbudde/algo-oddity/internal/testutil"
	"github.com/cwbudde/algo-oddity/linalg"
	"github.com/cwbudde/algo-oddity/series"
)

func TestComputeInterpolates(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 1, 2, 3, 4}

	post, err := Compute(x, x, y, kernel.NewRBF(1, 1), 1e-6)
	require.NoError(t, err)

	testutil.RequireSliceNearlyEqual(t, post.Mean, y, 1e-4)

	r, c := post.Covariance.Dims()
	assert.Equal(t, 5, r)
	assert.Equal(t, 5, c)
	for _, v := range post.Variance() {
		assert.Less(t, v, 1e-6, "posterior variance at observed points")
	}
}

func TestComputeCovarianceIsSymmetric(t *testing.T) {
	xTrain := []float64{0, 1, 2, 3}
	y := []float64{1, -1, 0.5, 2}
	xs := []float64{-0.5, 1.5, 2.5}

	post, err := Compute(xs, xTrain, y, kernel.NewLocallyPeriodic(1.2, 1, 3), 0.1)
	require.NoError(t, err)

	assert.Len(t, post.Mean, 3)
	rows := post.Covariance.Rows()
	for i := range rows {
		for j := range rows {
			assert.InDelta(t, rows[i][j], rows[j][i], 1e-12)
		}
		assert.GreaterOrEqual(t, rows[i][i], 0.0)
	}
}

func TestComputeRevertsToPriorFarFromData(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{5, 6, 7}

	post, err := Compute([]float64{1000}, x, y, kernel.NewRBF(1, 2), 0.1)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, post.Mean[0], 1e-12)
	assert.InDelta(t, 4.0+Jitter, post.Variance()[0], 1e-12)
	assert.InDelta(t, 2.0, post.StdDev()[0], 1e-6)
}

func TestComputeNoiseShrinksTowardsPrior(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{2, 2, 2, 2}
	k := kernel.NewRBF(1, 1)

	exact, err := Compute(x, x, y, k, 1e-3)
	require.NoError(t, err)
	noisy, err := Compute(x, x, y, k, 3)
	require.NoError(t, err)

	for i := range x {
		assert.Less(t, noisy.Mean[i], exact.Mean[i])
		assert.Greater(t, noisy.Variance()[i], exact.Variance()[i])
	}
}

func TestComputeSingularTrainingCovariance(t *testing.T) {
	x := []float64{0, 0}

	post, err := Compute(x, x, []float64{1, 1}, kernel.NewRBF(1, 1), 0)
	require.ErrorIs(t, err, linalg.ErrNotInvertible)
	assert.Nil(t, post)

	// Observation noise regularises the same problem.
	_, err = Compute(x, x, []float64{1, 1}, kernel.NewRBF(1, 1), 0.5)
	require.NoError(t, err)
}

func TestComputeInputValidation(t *testing.T) {
	k := kernel.NewRBF(1, 1)

	_, err := Compute(nil, []float64{0}, []float64{1}, k, 0.1)
	require.ErrorIs(t, err, ErrNoData)

	_, err = Compute([]float64{0}, nil, nil, k, 0.1)
	require.ErrorIs(t, err, ErrNoData)

	_, err = Compute([]float64{0}, []float64{0, 1}, []float64{1}, k, 0.1)
	require.ErrorIs(t, err, ErrTargetsLength)
}

func TestRegressorFit(t *testing.T) {
	s := series.New([]float64{0, 1, 2, 3, 4})

	post, err := DefaultRegressor().Fit(s, 1e-6)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, post.Mean, s.Values(), 1e-4)

	explicit, err := DefaultRegressor().Predict(Positions(5), Positions(5), s.Values(), 1e-6)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, explicit.Mean, post.Mean, 0)
}

func TestRegressorFitEmpty(t *testing.T) {
	_, err := DefaultRegressor().Fit(series.Empty(), 1)
	require.ErrorIs(t, err, ErrNoData)
}

func TestRegressorFitPeriodic(t *testing.T) {
	values := testutil.Seasonal(12, 1, 48)
	r := NewRegressor(kernel.NewPeriodic(1, 1, 12))

	post, err := r.Fit(series.New(values), 0.05)
	require.NoError(t, err)
	testutil.RequireFinite(t, post.Mean)

	diff, err := testutil.MaxAbsDiff(post.Mean, values)
	require.NoError(t, err)
	assert.Less(t, diff, 0.05)
}

func TestPositions(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2}, Positions(3))
	assert.Empty(t, Positions(0))
}
