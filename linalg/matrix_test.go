package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-oddity/internal/testutil"
)

func mustRows(t *testing.T, rows [][]float64) *Matrix {
	t.Helper()
	m, err := FromRows(rows)
	require.NoError(t, err)
	return m
}

func TestNewMatrix(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := NewMatrix(2, 3, data)
	require.NoError(t, err)
	data[0] = 100

	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.Rows(), "row-major, input copied")

	_, err = NewMatrix(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrShape)

	_, err = NewMatrix(0, 2, nil)
	require.ErrorIs(t, err, ErrShape)

	z, err := NewMatrix(2, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0}, {0, 0}}, z.Rows())
}

func TestFromRowsRagged(t *testing.T) {
	_, err := FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, ErrShape)

	_, err = FromRows(nil)
	require.ErrorIs(t, err, ErrShape)
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, Identity(3).Rows())
}

func TestElementwise(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{4, 3}, {2, 1}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{5, 5}, {5, 5}}, sum.Rows())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-3, -1}, {1, 3}}, diff.Rows())

	assert.Equal(t, [][]float64{{2, 4}, {6, 8}}, a.Scale(2).Rows())

	_, err = a.Add(Identity(3))
	require.ErrorIs(t, err, ErrShape)
}

func TestAddDiagonal(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	got, err := a.AddDiagonal(0.5)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1.5, 2}, {3, 4.5}}, got.Rows())
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.Rows(), "receiver unchanged")

	_, err = Zeros(2, 3).AddDiagonal(1)
	require.ErrorIs(t, err, ErrShape)
}

func TestMulAndTranspose(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	at := a.T()
	r, c := at.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)

	p, err := a.Mul(at)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{14, 32}, {32, 77}}, p.Rows())

	_, err = a.Mul(a)
	require.ErrorIs(t, err, ErrShape)

	v, err := a.MulVec([]float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, v)

	_, err = a.MulVec([]float64{1})
	require.ErrorIs(t, err, ErrShape)
}

func TestInvert(t *testing.T) {
	a := mustRows(t, [][]float64{{4, 7}, {2, 6}})

	inv, err := Invert(a)
	require.NoError(t, err)
	testutil.RequireGridNearlyEqual(t, inv.Rows(), [][]float64{{0.6, -0.7}, {-0.2, 0.4}}, 1e-12)

	prod, err := a.Mul(inv)
	require.NoError(t, err)
	testutil.RequireGridNearlyEqual(t, prod.Rows(), Identity(2).Rows(), 1e-12)
}

func TestInvertRoundTrip(t *testing.T) {
	a := mustRows(t, [][]float64{
		{5, 1, 0.5, 0},
		{1, 4, 1, 0.25},
		{0.5, 1, 3, 1},
		{0, 0.25, 1, 2},
	})

	inv, err := Invert(a)
	require.NoError(t, err)
	back, err := Invert(inv)
	require.NoError(t, err)

	testutil.RequireGridNearlyEqual(t, back.Rows(), a.Rows(), 1e-10)
}

func TestInvertSingular(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
	}{
		{"zero", [][]float64{{0, 0}, {0, 0}}},
		{"rank deficient", [][]float64{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := Invert(mustRows(t, tt.rows))
			require.ErrorIs(t, err, ErrNotInvertible)
			assert.Nil(t, inv)
		})
	}
}

func TestInvertNonSquare(t *testing.T) {
	_, err := Invert(Zeros(2, 3))
	require.ErrorIs(t, err, ErrShape)
}
