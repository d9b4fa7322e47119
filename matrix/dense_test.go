package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/modregex/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_Validation(t *testing.T) {
	t.Parallel()
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		m, err := matrix.NewDense(dims[0], dims[1], 0.0)
		require.Nil(t, m)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
	m, err := matrix.NewDense(2, 3, "x")
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "x", v)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewSquare(3, 0)
	require.NoError(t, err)

	require.NoError(t, m.Set(2, 1, 7))
	v, err := m.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 7, m.Cell(2, 1))

	_, err = m.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.NotErrorIs(t, err, matrix.ErrInvalidDimensions)
	assert.Contains(t, err.Error(), "Dense.At(3,0)")

	err = m.Set(0, -1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Contains(t, err.Error(), "Dense.Set(0,-1)")
}

func TestDense_CloneFillClear(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewSquare(3, 1)
	require.NoError(t, err)
	c := m.Clone()
	m.Fill(5)
	assert.Equal(t, 1, c.Cell(0, 0), "clone must not share storage")

	require.NoError(t, m.ClearCross(1, 0))
	assert.Equal(t, "[5, 0, 5]\n[0, 0, 0]\n[5, 0, 5]\n", m.String())
	require.ErrorIs(t, m.ClearCross(3, 0), matrix.ErrOutOfRange)
}

func TestValidators(t *testing.T) {
	t.Parallel()
	var nilM *matrix.Dense[int]
	require.ErrorIs(t, matrix.ValidateNotNil(nilM), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquare(nilM), matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3, 0)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)

	sq, err := matrix.NewSquare(2, 0)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateMask(sq, []bool{true, true}))
	require.ErrorIs(t, matrix.ValidateMask(sq, []bool{true}), matrix.ErrMaskLength)
}

// floyd runs a full shortest-path closure through Pivot.
func floyd(t *testing.T, m *matrix.Dense[float64]) {
	t.Helper()
	active := make([]bool, m.Rows())
	for i := range active {
		active[i] = true
	}
	isInf := func(v float64) bool { return math.IsInf(v, 1) }
	for k := 0; k < m.Rows(); k++ {
		_, err := matrix.Pivot(m, k, active, isInf, func(_, _ int, ij, ik, kj float64) (float64, error) {
			return math.Min(ij, ik+kj), nil
		})
		require.NoError(t, err)
	}
}

func TestPivot_ShortestPaths(t *testing.T) {
	t.Parallel()
	inf := math.Inf(1)
	m, err := matrix.NewSquare(4, inf)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		m.SetCell(i, i, 0)
	}
	// 0→1 (1), 1→2 (2), 2→3 (3), 0→3 (10)
	m.SetCell(0, 1, 1)
	m.SetCell(1, 2, 2)
	m.SetCell(2, 3, 3)
	m.SetCell(0, 3, 10)

	floyd(t, m)
	assert.Equal(t, 6.0, m.Cell(0, 3))
	assert.Equal(t, 3.0, m.Cell(0, 2))
	assert.True(t, math.IsInf(m.Cell(3, 0), 1))
}

func TestPivot_MaskAndCounts(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewSquare(3, 1)
	require.NoError(t, err)
	never := func(int) bool { return false }

	var seen [][2]int
	n, err := matrix.Pivot(m, 1, []bool{true, true, false}, never, func(i, j, ij, _, _ int) (int, error) {
		seen = append(seen, [2]int{i, j})
		return ij + 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, [][2]int{{0, 0}}, seen)
	assert.Equal(t, 2, m.Cell(0, 0))
}

func TestPivot_Errors(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewSquare(2, 1)
	require.NoError(t, err)
	never := func(int) bool { return false }
	keep := func(_, _, ij, _, _ int) (int, error) { return ij, nil }

	_, err = matrix.Pivot(m, 2, []bool{true, true}, never, keep)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Pivot(m, 0, []bool{true}, never, keep)
	require.ErrorIs(t, err, matrix.ErrMaskLength)

	boom := errors.New("boom")
	n, err := matrix.Pivot(m, 0, []bool{true, true}, never, func(_, _, _, _, _ int) (int, error) {
		return 0, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, n)
	assert.Contains(t, err.Error(), "Pivot")
}
