package threshold_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/connectome/conmat"
	"github.com/katalvlaran/connectome/threshold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matOf(t *testing.T, rows [][]float64) *conmat.Dense {
	t.Helper()
	m, err := conmat.DenseOf(rows)
	require.NoError(t, err)

	return m
}

func at(t *testing.T, m *conmat.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// TestPercentile_Reference checks the per-row percentile semantics on a
// small symmetric matrix: with p=0.5 every entry below half its row maximum
// (in either orientation) is suppressed.
func TestPercentile_Reference(t *testing.T) {
	m := matOf(t, [][]float64{
		{0, 10, 4},
		{10, 0, 6},
		{4, 6, 0},
	})
	fn, params := threshold.NewPercentile(0.5)

	out, err := fn.Apply(m, params)
	require.NoError(t, err)
	require.Equal(t, 3, out.Rows())

	// rowMax = [10, 10, 6]. (0,1): 10 ≥ 5 and 10 ≥ 5 → kept.
	assert.Equal(t, 10.0, at(t, out, 0, 1))
	// (0,2): 4 < 5 in row 0 → suppressed, and symmetrically (2,0).
	assert.True(t, math.IsNaN(at(t, out, 0, 2)))
	assert.True(t, math.IsNaN(at(t, out, 2, 0)))
	// (1,2): 6 ≥ 5 in row 1 and 6 ≥ 3 in row 2 → kept.
	assert.Equal(t, 6.0, at(t, out, 1, 2))
	// Input is never mutated.
	assert.Equal(t, 4.0, at(t, m, 0, 2))
}

// TestPercentile_SymmetricSuppression feeds an asymmetric matrix and checks
// that the OR over both orientations suppresses both (i,j) and (j,i).
func TestPercentile_SymmetricSuppression(t *testing.T) {
	// rowMax = [10, 100, 100]. (0,1)=10 passes row 0's own test, but the
	// cross entry (1,0)=40 fails row 1's (40 < 50), so both orientations
	// must be suppressed.
	m := matOf(t, [][]float64{
		{0, 10, 0},
		{40, 0, 100},
		{0, 100, 0},
	})
	fn, params := threshold.NewPercentile(0.5)

	out, err := fn.Apply(m, params)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(at(t, out, 1, 0)), "(1,0)=40 < rowMax_1·p = 50")
	assert.True(t, math.IsNaN(at(t, out, 0, 1)), "(0,1) suppressed by the cross test")
}

// TestPercentile_Monotone verifies p=0 keeps every non-NaN entry and p=1
// keeps only exact row maxima.
func TestPercentile_Monotone(t *testing.T) {
	m := matOf(t, [][]float64{
		{0, 2, 8},
		{2, 0, 8},
		{8, 8, 0},
	})
	fn, params := threshold.NewPercentile(0)

	out, err := fn.Apply(m, params)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.False(t, math.IsNaN(at(t, out, i, j)), "p=0 suppresses nothing")
		}
	}

	params[0].Value = 1
	out, err = fn.Apply(m, params)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(at(t, out, 0, 1)), "2 is not row 0's maximum")
	assert.Equal(t, 8.0, at(t, out, 0, 2), "row maxima survive p=1")
	assert.Equal(t, 8.0, at(t, out, 1, 2))
}

// TestPercentile_NaNPassthrough verifies NaN input entries stay NaN and do
// not contribute to row maxima.
func TestPercentile_NaNPassthrough(t *testing.T) {
	m := matOf(t, [][]float64{
		{0, math.NaN(), 3},
		{math.NaN(), 0, 4},
		{3, 4, 0},
	})
	fn, params := threshold.NewPercentile(0)

	out, err := fn.Apply(m, params)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(at(t, out, 0, 1)))
	assert.Equal(t, 3.0, at(t, out, 0, 2))
}

// TestPercentile_Errors covers nil matrix, non-square input, and a missing
// parameter.
func TestPercentile_Errors(t *testing.T) {
	fn, params := threshold.NewPercentile(0.5)

	_, err := fn.Apply(nil, params)
	assert.ErrorIs(t, err, conmat.ErrNilMatrix)

	rect, err := conmat.NewDense(2, 3)
	require.NoError(t, err)
	_, err = fn.Apply(rect, params)
	assert.ErrorIs(t, err, conmat.ErrShape)

	sq := matOf(t, [][]float64{{0, 1}, {1, 0}})
	_, err = fn.Apply(sq, nil)
	assert.ErrorIs(t, err, threshold.ErrParam)
}
