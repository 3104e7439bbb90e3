package stats_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabstat/stats"
	"github.com/katalvlaran/tabstat/table"
)

// scenarioTable is the reference fixture [[1,10],[2,20],[3,10],[4,30]].
func scenarioTable() table.Table {
	return table.Table{
		table.NumberRow(1, 10),
		table.NumberRow(2, 20),
		table.NumberRow(3, 10),
		table.NumberRow(4, 30),
	}
}

// TestCorr_Scenario pins Pearson r for the reference fixture:
// r = 25/sqrt(5*275) = 0.67420.
func TestCorr_Scenario(t *testing.T) {
	r, err := stats.Corr([]float64{1, 2, 3, 4}, []float64{10, 20, 10, 30})
	require.NoError(t, err)
	assert.InDelta(t, 0.67420, r, 1e-5)
}

// TestCorr_PerfectAndInverse verifies the ±1 extremes.
func TestCorr_PerfectAndInverse(t *testing.T) {
	r, err := stats.Corr([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)

	r, err = stats.Corr([]float64{1, 2, 3}, []float64{6, 4, 2})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, r, 1e-12)
}

// TestCorr_InputValidation verifies the mismatch and minimum-size
// sentinels.
func TestCorr_InputValidation(t *testing.T) {
	_, err := stats.Corr([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, stats.ErrLengthMismatch)

	_, err = stats.Corr([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, stats.ErrInsufficientSample)

	_, err = stats.Corr(nil, nil)
	assert.ErrorIs(t, err, stats.ErrInsufficientSample)
}

// TestCorrMatrix_SymmetryAndDiagonal property-checks symmetry on random
// tables and a ≈1 diagonal for non-degenerate fields.
func TestCorrMatrix_SymmetryAndDiagonal(t *testing.T) {
	rng := rand.New(rand.NewSource(23))

	for trial := 0; trial < 10; trial++ {
		m := make(table.Table, 12)
		for i := range m {
			m[i] = table.NumberRow(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
		}
		fields := []table.Field{table.At(1), table.At(2), table.At(3)}

		mx, err := stats.CorrMatrix(m, fields)
		require.NoError(t, err)
		require.Len(t, mx, 3)

		for i := 0; i < 3; i++ {
			assert.InDelta(t, 1.0, mx[i][i], 1e-9)
			for j := 0; j < 3; j++ {
				assert.InDelta(t, mx[j][i], mx[i][j], 1e-12, "correlation is symmetric")
			}
		}
	}
}

// TestCorrTestSig verifies the Fisher z-transform values and the n > 3
// requirement.
func TestCorrTestSig(t *testing.T) {
	// r equal to the hypothesized p gives significance 0.
	sig, err := stats.CorrTestSig(0, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sig)

	// r=0.5, n=28: erf(atanh(0.5)*5/sqrt(2)) = erf(1.9421) = 0.99394.
	sig, err = stats.CorrTestSig(0, 0.5, 28)
	require.NoError(t, err)
	assert.InDelta(t, 0.9939, sig, 2e-3)

	// Sign follows r - p.
	sig, err = stats.CorrTestSig(0, -0.5, 28)
	require.NoError(t, err)
	assert.InDelta(t, -0.9939, sig, 2e-3)

	// A perfect correlation saturates at ±1.
	sig, err = stats.CorrTestSig(0, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1.0, sig)

	for _, n := range []int{3, 2, 0, -1} {
		_, err = stats.CorrTestSig(0, 0.5, n)
		assert.ErrorIs(t, err, stats.ErrInsufficientSample, "n=%d", n)
	}
}

// TestFilteredCorrMatrix masks a noise pairing, keeps a perfect one, and
// never touches the diagonal.
func TestFilteredCorrMatrix(t *testing.T) {
	// Column 1: 1..20. Column 2: exactly 2x (r=1). Column 3: alternating
	// ±1, nearly uncorrelated with column 1 (|r| ≈ 0.087).
	m := make(table.Table, 20)
	for i := range m {
		x := float64(i + 1)
		z := 1.0
		if i%2 == 1 {
			z = -1
		}
		m[i] = table.NumberRow(x, 2*x, z)
	}
	fields := []table.Field{table.At(1), table.At(2), table.At(3)}

	mx, err := stats.FilteredCorrMatrix(0.9, m, fields)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, mx[0][1], 1e-9, "a perfect correlation survives any threshold")
	assert.True(t, stats.IsNotSignificant(mx[0][2]), "noise pairing must be masked")
	assert.True(t, stats.IsNotSignificant(mx[2][0]))
	for i := 0; i < 3; i++ {
		assert.False(t, stats.IsNotSignificant(mx[i][i]), "diagonal is never filtered")
		assert.InDelta(t, 1.0, mx[i][i], 1e-9)
	}
}

// TestFilteredCorrMatrix_TooFewRows verifies the n > 3 requirement of
// the underlying significance test propagates.
func TestFilteredCorrMatrix_TooFewRows(t *testing.T) {
	m := table.Table{
		table.NumberRow(1, 2),
		table.NumberRow(2, 3),
		table.NumberRow(3, 5),
	}
	_, err := stats.FilteredCorrMatrix(0.5, m, []table.Field{table.At(1), table.At(2)})
	assert.ErrorIs(t, err, stats.ErrInsufficientSample)
}

// TestNotSignificantSentinel verifies the sentinel is distinguishable
// from every numeric correlation.
func TestNotSignificantSentinel(t *testing.T) {
	assert.True(t, stats.IsNotSignificant(stats.NotSignificant))
	assert.True(t, math.IsNaN(stats.NotSignificant))
	assert.False(t, stats.IsNotSignificant(0))
	assert.False(t, stats.IsNotSignificant(1))
	assert.False(t, stats.IsNotSignificant(-1))
}
