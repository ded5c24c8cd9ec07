package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskcraft/riskcraft/pkg/datatype/floats"
	"github.com/riskcraft/riskcraft/pkg/types"
)

var sampleReturns = floats.Slice{
	0.01, -0.02, 0.005, 0.008, -0.01, 0.02, -0.03, 0.015, -0.005, 0.012,
	-0.008, 0.01, -0.015, 0.007, -0.012, 0.018, -0.022, 0.01, 0.003, -0.018,
}

func TestTailIndex(t *testing.T) {
	// ceil(20 * 0.05) - 1 = 0
	assert.Equal(t, 0, tailIndex(20, 0.95))
	// ceil(100 * 0.05) - 1 = 4
	assert.Equal(t, 4, tailIndex(100, 0.95))
	// ceil(3 * 0.01) - 1 = 0
	assert.Equal(t, 0, tailIndex(3, 0.99))
	// clamp: ceil(1 * 0.05) - 1 = 0
	assert.Equal(t, 0, tailIndex(1, 0.95))
}

func TestHistorical(t *testing.T) {
	summary, err := Historical(sampleReturns, 0.95, 1000000)
	require.NoError(t, err)

	// worst return in the sample is -0.03
	assert.InDelta(t, 30000.0, summary.Amount, 1e-9)
	assert.Equal(t, HistoricalVaR, summary.Kind)
	assert.Equal(t, 0.95, summary.ConfidenceLevel)
}

func TestHistoricalDoesNotMutateInput(t *testing.T) {
	returns := floats.Slice{0.02, -0.05, 0.01}
	_, err := Historical(returns, 0.95, 1000)
	require.NoError(t, err)
	assert.Equal(t, floats.Slice{0.02, -0.05, 0.01}, returns)
}

func TestParametricSign(t *testing.T) {
	// z = InverseNormalCDF(0.05) ~ -1.645, so the VaR must come out positive
	summary, err := Parametric(0, 0.02, 0.95, 1000000, 1)
	require.NoError(t, err)

	assert.InDelta(t, 32900.0, summary.Amount, 100.0)
	assert.Greater(t, summary.Amount, 0.0)
}

func TestParametricHorizonScaling(t *testing.T) {
	oneDay, err := Parametric(0, 0.02, 0.95, 1000000, 1)
	require.NoError(t, err)
	fourDays, err := Parametric(0, 0.02, 0.95, 1000000, 4)
	require.NoError(t, err)

	// with zero mean the VaR scales with sqrt(horizon)
	assert.InDelta(t, 2*oneDay.Amount, fourDays.Amount, 1e-6)
	assert.Equal(t, 4, fourDays.HorizonDays)
}

func TestConditional(t *testing.T) {
	summary, err := Conditional(sampleReturns, 0.95, 1000000)
	require.NoError(t, err)

	// index 0: single-element tail, CVaR equals VaR
	assert.InDelta(t, 30000.0, summary.Amount, 1e-9)
}

func TestConditionalAtLeastHistorical(t *testing.T) {
	summary, err := Conditional(sampleReturns, 0.8, 1000000)
	require.NoError(t, err)
	hist, err := Historical(sampleReturns, 0.8, 1000000)
	require.NoError(t, err)

	// the expected shortfall averages everything at or below the threshold,
	// so it is at least as bad as the VaR itself
	assert.GreaterOrEqual(t, summary.Amount, hist.Amount)
	assert.Greater(t, summary.Amount, hist.Amount)
}

func TestConfidenceBounds(t *testing.T) {
	for _, confidence := range []float64{0, 1, -0.5, 1.5} {
		_, err := Historical(sampleReturns, confidence, 1000000)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrInvalidParameter)

		_, err = Parametric(0, 0.02, confidence, 1000000, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrInvalidParameter)

		_, err = Conditional(sampleReturns, confidence, 1000000)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrInvalidParameter)
	}
}

func TestEmptySample(t *testing.T) {
	_, err := Historical(nil, 0.95, 1000000)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)

	_, err = Conditional(nil, 0.95, 1000000)
	require.Error(t, err)
}

func TestParametricValidation(t *testing.T) {
	_, err := Parametric(0, -0.01, 0.95, 1000000, 1)
	require.Error(t, err)

	_, err = Parametric(0, 0.02, 0.95, 1000000, 0)
	require.Error(t, err)
}

func TestSampleMoments(t *testing.T) {
	mean, stdDev := SampleMoments(floats.Slice{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 5.0, mean, 1e-12)
	assert.InDelta(t, 2.0, stdDev, 1e-12)
}
