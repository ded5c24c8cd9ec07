package stress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskcraft/riskcraft/pkg/types"
)

func crisisScenario() Scenario {
	return NewHistoricalScenario(
		"2008 Financial Crisis",
		"Simulates market conditions similar to the 2008 global financial crisis",
		map[string]float64{
			"US Equities":       -0.40,
			"European Equities": -0.45,
			"US Bonds":          0.05,
			"Cash":              0.00,
		},
	)
}

func samplePortfolio() Portfolio {
	return Portfolio{
		{Name: "US Equities", Value: 500000},
		{Name: "European Equities", Value: 300000},
		{Name: "US Bonds", Value: 400000},
		{Name: "Cash", Value: 100000},
	}
}

func TestApply(t *testing.T) {
	result, err := Apply(samplePortfolio(), crisisScenario())
	require.NoError(t, err)

	assert.InDelta(t, 1300000.0, result.OriginalTotal, 1e-9)
	// 500k*0.6 + 300k*0.55 + 400k*1.05 + 100k = 985k
	assert.InDelta(t, 985000.0, result.StressedTotal, 1e-9)
	assert.InDelta(t, -315000.0, result.TotalImpact, 1e-9)
	assert.InDelta(t, -315000.0/1300000.0*100.0, result.TotalImpactPercentage, 1e-9)

	require.Len(t, result.Impacts, 4)
	assert.Equal(t, "US Equities", result.Impacts[0].Name)
	assert.InDelta(t, -200000.0, result.Impacts[0].ImpactAmount, 1e-9)
	assert.InDelta(t, -40.0, result.Impacts[0].ImpactPercentage, 1e-9)
}

func TestApplyUnknownAssetDefaultsToZeroShock(t *testing.T) {
	portfolio := Portfolio{{Name: "Gold", Value: 1000}}
	result, err := Apply(portfolio, crisisScenario())
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Impacts[0].ShockPercentage)
	assert.Equal(t, 1000.0, result.Impacts[0].StressedValue)
}

func TestApplyZeroValuePosition(t *testing.T) {
	portfolio := Portfolio{{Name: "US Equities", Value: 0}}
	result, err := Apply(portfolio, crisisScenario())
	require.NoError(t, err)

	// zero-base percentages report 0 instead of dividing by zero
	assert.Equal(t, 0.0, result.Impacts[0].ImpactPercentage)
	assert.Equal(t, 0.0, result.TotalImpactPercentage)
}

func TestApplyValidation(t *testing.T) {
	_, err := Apply(Portfolio{}, crisisScenario())
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)

	_, err = Apply(samplePortfolio(), Scenario{Name: "empty"})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
}

func TestNewHypotheticalScenario(t *testing.T) {
	p := 0.1
	s := NewHypotheticalScenario("Rate Shock", "Sudden 300bp hike", map[string]float64{"US Bonds": -0.12}, &p)
	assert.Equal(t, Hypothetical, s.Kind)
	require.NotNil(t, s.Probability)
	assert.Equal(t, 0.1, *s.Probability)
}
