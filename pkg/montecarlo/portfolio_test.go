package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/riskcraft/riskcraft/pkg/types"
)

func twinAssets() AssetSet {
	return AssetSet{
		{Name: "A", InitialValue: 100, ExpectedReturn: 0.08, Volatility: 0.2},
		{Name: "B", InitialValue: 100, ExpectedReturn: 0.08, Volatility: 0.2},
	}
}

func portfolioParams() PortfolioParameters {
	return PortfolioParameters{HorizonDays: 60, PathCount: 500, Percentile: 5, Seed: 42}
}

func TestCorrelations(t *testing.T) {
	c := NewCorrelations()
	require.NoError(t, c.Set("A", "B", 0.5))

	assert.Equal(t, 0.5, c.Get("A", "B"))
	assert.Equal(t, 0.5, c.Get("B", "A"))
	assert.Equal(t, 1.0, c.Get("A", "A"))
	assert.Equal(t, 0.0, c.Get("A", "C"))

	err := c.Set("A", "C", 1.5)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)

	err = c.Set("A", "A", 0.5)
	require.Error(t, err)
}

func TestSimulatePortfolio(t *testing.T) {
	c := NewCorrelations()
	require.NoError(t, c.Set("A", "B", 0.3))

	result, err := SimulatePortfolio(twinAssets(), c, portfolioParams())
	require.NoError(t, err)

	assert.Equal(t, 200.0, result.InitialValue)
	assert.Equal(t, 61, len(result.PortfolioPaths))
	assert.Equal(t, 500, result.TerminalValues.Length())

	for _, paths := range result.AssetPaths {
		for _, row := range paths {
			for _, v := range row {
				assert.Greater(t, v, 0.0)
			}
		}
	}

	// the portfolio matrix is the elementwise sum of the per-asset matrices
	for ti, row := range result.PortfolioPaths {
		for p, v := range row {
			sum := result.AssetPaths["A"][ti][p] + result.AssetPaths["B"][ti][p]
			assert.InDelta(t, sum, v, 1e-9)
		}
	}
}

func TestSimulatePortfolioDeterminism(t *testing.T) {
	c := NewCorrelations()
	require.NoError(t, c.Set("A", "B", 0.3))

	a, err := SimulatePortfolio(twinAssets(), c, portfolioParams())
	require.NoError(t, err)
	b, err := SimulatePortfolio(twinAssets(), c, portfolioParams())
	require.NoError(t, err)

	assert.Equal(t, a.TerminalValues, b.TerminalValues)
	assert.Equal(t, a.AssetPaths["A"].TerminalValues(), b.AssetPaths["A"].TerminalValues())
}

func TestSimulatePortfolioPerfectCorrelation(t *testing.T) {
	c := NewCorrelations()
	require.NoError(t, c.Set("A", "B", 1.0))

	result, err := SimulatePortfolio(twinAssets(), c, portfolioParams())
	require.NoError(t, err)

	x := result.AssetPaths["A"].TerminalValues()
	y := result.AssetPaths["B"].TerminalValues()
	corr := stat.Correlation(x, y, nil)
	assert.InDelta(t, 1.0, corr, 1e-6)
}

func TestSimulatePortfolioUncorrelatedTwinsDiffer(t *testing.T) {
	result, err := SimulatePortfolio(twinAssets(), nil, portfolioParams())
	require.NoError(t, err)

	x := result.AssetPaths["A"].TerminalValues()
	y := result.AssetPaths["B"].TerminalValues()
	corr := stat.Correlation(x, y, nil)
	assert.Less(t, corr, 0.5)
}

func TestSimulatePortfolioValidation(t *testing.T) {
	_, err := SimulatePortfolio(AssetSet{}, nil, portfolioParams())
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)

	bad := twinAssets()
	bad[1].InitialValue = -5
	_, err = SimulatePortfolio(bad, nil, portfolioParams())
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)

	dup := AssetSet{
		{Name: "A", InitialValue: 100, Volatility: 0.2},
		{Name: "A", InitialValue: 100, Volatility: 0.2},
	}
	_, err = SimulatePortfolio(dup, nil, portfolioParams())
	require.Error(t, err)

	params := portfolioParams()
	params.PathCount = 0
	_, err = SimulatePortfolio(twinAssets(), nil, params)
	require.Error(t, err)
}

func TestCovarianceTransformRejectsIndefinite(t *testing.T) {
	// rho(A,B)=1, rho(B,C)=1 but rho(A,C)=-1 cannot be a correlation matrix
	c := NewCorrelations()
	require.NoError(t, c.Set("A", "B", 1))
	require.NoError(t, c.Set("B", "C", 1))
	require.NoError(t, c.Set("A", "C", -1))

	assets := AssetSet{
		{Name: "A", InitialValue: 100, ExpectedReturn: 0.05, Volatility: 0.2},
		{Name: "B", InitialValue: 100, ExpectedReturn: 0.05, Volatility: 0.2},
		{Name: "C", InitialValue: 100, ExpectedReturn: 0.05, Volatility: 0.2},
	}

	_, err := SimulatePortfolio(assets, c, portfolioParams())
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
}
