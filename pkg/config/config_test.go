package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
simulation:
  initialValue: 100
  drift: 0.08
  volatility: 0.2
  horizonDays: 252
  pathCount: 1000
  percentile: 5
  seed: 42

portfolio:
  horizonDays: 60
  pathCount: 500
  percentile: 5
  seed: 42
  assets:
    - name: US Equities
      initialValue: 500000
      expectedReturn: 0.07
      volatility: 0.18
    - name: US Bonds
      initialValue: 400000
      expectedReturn: 0.03
      volatility: 0.06
  correlations:
    - pair: [US Equities, US Bonds]
      coefficient: -0.2

var:
  returns: [0.01, -0.02, 0.005]
  confidenceLevel: 0.95
  investmentValue: 1000000
  horizonDays: 1

stress:
  portfolio:
    - name: US Equities
      value: 500000
  scenarios:
    - name: 2008 Financial Crisis
      description: simplified crisis scenario
      kind: historical
      shocks:
        US Equities: -0.40

credit:
  income: 75000
  debt: 25000
  paymentHistory: 90
  creditUtilization: 30
  historyYears: 5
  loan:
    amount: 200000
    collateral: 180000
  portfolio:
    - pd: 0.02
      lgd: 0.4
      ead: 150000

register:
  risks:
    - id: R001
      name: Data Breach
      category: Cybersecurity
      likelihood: Medium
      impact: High
      owner: IT Security Team
  matrix:
    - name: Scope Creep
      likelihood: 3
      impact: 4

analysis:
  swot:
    strengths: [Experienced team]
    threats: [Regulatory changes]
  fiveWhys:
    problem: The project missed its deadline
    whys:
      - question: Why did the project miss its deadline?
        answer: Testing took longer than expected.
  barriers:
    hazard: Data Breach
    target: Customer Personal Information
    barriers:
      - name: Data Encryption
        effectiveness: High
        status: Intact
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "riskcraft.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, sampleConfig))
	require.NoError(t, err)

	require.NotNil(t, cfg.Simulation)
	params := cfg.Simulation.Parameters()
	assert.Equal(t, 100.0, params.InitialValue)
	assert.Equal(t, int64(42), params.Seed)
	require.NoError(t, params.Validate())

	require.NotNil(t, cfg.Portfolio)
	require.Len(t, cfg.Portfolio.Assets, 2)
	assert.Equal(t, "US Equities", cfg.Portfolio.Assets[0].Name)

	correlations, err := cfg.Portfolio.BuildCorrelations()
	require.NoError(t, err)
	assert.Equal(t, -0.2, correlations.Get("US Bonds", "US Equities"))

	require.NotNil(t, cfg.VaR)
	assert.Equal(t, 3, cfg.VaR.Returns.Length())
	assert.Equal(t, 0.95, cfg.VaR.ConfidenceLevel)

	require.NotNil(t, cfg.Stress)
	require.Len(t, cfg.Stress.Scenarios, 1)
	assert.Equal(t, -0.40, cfg.Stress.Scenarios[0].Shocks["US Equities"])

	require.NotNil(t, cfg.Credit)
	assert.Equal(t, 75000.0, cfg.Credit.ScoreInput().Income)
	require.NotNil(t, cfg.Credit.Loan)
	require.Len(t, cfg.Credit.Portfolio, 1)

	require.NotNil(t, cfg.Register)
	require.Len(t, cfg.Register.Risks, 1)
	require.Len(t, cfg.Register.Matrix, 1)

	require.NotNil(t, cfg.Analysis)
	require.NotNil(t, cfg.Analysis.SWOT)
	require.NotNil(t, cfg.Analysis.FiveWhys)
	assert.Nil(t, cfg.Analysis.Fishbone)
}

func TestLoadInvalidCorrelation(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, `
portfolio:
  assets:
    - name: A
      initialValue: 100
  correlations:
    - pair: [A, B]
      coefficient: 2.0
`))
	require.NoError(t, err)

	_, err = cfg.Portfolio.BuildCorrelations()
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/no/such/file.yaml")
	require.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeTempConfig(t, "simulation: ["))
	require.Error(t, err)
}
