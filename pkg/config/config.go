// Package config loads the YAML scenario files consumed by the riskcraft CLI.
// A file may define any subset of the sections; each command reads the
// section it needs and rejects a missing one.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/riskcraft/riskcraft/pkg/analysis"
	"github.com/riskcraft/riskcraft/pkg/credit"
	"github.com/riskcraft/riskcraft/pkg/datatype/floats"
	"github.com/riskcraft/riskcraft/pkg/montecarlo"
	"github.com/riskcraft/riskcraft/pkg/register"
	"github.com/riskcraft/riskcraft/pkg/risk/stress"
)

type SimulationConfig struct {
	InitialValue float64 `yaml:"initialValue"`
	Drift        float64 `yaml:"drift"`
	Volatility   float64 `yaml:"volatility"`
	HorizonDays  int     `yaml:"horizonDays"`
	PathCount    int     `yaml:"pathCount"`
	Percentile   float64 `yaml:"percentile"`
	Seed         int64   `yaml:"seed"`
}

// Parameters converts the section into simulation parameters.
func (c *SimulationConfig) Parameters() montecarlo.SimulationParameters {
	return montecarlo.SimulationParameters{
		InitialValue: c.InitialValue,
		Drift:        c.Drift,
		Volatility:   c.Volatility,
		HorizonDays:  c.HorizonDays,
		PathCount:    c.PathCount,
		Percentile:   c.Percentile,
		Seed:         c.Seed,
	}
}

type CorrelationConfig struct {
	Pair        [2]string `yaml:"pair"`
	Coefficient float64   `yaml:"coefficient"`
}

type PortfolioConfig struct {
	HorizonDays  int                 `yaml:"horizonDays"`
	PathCount    int                 `yaml:"pathCount"`
	Percentile   float64             `yaml:"percentile"`
	Seed         int64               `yaml:"seed"`
	Assets       montecarlo.AssetSet `yaml:"assets"`
	Correlations []CorrelationConfig `yaml:"correlations"`
}

func (c *PortfolioConfig) Parameters() montecarlo.PortfolioParameters {
	return montecarlo.PortfolioParameters{
		HorizonDays: c.HorizonDays,
		PathCount:   c.PathCount,
		Percentile:  c.Percentile,
		Seed:        c.Seed,
	}
}

// BuildCorrelations assembles the pairwise correlation table, rejecting
// out-of-range coefficients.
func (c *PortfolioConfig) BuildCorrelations() (*montecarlo.Correlations, error) {
	correlations := montecarlo.NewCorrelations()
	for _, cc := range c.Correlations {
		if err := correlations.Set(cc.Pair[0], cc.Pair[1], cc.Coefficient); err != nil {
			return nil, err
		}
	}
	return correlations, nil
}

type VaRConfig struct {
	Returns         floats.Slice `yaml:"returns"`
	ConfidenceLevel float64      `yaml:"confidenceLevel"`
	InvestmentValue float64      `yaml:"investmentValue"`
	HorizonDays     int          `yaml:"horizonDays"`
}

type StressConfig struct {
	Portfolio stress.Portfolio  `yaml:"portfolio"`
	Scenarios []stress.Scenario `yaml:"scenarios"`
}

type CreditLoanConfig struct {
	Amount     float64 `yaml:"amount"`
	Collateral float64 `yaml:"collateral"`
}

type CreditConfig struct {
	Income            float64           `yaml:"income"`
	Debt              float64           `yaml:"debt"`
	PaymentHistory    float64           `yaml:"paymentHistory"`
	CreditUtilization float64           `yaml:"creditUtilization"`
	HistoryYears      int               `yaml:"historyYears"`
	Loan              *CreditLoanConfig `yaml:"loan"`
	Portfolio         []credit.Loan     `yaml:"portfolio"`
}

func (c *CreditConfig) ScoreInput() credit.ScoreInput {
	return credit.ScoreInput{
		Income:            c.Income,
		Debt:              c.Debt,
		PaymentHistory:    c.PaymentHistory,
		CreditUtilization: c.CreditUtilization,
		HistoryYears:      c.HistoryYears,
	}
}

type RegisterConfig struct {
	Risks  []register.Risk        `yaml:"risks"`
	Matrix []register.MatrixEntry `yaml:"matrix"`
}

type FiveWhysConfig struct {
	Problem string         `yaml:"problem"`
	Whys    []analysis.Why `yaml:"whys"`
}

type FishboneConfig struct {
	Problem    string                   `yaml:"problem"`
	Categories []analysis.CauseCategory `yaml:"categories"`
}

type BarrierConfig struct {
	Hazard   string             `yaml:"hazard"`
	Target   string             `yaml:"target"`
	Barriers []analysis.Barrier `yaml:"barriers"`
}

type AnalysisConfig struct {
	SWOT     *analysis.SWOT  `yaml:"swot"`
	FiveWhys *FiveWhysConfig `yaml:"fiveWhys"`
	Fishbone *FishboneConfig `yaml:"fishbone"`
	Barriers *BarrierConfig  `yaml:"barriers"`
}

// Config is the root of a riskcraft YAML file.
type Config struct {
	Simulation *SimulationConfig `yaml:"simulation"`
	Portfolio  *PortfolioConfig  `yaml:"portfolio"`
	VaR        *VaRConfig        `yaml:"var"`
	Stress     *StressConfig     `yaml:"stress"`
	Credit     *CreditConfig     `yaml:"credit"`
	Register   *RegisterConfig   `yaml:"register"`
	Analysis   *AnalysisConfig   `yaml:"analysis"`
}

// Load reads and decodes a config file.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can not read config file %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, errors.Wrapf(err, "can not parse config file %s", path)
	}
	return &cfg, nil
}
