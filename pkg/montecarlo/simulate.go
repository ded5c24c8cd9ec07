package montecarlo

import (
	"math"
	"math/rand"

	"github.com/riskcraft/riskcraft/pkg/datatype/floats"
	"github.com/riskcraft/riskcraft/pkg/types"
)

// PricePathMatrix holds simulated prices indexed by [time step][path index].
// Row 0 is the initial value for every path. Every entry is strictly positive:
// the paths are built by multiplying exponential increments, so finite draws
// can never push a price to zero or below.
type PricePathMatrix [][]float64

// TerminalValues returns the last row of the matrix, one value per path.
func (m PricePathMatrix) TerminalValues() floats.Slice {
	if len(m) == 0 {
		return nil
	}
	return floats.Slice(m[len(m)-1])
}

// SimulationParameters describes a single-asset Monte Carlo run. The values
// are treated as immutable once Simulate starts.
type SimulationParameters struct {
	// InitialValue is the asset price at time zero.
	InitialValue float64

	// Drift is the expected annualized return.
	Drift float64

	// Volatility is the annualized volatility.
	Volatility float64

	// HorizonDays is the number of trading days to simulate.
	HorizonDays int

	// PathCount is the number of independent simulation paths.
	PathCount int

	// Percentile selects the tail price used for the potential-loss summary,
	// e.g. 5 for the 5% worst case. Must be inside (0, 100).
	Percentile float64

	// Seed makes the run reproducible: the same seed and parameters always
	// produce the same paths.
	Seed int64
}

func (p SimulationParameters) Validate() error {
	if p.InitialValue <= 0 {
		return types.InvalidParameterf("initial value must be positive, got %f", p.InitialValue)
	}
	if p.Volatility < 0 {
		return types.InvalidParameterf("volatility must not be negative, got %f", p.Volatility)
	}
	if p.HorizonDays <= 0 {
		return types.InvalidParameterf("horizon days must be positive, got %d", p.HorizonDays)
	}
	if p.PathCount <= 0 {
		return types.InvalidParameterf("path count must be positive, got %d", p.PathCount)
	}
	if p.Percentile <= 0 || p.Percentile >= 100 {
		return types.InvalidParameterf("percentile must be inside (0, 100), got %f", p.Percentile)
	}
	return nil
}

// SimulationResult is the outcome of a single-asset run: the full path matrix
// plus the summary statistics of the terminal price distribution.
type SimulationResult struct {
	Parameters SimulationParameters

	Paths          PricePathMatrix
	TerminalValues floats.Slice

	Mean            float64
	Median          float64
	Min             float64
	Max             float64
	PercentileValue float64

	// PotentialLoss is InitialValue minus the percentile price. It is
	// reported as-is and may be negative when the percentile outcome is a
	// gain.
	PotentialLoss           float64
	PotentialLossPercentage float64
}

// Simulate generates PathCount price trajectories over HorizonDays steps of
// Geometric Brownian Motion and summarizes the terminal distribution.
//
// Annualized drift and volatility are scaled to daily values with the
// TradingDaysPerYear constant. The generator is locally owned and seeded from
// Parameters.Seed, so identical inputs reproduce identical output.
func Simulate(params SimulationParameters) (*SimulationResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var (
		dailyDrift = params.Drift / types.TradingDaysPerYear
		dailyVol   = params.Volatility / math.Sqrt(types.TradingDaysPerYear)
		rnd        = rand.New(rand.NewSource(params.Seed))
	)

	paths := newPathMatrix(params.HorizonDays, params.PathCount, params.InitialValue)
	for t := 1; t <= params.HorizonDays; t++ {
		for p := 0; p < params.PathCount; p++ {
			r := rnd.NormFloat64()*dailyVol + dailyDrift
			paths[t][p] = paths[t-1][p] * math.Exp(r)
		}
	}

	result := &SimulationResult{
		Parameters:     params,
		Paths:          paths,
		TerminalValues: paths.TerminalValues(),
	}
	result.summarize(params.InitialValue, params.Percentile)
	return result, nil
}

func (r *SimulationResult) summarize(initialValue, percentile float64) {
	r.Mean = r.TerminalValues.Mean()
	r.Median = r.TerminalValues.Median()
	r.Min = r.TerminalValues.Min()
	r.Max = r.TerminalValues.Max()
	r.PercentileValue = r.TerminalValues.Percentile(percentile)
	r.PotentialLoss = initialValue - r.PercentileValue
	r.PotentialLossPercentage = percentOf(r.PotentialLoss, initialValue)
}

func newPathMatrix(horizonDays, pathCount int, initialValue float64) PricePathMatrix {
	paths := make(PricePathMatrix, horizonDays+1)
	for t := range paths {
		paths[t] = make([]float64, pathCount)
	}
	for p := 0; p < pathCount; p++ {
		paths[0][p] = initialValue
	}
	return paths
}

// percentOf reports value as a percentage of base. A zero base reports 0
// rather than dividing by zero; the same convention is used for every
// percentage in this repository.
func percentOf(value, base float64) float64 {
	if base == 0 {
		return 0.0
	}
	return value / base * 100.0
}
