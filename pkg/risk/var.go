// Package risk implements the Value-at-Risk family of calculations:
// historical simulation, the parametric (normal) method and Conditional VaR
// (Expected Shortfall). All three are pure functions over a return sample or
// distribution parameters and are safe to call concurrently.
package risk

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/riskcraft/riskcraft/pkg/datatype/floats"
	"github.com/riskcraft/riskcraft/pkg/types"
)

type Kind string

const (
	HistoricalVaR  Kind = "historical"
	ParametricVaR  Kind = "parametric"
	ConditionalVaR Kind = "conditional"
)

// Summary is the result of one VaR calculation. Amount is the monetary loss
// threshold; it is reported as the formula produces it and may be negative
// when even the tail of the sample is a gain.
type Summary struct {
	Kind            Kind
	ConfidenceLevel float64
	Amount          float64
	HorizonDays     int
}

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

func validateConfidence(confidence float64) error {
	if confidence <= 0 || confidence >= 1 {
		return types.InvalidParameterf("confidence level must be inside (0, 1), got %f", confidence)
	}
	return nil
}

// tailIndex maps a confidence level to the sorted-sample index holding the
// VaR threshold: ceil(n * (1 - confidence)) - 1, clamped to 0. For small
// samples the clamp selects the worst observed return.
func tailIndex(n int, confidence float64) int {
	index := int(math.Ceil(float64(n)*(1.0-confidence))) - 1
	if index < 0 {
		index = 0
	}
	return index
}

// Historical computes VaR by historical simulation: the return at the
// (1-confidence) tail of the sorted sample, scaled by the investment value.
func Historical(returns floats.Slice, confidence, investmentValue float64) (*Summary, error) {
	if err := validateConfidence(confidence); err != nil {
		return nil, err
	}
	if returns.Length() == 0 {
		return nil, types.InvalidParameterf("return sample must not be empty")
	}

	sorted := returns.Sorted()
	index := tailIndex(sorted.Length(), confidence)

	return &Summary{
		Kind:            HistoricalVaR,
		ConfidenceLevel: confidence,
		Amount:          investmentValue * -sorted[index],
		HorizonDays:     1,
	}, nil
}

// Parametric computes VaR under the assumption of normally distributed
// returns with the given mean and standard deviation, scaled over the horizon
// by the square root of time. The z-score is the inverse normal CDF at
// (1-confidence) and is negative for confidence levels above 0.5.
func Parametric(meanReturn, stdDev, confidence, investmentValue float64, horizonDays int) (*Summary, error) {
	if err := validateConfidence(confidence); err != nil {
		return nil, err
	}
	if stdDev < 0 {
		return nil, types.InvalidParameterf("standard deviation must not be negative, got %f", stdDev)
	}
	if horizonDays <= 0 {
		return nil, types.InvalidParameterf("time horizon must be positive, got %d", horizonDays)
	}

	var (
		h         = float64(horizonDays)
		z         = stdNormal.Quantile(1.0 - confidence)
		varReturn = -(meanReturn*h + z*stdDev*math.Sqrt(h))
	)
	return &Summary{
		Kind:            ParametricVaR,
		ConfidenceLevel: confidence,
		Amount:          investmentValue * varReturn,
		HorizonDays:     horizonDays,
	}, nil
}

// Conditional computes CVaR (Expected Shortfall): the average of the sorted
// returns at or below the VaR index, inclusive of the threshold observation.
func Conditional(returns floats.Slice, confidence, investmentValue float64) (*Summary, error) {
	if err := validateConfidence(confidence); err != nil {
		return nil, err
	}
	if returns.Length() == 0 {
		return nil, types.InvalidParameterf("return sample must not be empty")
	}

	sorted := returns.Sorted()
	index := tailIndex(sorted.Length(), confidence)
	tailMean := sorted[:index+1].Mean()

	return &Summary{
		Kind:            ConditionalVaR,
		ConfidenceLevel: confidence,
		Amount:          investmentValue * -tailMean,
		HorizonDays:     1,
	}, nil
}

// SampleMoments returns the mean and the population standard deviation of a
// return sample, the inputs the parametric method expects.
func SampleMoments(returns floats.Slice) (mean, stdDev float64) {
	return returns.Mean(), returns.Stdev()
}
