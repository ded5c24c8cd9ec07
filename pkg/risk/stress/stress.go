// Package stress applies shock scenarios to a portfolio of exposures and
// reports the impact per asset and in total.
package stress

import (
	"github.com/riskcraft/riskcraft/pkg/types"
)

type ScenarioKind string

const (
	Historical   ScenarioKind = "historical"
	Hypothetical ScenarioKind = "hypothetical"
)

// Scenario is a named set of percentage shocks keyed by asset name. A shock
// of -0.40 means the asset loses 40% of its value.
type Scenario struct {
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description" yaml:"description"`
	Kind        ScenarioKind       `json:"kind" yaml:"kind"`
	Probability *float64           `json:"probability,omitempty" yaml:"probability,omitempty"`
	Shocks      map[string]float64 `json:"shocks" yaml:"shocks"`
}

func NewHistoricalScenario(name, description string, shocks map[string]float64) Scenario {
	return Scenario{Name: name, Description: description, Kind: Historical, Shocks: shocks}
}

func NewHypotheticalScenario(name, description string, shocks map[string]float64, probability *float64) Scenario {
	return Scenario{Name: name, Description: description, Kind: Hypothetical, Probability: probability, Shocks: shocks}
}

// Position is one exposure in the portfolio under test.
type Position struct {
	Name  string`json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Portfolio is an ordered list of positions; the order is preserved in the
// impact report.
type Portfolio []Position

func (p Portfolio) TotalValue() (total float64) {
	for _, pos := range p {
		total += pos.Value
	}
	return total
}

// Impact describes what the scenario did to a single position.
type Impact struct {
	Name             string
	OriginalValue    float64
	ShockPercentage  float64
	StressedValue    float64
	ImpactAmount     float64
	ImpactPercentage float64
}

// Result is the outcome of applying one scenario to one portfolio.
type Result struct {
	Scenario Scenario

	OriginalTotal         float64
	StressedTotal         float64
	TotalImpact           float64
	TotalImpactPercentage float64

	Impacts []Impact
}

// Apply shocks every position of the portfolio by the scenario's percentage
// change for that asset, defaulting to zero for assets the scenario does not
// mention.
func Apply(portfolio Portfolio, scenario Scenario) (*Result, error) {
	if len(portfolio) == 0 {
		return nil, types.InvalidParameterf("portfolio must not be empty")
	}
	if len(scenario.Shocks) == 0 {
		return nil, types.InvalidParameterf("scenario %q has no shocks", scenario.Name)
	}

	result := &Result{
		Scenario:      scenario,
		OriginalTotal: portfolio.TotalValue(),
		Impacts:       make([]Impact, 0, len(portfolio)),
	}

	for _, pos := range portfolio {
		shock := scenario.Shocks[pos.Name]
		stressed := pos.Value * (1.0 + shock)
		result.Impacts = append(result.Impacts, Impact{
			Name:             pos.Name,
			OriginalValue:    pos.Value,
			ShockPercentage:  shock * 100.0,
			StressedValue:    stressed,
			ImpactAmount:     stressed - pos.Value,
			ImpactPercentage: percentOf(stressed-pos.Value, pos.Value),
		})
		result.StressedTotal += stressed
	}

	result.TotalImpact = result.StressedTotal - result.OriginalTotal
	result.TotalImpactPercentage = percentOf(result.TotalImpact, result.OriginalTotal)
	return result, nil
}

func percentOf(value, base float64) float64 {
	if base == 0 {
		return 0.0
	}
	return value / base * 100.0
}
