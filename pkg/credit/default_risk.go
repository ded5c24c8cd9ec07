package credit

import (
	"github.com/riskcraft/riskcraft/pkg/types"
)

// DefaultRisk holds the standard credit-risk parameters of a single loan:
// probability of default, loss given default, exposure at default and the
// expected loss PD*LGD*EAD.
type DefaultRisk struct {
	PD           float64
	LGD          float64
	EAD          float64
	ExpectedLoss float64

	// ExpectedLossPercentage is the expected loss as a share of the loan
	// amount; it reports 0 for a zero loan amount.
	ExpectedLossPercentage float64
}

// DefaultParameters derives PD from the score band, LGD from the collateral
// coverage and EAD from the loan amount.
func DefaultParameters(score int, loanAmount, collateralValue float64) (*DefaultRisk, error) {
	if loanAmount < 0 {
		return nil, types.InvalidParameterf("loan amount must not be negative, got %f", loanAmount)
	}
	if collateralValue < 0 {
		return nil, types.InvalidParameterf("collateral value must not be negative, got %f", collateralValue)
	}

	pd := probabilityOfDefault(score)

	recoveryRate := 0.0
	if loanAmount > 0 {
		recoveryRate = collateralValue / loanAmount
		if recoveryRate > 1 {
			recoveryRate = 1.0
		}
	}

	risk := &DefaultRisk{
		PD:  pd,
		LGD: 1.0 - recoveryRate,
		EAD: loanAmount,
	}
	risk.ExpectedLoss = risk.PD * risk.LGD * risk.EAD
	if loanAmount > 0 {
		risk.ExpectedLossPercentage = risk.ExpectedLoss / loanAmount * 100.0
	}
	return risk, nil
}

// probabilityOfDefault bands the score the same way the rating does.
func probabilityOfDefault(score int) float64 {
	switch {
	case score >= 800:
		return 0.001
	case score >= 740:
		return 0.005
	case score >= 670:
		return 0.02
	case score >= 580:
		return 0.10
	default:
		return 0.30
	}
}

// Loan is one entry of a loan portfolio.
type Loan struct {
	PD  float64 `json:"pd" yaml:"pd"`
	LGD float64 `json:"lgd" yaml:"lgd"`
	EAD float64 `json:"ead" yaml:"ead"`
}

// PortfolioRisk aggregates a loan book: total exposure, total expected loss
// and EAD-weighted average PD and LGD. Zero total exposure reports zero
// ratios.
type PortfolioRisk struct {
	TotalExposure     float64
	TotalExpectedLoss float64
	ExpectedLossRatio float64
	WeightedPD        float64
	WeightedLGD       float64
}

func AnalyzePortfolio(loans []Loan) (*PortfolioRisk, error) {
	if len(loans) == 0 {
		return nil, types.InvalidParameterf("loan portfolio must not be empty")
	}

	risk := &PortfolioRisk{}
	for _, loan := range loans {
		risk.TotalExposure += loan.EAD
		risk.TotalExpectedLoss += loan.PD * loan.LGD * loan.EAD
		risk.WeightedPD += loan.PD * loan.EAD
		risk.WeightedLGD += loan.LGD * loan.EAD
	}

	if risk.TotalExposure > 0 {
		risk.WeightedPD /= risk.TotalExposure
		risk.WeightedLGD /= risk.TotalExposure
		risk.ExpectedLossRatio = risk.TotalExpectedLoss / risk.TotalExposure * 100.0
	} else {
		risk.WeightedPD = 0
		risk.WeightedLGD = 0
	}
	return risk, nil
}
