// Package credit implements simplified consumer credit scoring and the basic
// credit-risk parameters (PD, LGD, EAD) derived from it.
package credit

import (
	"github.com/riskcraft/riskcraft/pkg/types"
)

// component weights of the overall score
const (
	paymentHistoryWeight    = 0.35
	creditUtilizationWeight = 0.30
	debtToIncomeWeight      = 0.25
	historyLengthWeight     = 0.10
)

// ScoreInput is the raw material of a credit score. PaymentHistory and
// CreditUtilization are on a 0-100 scale.
type ScoreInput struct {
	Income            float64
	Debt              float64
	PaymentHistory    float64
	CreditUtilization float64
	HistoryYears      int
}

func (in ScoreInput) Validate() error {
	if in.PaymentHistory < 0 || in.PaymentHistory > 100 {
		return types.InvalidParameterf("payment history must be on a 0-100 scale, got %f", in.PaymentHistory)
	}
	if in.Debt < 0 {
		return types.InvalidParameterf("debt must not be negative, got %f", in.Debt)
	}
	return nil
}

// Components are the 0-100 sub-scores going into the weighted total.
type Components struct {
	PaymentHistory    float64
	CreditUtilization float64
	DebtToIncome      float64
	HistoryLength     float64
}

// ScoreResult is a FICO-like score on the 300-850 scale with its component
// breakdown.
type ScoreResult struct {
	Score      int
	Rating     string
	Components Components
	DTIRatio   float64
}

// Score computes the weighted credit score. A non-positive income pins the
// debt-to-income ratio at 100.
func Score(in ScoreInput) (*ScoreResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	dti := 100.0
	if in.Income > 0 {
		dti = in.Debt / in.Income * 100.0
	}

	components := Components{
		PaymentHistory:    in.PaymentHistory,
		CreditUtilization: clampScore(100.0 - in.CreditUtilization),
		DebtToIncome:      clampScore(100.0 - dti),
		HistoryLength:     historyScore(in.HistoryYears),
	}

	weighted := paymentHistoryWeight*components.PaymentHistory +
		creditUtilizationWeight*components.CreditUtilization +
		debtToIncomeWeight*components.DebtToIncome +
		historyLengthWeight*components.HistoryLength

	score := int(300.0 + weighted/100.0*550.0)

	return &ScoreResult{
		Score:      score,
		Rating:     Rating(score),
		Components: components,
		DTIRatio:   dti,
	}, nil
}

// Rating maps a 300-850 score to its rating band.
func Rating(score int) string {
	switch {
	case score >= 800:
		return "Excellent"
	case score >= 740:
		return "Very Good"
	case score >= 670:
		return "Good"
	case score >= 580:
		return "Fair"
	default:
		return "Poor"
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0.0
	}
	if v > 100 {
		return 100.0
	}
	return v
}

// historyScore scales credit history length to 0-100: ten or more years is a
// full score.
func historyScore(years int) float64 {
	switch {
	case years >= 10:
		return 100.0
	case years <= 0:
		return 0.0
	default:
		return float64(years) / 10.0 * 100.0
	}
}
