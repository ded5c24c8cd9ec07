package register

import (
	"fmt"
	"io"

	"github.com/riskcraft/riskcraft/pkg/report"
	"github.com/riskcraft/riskcraft/pkg/types"
)

// ScaledRisk is one risk scored as 0-based indexes into caller-provided
// likelihood and impact scales.
type ScaledRisk struct {
	Name            string `json:"name" yaml:"name"`
	LikelihoodScore int    `json:"likelihoodScore" yaml:"likelihoodScore"`
	ImpactScore     int    `json:"impactScore" yaml:"impactScore"`
}

// AssessedRisk carries the resolved scale labels and the overall risk level.
type AssessedRisk struct {
	Name            string
	Likelihood      string
	Impact          string
	LikelihoodScore int
	ImpactScore     int
	RiskLevel       string
}

// ProbabilityImpactMatrix resolves each risk's scores against the given
// scales and assigns a risk level from the summed score relative to the
// combined scale span: the top quarter is Critical, above half High, above a
// quarter Medium, the rest Low.
func ProbabilityImpactMatrix(risks []ScaledRisk, likelihoodScale, impactScale []string) ([]AssessedRisk, error) {
	if len(risks) == 0 {
		return nil, types.InvalidParameterf("no risk data provided for the matrix")
	}
	if len(likelihoodScale) == 0 || len(impactScale) == 0 {
		return nil, types.InvalidParameterf("likelihood and impact scales must not be empty")
	}

	span := float64(len(likelihoodScale) + len(impactScale) - 2)
	assessed := make([]AssessedRisk, 0, len(risks))
	for _, risk := range risks {
		if risk.LikelihoodScore < 0 || risk.LikelihoodScore >= len(likelihoodScale) {
			return nil, types.InvalidParameterf("risk %s: likelihood score %d is outside the scale", risk.Name, risk.LikelihoodScore)
		}
		if risk.ImpactScore < 0 || risk.ImpactScore >= len(impactScale) {
			return nil, types.InvalidParameterf("risk %s: impact score %d is outside the scale", risk.Name, risk.ImpactScore)
		}

		score := float64(risk.LikelihoodScore + risk.ImpactScore)
		level := "Low"
		switch {
		case score >= span*0.75:
			level = "Critical"
		case score >= span*0.5:
			level = "High"
		case score >= span*0.25:
			level = "Medium"
		}

		assessed = append(assessed, AssessedRisk{
			Name:            risk.Name,
			Likelihood:      likelihoodScale[risk.LikelihoodScore],
			Impact:          impactScale[risk.ImpactScore],
			LikelihoodScore: risk.LikelihoodScore,
			ImpactScore:     risk.ImpactScore,
			RiskLevel:       level,
		})
	}
	return assessed, nil
}

// WriteProbabilityImpactReport renders the assessed risks.
func WriteProbabilityImpactReport(w io.Writer, risks []AssessedRisk) {
	report.Section(w, "Probability and Impact Matrix")
	for _, risk := range risks {
		fmt.Fprintf(w, "Risk: %s\n", risk.Name)
		fmt.Fprintf(w, "  Likelihood: %s (Score: %d)\n", risk.Likelihood, risk.LikelihoodScore)
		fmt.Fprintf(w, "  Impact: %s (Score: %d)\n", risk.Impact, risk.ImpactScore)
		fmt.Fprintf(w, "  Assessed Risk Level: %s\n", report.Severity(risk.RiskLevel))
	}
}
