package credit

import (
	"fmt"
	"io"

	"github.com/riskcraft/riskcraft/pkg/report"
)

func (r *ScoreResult) WriteReport(w io.Writer) {
	report.Section(w, "Credit Score Assessment")
	fmt.Fprintf(w, "Credit Score: %d (%s)\n", r.Score, r.Rating)
	fmt.Fprintln(w, "\nComponent Scores (0-100 scale):")
	fmt.Fprintf(w, "  Payment History (35%%): %.1f\n", r.Components.PaymentHistory)
	fmt.Fprintf(w, "  Credit Utilization (30%%): %.1f\n", r.Components.CreditUtilization)
	fmt.Fprintf(w, "  Debt-to-Income (25%%): %.1f\n", r.Components.DebtToIncome)
	fmt.Fprintf(w, "  Credit History Length (10%%): %.1f\n", r.Components.HistoryLength)
	fmt.Fprintf(w, "\nDebt-to-Income Ratio: %.1f%%\n", r.DTIRatio)
}

func (r *DefaultRisk) WriteReport(w io.Writer) {
	report.Section(w, "Credit Risk Parameters")
	fmt.Fprintf(w, "Probability of Default (PD): %s\n", report.Percent(r.PD*100))
	fmt.Fprintf(w, "Loss Given Default (LGD): %s\n", report.Percent(r.LGD*100))
	fmt.Fprintf(w, "Exposure at Default (EAD): %s\n", report.Money(r.EAD))
	fmt.Fprintf(w, "Expected Loss: %s\n", report.Money(r.ExpectedLoss))
	fmt.Fprintf(w, "Expected Loss as %% of Loan: %.4f%%\n", r.ExpectedLossPercentage)
}

func (r *PortfolioRisk) WriteReport(w io.Writer) {
	report.Section(w, "Loan Portfolio Risk Analysis")
	fmt.Fprintf(w, "Total Portfolio Exposure: %s\n", report.Money(r.TotalExposure))
	fmt.Fprintf(w, "Total Expected Loss: %s\n", report.Money(r.TotalExpectedLoss))
	fmt.Fprintf(w, "Expected Loss Ratio: %.4f%%\n", r.ExpectedLossRatio)
	fmt.Fprintf(w, "Weighted Average PD: %s\n", report.Percent(r.WeightedPD*100))
	fmt.Fprintf(w, "Weighted Average LGD: %s\n", report.Percent(r.WeightedLGD*100))
}
