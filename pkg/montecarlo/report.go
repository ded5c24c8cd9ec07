package montecarlo

import (
	"fmt"
	"io"

	"github.com/riskcraft/riskcraft/pkg/report"
)

// WriteReport renders the human-readable summary of a single-asset run.
func (r *SimulationResult) WriteReport(w io.Writer) {
	report.Section(w, "Monte Carlo Simulation Results")
	fmt.Fprintf(w, "Initial Price: %s\n", report.Money(r.Parameters.InitialValue))
	fmt.Fprintf(w, "Simulations: %d\n", r.Parameters.PathCount)
	fmt.Fprintf(w, "Time Horizon: %d days\n", r.Parameters.HorizonDays)
	fmt.Fprintf(w, "Mean Final Price: %s\n", report.Money(r.Mean))
	fmt.Fprintf(w, "Median Final Price: %s\n", report.Money(r.Median))
	fmt.Fprintf(w, "Range: %s to %s\n", report.Money(r.Min), report.Money(r.Max))
	fmt.Fprintf(w, "%gth Percentile Price: %s\n", r.Parameters.Percentile, report.Money(r.PercentileValue))
	fmt.Fprintf(w, "Potential Loss at %gth percentile: %s (%s)\n",
		r.Parameters.Percentile, report.Money(r.PotentialLoss), report.Percent(r.PotentialLossPercentage))
}

// WriteReport renders the human-readable summary of a portfolio run.
func (r *PortfolioResult) WriteReport(w io.Writer) {
	report.Section(w, "Portfolio Monte Carlo Simulation Results")
	fmt.Fprintf(w, "Initial Portfolio Value: %s\n", report.Money(r.InitialValue))
	fmt.Fprintf(w, "Simulations: %d\n", r.Parameters.PathCount)
	fmt.Fprintf(w, "Time Horizon: %d days\n", r.Parameters.HorizonDays)
	fmt.Fprintf(w, "Mean Final Value: %s\n", report.Money(r.Mean))
	fmt.Fprintf(w, "Median Final Value: %s\n", report.Money(r.Median))
	fmt.Fprintf(w, "Range: %s to %s\n", report.Money(r.Min), report.Money(r.Max))
	fmt.Fprintf(w, "%gth Percentile Value: %s\n", r.Parameters.Percentile, report.Money(r.PercentileValue))
	fmt.Fprintf(w, "Potential Loss at %gth percentile: %s (%s)\n",
		r.Parameters.Percentile, report.Money(r.PotentialLoss), report.Percent(r.PotentialLossPercentage))

	t := report.NewTableWriter(w)
	t.AppendHeader([]interface{}{"Asset", "Initial Value", "Mean Final Value"})
	for _, a := range r.Assets {
		t.AppendRow([]interface{}{
			a.Name,
			report.Money(a.InitialValue),
			report.Money(r.AssetPaths[a.Name].TerminalValues().Mean()),
		})
	}
	t.Render()
}
