package stress

import (
	"fmt"
	"io"
	"sort"

	"github.com/riskcraft/riskcraft/pkg/report"
)

// WriteReport renders the scenario definition.
func (s Scenario) WriteReport(w io.Writer) {
	fmt.Fprintf(w, "Defined %s scenario: %s\n", s.Kind, s.Name)
	fmt.Fprintf(w, "Description: %s\n", s.Description)
	if s.Probability != nil {
		fmt.Fprintf(w, "Estimated probability: %s\n", report.Percent(*s.Probability*100))
	}
	assets := make([]string, 0, len(s.Shocks))
	for asset := range s.Shocks {
		assets = append(assets, asset)
	}
	sort.Strings(assets)

	fmt.Fprintln(w, "Asset Shocks:")
	for _, asset := range assets {
		fmt.Fprintf(w, "  %s: %s\n", asset, report.Percent(s.Shocks[asset]*100))
	}
}

// WriteReport renders the stress test outcome with a per-asset impact table.
func (r *Result) WriteReport(w io.Writer) {
	report.Section(w, "Stress Test Results")
	fmt.Fprintf(w, "Scenario: %s\n", r.Scenario.Name)
	fmt.Fprintf(w, "Original Portfolio Value: %s\n", report.Money(r.OriginalTotal))
	fmt.Fprintf(w, "Stressed Portfolio Value: %s\n", report.Money(r.StressedTotal))
	fmt.Fprintf(w, "Total Impact: %s (%s)\n", report.Money(r.TotalImpact), report.Percent(r.TotalImpactPercentage))

	t := report.NewTableWriter(w)
	t.AppendHeader([]interface{}{"Asset", "Original", "Shock", "Stressed", "Impact", "Impact %"})
	for _, impact := range r.Impacts {
		t.AppendRow([]interface{}{
			impact.Name,
			report.Money(impact.OriginalValue),
			report.Percent(impact.ShockPercentage),
			report.Money(impact.StressedValue),
			report.Money(impact.ImpactAmount),
			report.Percent(impact.ImpactPercentage),
		})
	}
	t.Render()
}
