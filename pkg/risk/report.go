package risk

import (
	"fmt"
	"io"

	"github.com/riskcraft/riskcraft/pkg/report"
)

var kindTitles = map[Kind]string{
	HistoricalVaR:  "Historical VaR",
	ParametricVaR:  "Parametric VaR",
	ConditionalVaR: "Conditional VaR",
}

// WriteReport renders the summary with a one-line interpretation per kind.
func (s *Summary) WriteReport(w io.Writer) {
	title := kindTitles[s.Kind]
	switch s.Kind {
	case ParametricVaR:
		fmt.Fprintf(w, "%s at %s confidence over %d day(s): %s\n",
			title, report.Percent(s.ConfidenceLevel*100), s.HorizonDays, report.Money(s.Amount))
		fmt.Fprintf(w, "This means there is a %s chance of losing more than %s in %d day(s).\n",
			report.Percent((1-s.ConfidenceLevel)*100), report.Money(s.Amount), s.HorizonDays)

	case ConditionalVaR:
		fmt.Fprintf(w, "%s at %s confidence: %s\n",
			title, report.Percent(s.ConfidenceLevel*100), report.Money(s.Amount))
		fmt.Fprintln(w, "This is the expected loss when losses exceed the VaR threshold.")

	default:
		fmt.Fprintf(w, "%s at %s confidence: %s\n",
			title, report.Percent(s.ConfidenceLevel*100), report.Money(s.Amount))
		fmt.Fprintf(w, "This means there is a %s chance of losing more than %s in a single period.\n",
			report.Percent((1-s.ConfidenceLevel)*100), report.Money(s.Amount))
	}
}
