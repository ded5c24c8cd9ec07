package register

import (
	"io"

	"github.com/riskcraft/riskcraft/pkg/report"
	"github.com/riskcraft/riskcraft/pkg/types"
)

// MatrixEntry is one risk scored on 1-5 likelihood and impact scales.
type MatrixEntry struct {
	Name       string `json:"name" yaml:"name"`
	Likelihood int    `json:"likelihood" yaml:"likelihood"`
	Impact     int    `json:"impact" yaml:"impact"`
}

// ScoredEntry is a matrix entry with its derived severity.
type ScoredEntry struct {
	MatrixEntry

	SeverityScore int
	SeverityLabel string
}

// BuildMatrix scores each risk as likelihood × impact and labels the
// severity: >=15 Very High, >=10 High, >=5 Medium, otherwise Low.
func BuildMatrix(entries []MatrixEntry) ([]ScoredEntry, error) {
	if len(entries) == 0 {
		return nil, types.InvalidParameterf("no risks provided to build a matrix")
	}

	scored := make([]ScoredEntry, 0, len(entries))
	for _, e := range entries {
		if e.Likelihood < 1 || e.Likelihood > 5 {
			return nil, types.InvalidParameterf("risk %s: likelihood score must be in [1, 5], got %d", e.Name, e.Likelihood)
		}
		if e.Impact < 1 || e.Impact > 5 {
			return nil, types.InvalidParameterf("risk %s: impact score must be in [1, 5], got %d", e.Name, e.Impact)
		}

		score := e.Likelihood * e.Impact
		scored = append(scored, ScoredEntry{
			MatrixEntry:   e,
			SeverityScore: score,
			SeverityLabel: severityLabel(score),
		})
	}
	return scored, nil
}

func severityLabel(score int) string {
	switch {
	case score >= 15:
		return "Very High"
	case score >= 10:
		return "High"
	case score >= 5:
		return "Medium"
	default:
		return "Low"
	}
}

// WriteMatrixReport renders the scored matrix as a table.
func WriteMatrixReport(w io.Writer, entries []ScoredEntry) {
	report.Section(w, "Risk Matrix")
	t := report.NewTableWriter(w)
	t.AppendHeader([]interface{}{"Risk Name", "Likelihood", "Impact", "Severity"})
	for _, e := range entries {
		t.AppendRow([]interface{}{e.Name, e.Likelihood, e.Impact, report.Severity(e.SeverityLabel)})
	}
	t.Render()
}
