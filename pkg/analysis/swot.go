// Package analysis implements the qualitative analysis templates: SWOT,
// 5 Whys, fishbone (Ishikawa) cause collection and barrier analysis. Each is
// a plain record transform over caller-supplied data plus a printed report.
package analysis

import (
	"fmt"
	"io"

	"github.com/riskcraft/riskcraft/pkg/report"
)

// SWOT groups observations into the four classic quadrants.
type SWOT struct {
	Strengths     []string `json:"strengths" yaml:"strengths"`
	Weaknesses    []string `json:"weaknesses" yaml:"weaknesses"`
	Opportunities []string `json:"opportunities" yaml:"opportunities"`
	Threats       []string `json:"threats" yaml:"threats"`
}

// Quadrant is one named SWOT category with its items.
type Quadrant struct {
	Name  string
	Items []string
}

// Quadrants returns the four categories in the conventional order.
func (s SWOT) Quadrants() []Quadrant {
	return []Quadrant{
		{Name: "Strengths", Items: s.Strengths},
		{Name: "Weaknesses", Items: s.Weaknesses},
		{Name: "Opportunities", Items: s.Opportunities},
		{Name: "Threats", Items: s.Threats},
	}
}

// WriteReport renders the SWOT quadrants.
func (s SWOT) WriteReport(w io.Writer) {
	report.Section(w, "SWOT Analysis")
	for _, q := range s.Quadrants() {
		fmt.Fprintf(w, "\n%s:\n", q.Name)
		if len(q.Items) == 0 {
			fmt.Fprintln(w, "  (No items listed)")
			continue
		}
		for _, item := range q.Items {
			fmt.Fprintf(w, "  - %s\n", item)
		}
	}
}
