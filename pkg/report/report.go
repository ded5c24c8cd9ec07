// Package report holds the shared presentation helpers used by every
// calculation report: currency and percentage formatting, section headers and
// the common table style. Reports are presentational only; the data contract
// is the result struct returned by each calculation.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leekchan/accounting"
)

var usd = accounting.DefaultAccounting("$", 2)

// Money formats a dollar amount with thousand separators, e.g. $1,000,000.00.
func Money(v float64) string {
	return usd.FormatMoney(v)
}

// Percent formats a percentage value with two decimals, e.g. 12.34%.
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// Section writes the "--- title ---" header every report starts with.
func Section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n--- %s ---\n", title)
}

// NewTableWriter returns a table writer with the default style, mirrored to
// the given output.
func NewTableWriter(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

var severityColors = map[string]*color.Color{
	"Critical":  color.New(color.FgHiRed, color.Bold),
	"Very High": color.New(color.FgHiRed),
	"High":      color.New(color.FgRed),
	"Medium":    color.New(color.FgYellow),
	"Low":       color.New(color.FgGreen),
}

// Severity colors a severity or risk-level label. Unknown labels pass through
// unchanged.
func Severity(label string) string {
	if c, ok := severityColors[label]; ok {
		return c.Sprint(label)
	}
	return label
}
