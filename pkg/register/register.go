// Package register implements the qualitative risk-recording tools: the risk
// register itself, project-style risk cards with alerts, and the likelihood ×
// impact matrices used to rank risks.
package register

import (
	"io"

	"github.com/riskcraft/riskcraft/pkg/report"
	"github.com/riskcraft/riskcraft/pkg/types"
)

// Risk is one entry of the register.
type Risk struct {
	ID              string `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	Description     string `json:"description" yaml:"description"`
	Category        string `json:"category" yaml:"category"`
	Likelihood      string `json:"likelihood" yaml:"likelihood"`
	Impact          string `json:"impact" yaml:"impact"`
	Owner           string `json:"owner" yaml:"owner"`
	MitigationPlan  string `json:"mitigationPlan" yaml:"mitigationPlan"`
	ContingencyPlan string `json:"contingencyPlan" yaml:"contingencyPlan"`
	Status          string `json:"status" yaml:"status"`
	Priority        string `json:"priority" yaml:"priority"`
}

// Register is an ordered collection of risks.
type Register struct {
	risks []Risk
}

func New() *Register {
	return &Register{}
}

// Add appends a risk to the register. New risks default to an Open status and
// an unset priority.
func (r *Register) Add(risk Risk) error {
	if risk.ID == "" {
		return types.InvalidParameterf("risk id must not be empty")
	}
	for _, existing := range r.risks {
		if existing.ID == risk.ID {
			return types.InvalidParameterf("risk id %s is already registered", risk.ID)
		}
	}

	if risk.Status == "" {
		risk.Status = "Open"
	}
	if risk.Priority == "" {
		risk.Priority = "Not set"
	}
	r.risks = append(r.risks, risk)
	return nil
}

// UpdateStatus changes the status of the risk with the given id; an unknown
// id is an error.
func (r *Register) UpdateStatus(id, status string) error {
	for i := range r.risks {
		if r.risks[i].ID == id {
			r.risks[i].Status = status
			return nil
		}
	}
	return types.InvalidParameterf("risk id %s not found in the register", id)
}

// Get returns the risk with the given id.
func (r *Register) Get(id string) (Risk, bool) {
	for _, risk := range r.risks {
		if risk.ID == id {
			return risk, true
		}
	}
	return Risk{}, false
}

// Risks returns the entries in insertion order.
func (r *Register) Risks() []Risk {
	out := make([]Risk, len(r.risks))
	copy(out, r.risks)
	return out
}

func (r *Register) Len() int {
	return len(r.risks)
}

// WriteReport renders the register as a table.
func (r *Register) WriteReport(w io.Writer) {
	report.Section(w, "Risk Register")
	if len(r.risks) == 0 {
		io.WriteString(w, "Risk register is empty.\n")
		return
	}

	t := report.NewTableWriter(w)
	t.AppendHeader([]interface{}{"ID", "Name", "Category", "Likelihood", "Impact", "Owner", "Status", "Priority"})
	for _, risk := range r.risks {
		t.AppendRow([]interface{}{
			risk.ID, risk.Name, risk.Category, risk.Likelihood,
			risk.Impact, risk.Owner, risk.Status, risk.Priority,
		})
	}
	t.Render()
}
