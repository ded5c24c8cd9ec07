package register

import (
	"fmt"
	"io"

	"github.com/riskcraft/riskcraft/pkg/types"
)

// Card is a project-management style risk card.
type Card struct {
	RiskName     string `json:"riskName" yaml:"riskName"`
	Description  string `json:"description" yaml:"description"`
	Impact       string `json:"impact" yaml:"impact"`
	Likelihood   string `json:"likelihood" yaml:"likelihood"`
	Priority     string `json:"priority" yaml:"priority"`
	ResponsePlan string `json:"responsePlan" yaml:"responsePlan"`
	Status       string `json:"status" yaml:"status"`
}

// NewCard creates a risk card with an Open status.
func NewCard(name, description, impact, likelihood, priority, responsePlan string) (*Card, error) {
	if name == "" {
		return nil, types.InvalidParameterf("risk card name must not be empty")
	}
	return &Card{
		RiskName:     name,
		Description:  description,
		Impact:       impact,
		Likelihood:   likelihood,
		Priority:     priority,
		ResponsePlan: responsePlan,
		Status:       "Open",
	}, nil
}

// Alert is an automated notification rule attached to a risk.
type Alert struct {
	RiskName  string `json:"riskName" yaml:"riskName"`
	Condition string `json:"condition" yaml:"condition"`
	Recipient string `json:"recipient" yaml:"recipient"`
	Status    string `json:"status" yaml:"status"`
}

// NewAlert creates an active alert rule.
func NewAlert(riskName, condition, recipient string) (*Alert, error) {
	if riskName == "" || condition == "" || recipient == "" {
		return nil, types.InvalidParameterf("alert risk name, condition and recipient must all be set")
	}
	return &Alert{
		RiskName:  riskName,
		Condition: condition,
		Recipient: recipient,
		Status:    "Active",
	}, nil
}

func (c *Card) WriteReport(w io.Writer) {
	fmt.Fprintf(w, "Risk card %q created.\n", c.RiskName)
	fmt.Fprintf(w, "  Impact: %s, Likelihood: %s, Priority: %s\n", c.Impact, c.Likelihood, c.Priority)
	fmt.Fprintf(w, "  Response Plan: %s\n", c.ResponsePlan)
}

func (a *Alert) WriteReport(w io.Writer) {
	fmt.Fprintf(w, "Alert set for risk %q: notify %q if condition %q is met.\n",
		a.RiskName, a.Recipient, a.Condition)
}
