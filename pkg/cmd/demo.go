package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/riskcraft/riskcraft/pkg/analysis"
	"github.com/riskcraft/riskcraft/pkg/credit"
	"github.com/riskcraft/riskcraft/pkg/datatype/floats"
	"github.com/riskcraft/riskcraft/pkg/montecarlo"
	"github.com/riskcraft/riskcraft/pkg/register"
	"github.com/riskcraft/riskcraft/pkg/risk"
	"github.com/riskcraft/riskcraft/pkg/risk/stress"
)

func init() {
	RootCmd.AddCommand(DemoCmd)
}

// DemoCmd walks through every tool in the kit with canned inputs, handy as a
// smoke test and as a tour of the report formats.
var DemoCmd = &cobra.Command{
	Use:          "demo",
	Short:        "run every tool once with built-in sample data",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := os.Stdout

		if err := demoRiskCards(out); err != nil {
			return err
		}
		if err := demoRiskMatrix(out); err != nil {
			return err
		}
		if err := demoRegister(out); err != nil {
			return err
		}
		demoSWOT(out)
		if err := demoProbabilityImpact(out); err != nil {
			return err
		}
		if err := demoVaR(out); err != nil {
			return err
		}
		if err := demoStress(out); err != nil {
			return err
		}
		if err := demoMonteCarlo(out); err != nil {
			return err
		}
		if err := demoCredit(out); err != nil {
			return err
		}
		return demoRootCause(out)
	},
}

func demoRiskCards(out *os.File) error {
	card, err := register.NewCard(
		"Supplier Delay",
		"Key supplier might fail to deliver components on time.",
		"High", "Medium", "High",
		"Identify alternative suppliers and stock critical components.",
	)
	if err != nil {
		return err
	}
	card.WriteReport(out)

	alert, err := register.NewAlert("Supplier Delay", "Delivery overdue by >2 days", "Logistics Lead")
	if err != nil {
		return err
	}
	alert.WriteReport(out)
	return nil
}

func demoRiskMatrix(out *os.File) error {
	scored, err := register.BuildMatrix([]register.MatrixEntry{
		{Name: "Scope Creep", Likelihood: 3, Impact: 4},
		{Name: "Budget Overrun", Likelihood: 2, Impact: 5},
		{Name: "Team Member Unavailable", Likelihood: 4, Impact: 3},
		{Name: "Technology Failure", Likelihood: 1, Impact: 5},
	})
	if err != nil {
		return err
	}
	register.WriteMatrixReport(out, scored)
	return nil
}

func demoRegister(out *os.File) error {
	reg := register.New()
	risks := []register.Risk{
		{
			ID:              "R001",
			Name:            "Data Breach",
			Description:     "Sensitive customer data could be exposed due to a security vulnerability.",
			Category:        "Cybersecurity",
			Likelihood:      "Medium",
			Impact:          "High",
			Owner:           "IT Security Team",
			MitigationPlan:  "Conduct regular security audits, implement multi-factor authentication.",
			ContingencyPlan: "Activate incident response plan, notify affected customers and authorities.",
		},
		{
			ID:              "R002",
			Name:            "Market Competition",
			Description:     "New competitor enters the market with a similar product at a lower price.",
			Category:        "Market",
			Likelihood:      "High",
			Impact:          "Medium",
			Owner:           "Marketing Dept",
			MitigationPlan:  "Enhance product features, run loyalty programs.",
			ContingencyPlan: "Offer promotional discounts, targeted marketing campaigns.",
		},
	}
	for _, r := range risks {
		if err := reg.Add(r); err != nil {
			return err
		}
	}
	reg.WriteReport(out)

	if err := reg.UpdateStatus("R001", "In Progress"); err != nil {
		return err
	}
	reg.WriteReport(out)
	return nil
}

func demoSWOT(out *os.File) {
	swot := analysis.SWOT{
		Strengths:     []string{"Experienced development team", "Strong brand reputation"},
		Weaknesses:    []string{"Limited marketing budget", "Reliance on a single supplier"},
		Opportunities: []string{"Growing market demand for our product type", "Potential for international expansion"},
		Threats:       []string{"Upcoming regulatory changes", "Price wars from competitors"},
	}
	swot.WriteReport(out)
}

func demoProbabilityImpact(out *os.File) error {
	var (
		likelihoodScale = []string{"Very Low", "Low", "Medium", "High", "Very High"}
		impactScale     = []string{"Negligible", "Minor", "Moderate", "Significant", "Severe"}
	)
	assessed, err := register.ProbabilityImpactMatrix([]register.ScaledRisk{
		{Name: "Critical System Failure", LikelihoodScore: 2, ImpactScore: 4},
		{Name: "Project Funding Cut", LikelihoodScore: 1, ImpactScore: 3},
		{Name: "Key Staff Departure", LikelihoodScore: 3, ImpactScore: 2},
		{Name: "Minor Feature Delay", LikelihoodScore: 4, ImpactScore: 0},
	}, likelihoodScale, impactScale)
	if err != nil {
		return err
	}
	register.WriteProbabilityImpactReport(out, assessed)
	return nil
}

func demoVaR(out *os.File) error {
	returns := floats.Slice{
		0.01, -0.02, 0.005, 0.008, -0.01, 0.02, -0.03, 0.015, -0.005, 0.012,
		-0.008, 0.01, -0.015, 0.007, -0.012, 0.018, -0.022, 0.01, 0.003, -0.018,
	}
	const (
		confidence = 0.95
		investment = 1000000.0
	)

	historical, err := risk.Historical(returns, confidence, investment)
	if err != nil {
		return err
	}
	historical.WriteReport(out)

	mean, stdDev := risk.SampleMoments(returns)
	parametric, err := risk.Parametric(mean, stdDev, confidence, investment, 1)
	if err != nil {
		return err
	}
	parametric.WriteReport(out)

	conditional, err := risk.Conditional(returns, confidence, investment)
	if err != nil {
		return err
	}
	conditional.WriteReport(out)
	return nil
}

func demoStress(out *os.File) error {
	portfolio := stress.Portfolio{
		{Name: "US Equities", Value: 500000},
		{Name: "European Equities", Value: 300000},
		{Name: "US Bonds", Value: 400000},
		{Name: "Cash", Value: 100000},
	}
	scenario := stress.NewHistoricalScenario(
		"2008 Financial Crisis",
		"Simulates market conditions similar to the 2008 global financial crisis",
		map[string]float64{
			"US Equities":       -0.40,
			"European Equities": -0.45,
			"US Bonds":          0.05,
			"Cash":              0.00,
		},
	)

	result, err := stress.Apply(portfolio, scenario)
	if err != nil {
		return err
	}
	scenario.WriteReport(out)
	result.WriteReport(out)
	return nil
}

func demoMonteCarlo(out *os.File) error {
	result, err := montecarlo.Simulate(montecarlo.SimulationParameters{
		InitialValue: 100,
		Drift:        0.08,
		Volatility:   0.2,
		HorizonDays:  252,
		PathCount:    1000,
		Percentile:   5,
		Seed:         42,
	})
	if err != nil {
		return err
	}
	result.WriteReport(out)
	return nil
}

func demoCredit(out *os.File) error {
	score, err := credit.Score(credit.ScoreInput{
		Income:            75000,
		Debt:              25000,
		PaymentHistory:    90,
		CreditUtilization: 30,
		HistoryYears:      5,
	})
	if err != nil {
		return err
	}
	score.WriteReport(out)

	defaultRisk, err := credit.DefaultParameters(score.Score, 200000, 180000)
	if err != nil {
		return err
	}
	defaultRisk.WriteReport(out)

	portfolioRisk, err := credit.AnalyzePortfolio([]credit.Loan{
		{PD: 0.02, LGD: 0.4, EAD: 150000},
		{PD: 0.05, LGD: 0.6, EAD: 75000},
		{PD: 0.01, LGD: 0.3, EAD: 250000},
	})
	if err != nil {
		return err
	}
	portfolioRisk.WriteReport(out)
	return nil
}

func demoRootCause(out *os.File) error {
	fiveWhys, err := analysis.FiveWhys("The project missed its deadline", []analysis.Why{
		{Question: "Why did the project miss its deadline?", Answer: "The final testing phase took longer than expected."},
		{Question: "Why did testing take longer than expected?", Answer: "We found more bugs than anticipated."},
		{Question: "Why were there more bugs than anticipated?", Answer: "Code reviews were rushed during development."},
		{Question: "Why were code reviews rushed?", Answer: "The development team was under pressure to meet intermediate milestones."},
		{Question: "Why was there pressure to meet intermediate milestones?", Answer: "The project schedule was too aggressive and didn't account for adequate quality assurance."},
	})
	if err != nil {
		return err
	}
	fiveWhys.WriteReport(out)

	fishbone, err := analysis.NewFishbone("Excessive software defects", []analysis.CauseCategory{
		{Name: "People", Causes: []string{"Insufficient training", "High turnover", "Understaffed QA team"}},
		{Name: "Process", Causes: []string{"Inadequate testing procedures", "Rushed code reviews", "No regression testing"}},
		{Name: "Technology", Causes: []string{"Outdated development tools", "Incompatible systems", "Technical debt"}},
		{Name: "Environment", Causes: []string{"Distracting work environment", "Remote work challenges"}},
	})
	if err != nil {
		return err
	}
	fishbone.WriteReport(out)

	barriers, err := analysis.BarrierAnalysis("Data Breach", "Customer Personal Information", []analysis.Barrier{
		{Name: "Data Encryption", Effectiveness: "High", Status: "Intact"},
		{Name: "Access Controls", Effectiveness: "Medium", Status: "Breached"},
		{Name: "Employee Training", Effectiveness: "Medium", Status: "Intact"},
		{Name: "Intrusion Detection", Effectiveness: "High", Status: "Missing"},
	})
	if err != nil {
		return err
	}
	barriers.WriteReport(out)
	return nil
}
