package analysis

import (
	"fmt"
	"io"
	"strings"

	"github.com/riskcraft/riskcraft/pkg/report"
	"github.com/riskcraft/riskcraft/pkg/types"
)

// Why is one question/answer step of a 5 Whys chain.
type Why struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// FiveWhysResult carries the chain and the root cause it ends in.
type FiveWhysResult struct {
	ProblemStatement string
	Whys             []Why
	RootCause        string
}

// FiveWhys resolves the root cause of a problem from a pre-filled chain of
// why/answer steps: the answer of the last step. An empty chain yields a
// fixed fallback text.
func FiveWhys(problemStatement string, whys []Why) (*FiveWhysResult, error) {
	if problemStatement == "" {
		return nil, types.InvalidParameterf("problem statement must not be empty")
	}

	rootCause := "No root cause identified"
	if len(whys) > 0 {
		rootCause = whys[len(whys)-1].Answer
	}
	return &FiveWhysResult{
		ProblemStatement: problemStatement,
		Whys:             whys,
		RootCause:        rootCause,
	}, nil
}

func (r *FiveWhysResult) WriteReport(w io.Writer) {
	report.Section(w, "5 Whys Analysis Results")
	fmt.Fprintf(w, "Problem Statement: %s\n", r.ProblemStatement)
	for i, why := range r.Whys {
		fmt.Fprintf(w, "\nWhy #%d: %s\n", i+1, why.Question)
		fmt.Fprintf(w, "Answer: %s\n", why.Answer)
	}
	fmt.Fprintf(w, "\nRoot Cause: %s\n", r.RootCause)
}

// CauseCategory is one branch of a fishbone diagram.
type CauseCategory struct {
	Name   string   `json:"name" yaml:"name"`
	Causes []string `json:"causes" yaml:"causes"`
}

// Fishbone is the data behind an Ishikawa diagram: a problem statement and
// its categorized candidate causes, in a stable category order.
type Fishbone struct {
	ProblemStatement string
	Categories       []CauseCategory
}

// NewFishbone builds the fishbone data structure.
func NewFishbone(problemStatement string, categories []CauseCategory) (*Fishbone, error) {
	if problemStatement == "" {
		return nil, types.InvalidParameterf("problem statement must not be empty")
	}
	return &Fishbone{ProblemStatement: problemStatement, Categories: categories}, nil
}

func (f *Fishbone) WriteReport(w io.Writer) {
	report.Section(w, "Fishbone Diagram Data")
	fmt.Fprintf(w, "Problem Statement: %s\n", f.ProblemStatement)
	for _, category := range f.Categories {
		fmt.Fprintf(w, "\n%s:\n", category.Name)
		for _, cause := range category.Causes {
			fmt.Fprintf(w, "  - %s\n", cause)
		}
	}
}

// Barrier is a control standing between a hazard and its target.
type Barrier struct {
	Name          string `json:"name" yaml:"name"`
	Effectiveness string `json:"effectiveness" yaml:"effectiveness"`
	Status        string `json:"status" yaml:"status"`
}

// compromised reports whether the barrier no longer protects.
func (b Barrier) compromised() bool {
	switch strings.ToLower(b.Status) {
	case "breached", "missing":
		return true
	}
	return false
}

// BarrierAnalysisResult lists the barriers and the protection gaps among
// them.
type BarrierAnalysisResult struct {
	Hazard   string
	Target   string
	Barriers []Barrier
	Gaps     []Barrier
}

// BarrierAnalysis identifies the gaps in protection: every barrier whose
// status is Breached or Missing, matched case-insensitively.
func BarrierAnalysis(hazard, target string, barriers []Barrier) (*BarrierAnalysisResult, error) {
	if hazard == "" || target == "" {
		return nil, types.InvalidParameterf("hazard and target must not be empty")
	}

	result := &BarrierAnalysisResult{Hazard: hazard, Target: target, Barriers: barriers}
	for _, barrier := range barriers {
		if barrier.compromised() {
			result.Gaps = append(result.Gaps, barrier)
		}
	}
	return result, nil
}

func (r *BarrierAnalysisResult) WriteReport(w io.Writer) {
	report.Section(w, "Barrier Analysis Results")
	fmt.Fprintf(w, "Hazard: %s\n", r.Hazard)
	fmt.Fprintf(w, "Target: %s\n", r.Target)
	fmt.Fprintln(w, "\nBarriers:")
	for i, barrier := range r.Barriers {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, barrier.Name)
		fmt.Fprintf(w, "   Effectiveness: %s\n", barrier.Effectiveness)
		fmt.Fprintf(w, "   Status: %s\n", barrier.Status)
	}
	if len(r.Gaps) > 0 {
		fmt.Fprintln(w, "\nGaps in Protection:")
		for _, barrier := range r.Gaps {
			fmt.Fprintf(w, "  - %s (%s)\n", barrier.Name, barrier.Status)
		}
	}
}
