package analysis

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskcraft/riskcraft/pkg/types"
)

func TestSWOTQuadrants(t *testing.T) {
	s := SWOT{
		Strengths:  []string{"Experienced development team"},
		Weaknesses: []string{"Limited marketing budget"},
		Threats:    []string{"Price wars from competitors"},
	}

	quadrants := s.Quadrants()
	require.Len(t, quadrants, 4)
	assert.Equal(t, "Strengths", quadrants[0].Name)
	assert.Equal(t, "Opportunities", quadrants[2].Name)
	assert.Empty(t, quadrants[2].Items)
}

func TestSWOTWriteReport(t *testing.T) {
	var buf bytes.Buffer
	SWOT{Strengths: []string{"Strong brand"}}.WriteReport(&buf)

	out := buf.String()
	assert.Contains(t, out, "SWOT Analysis")
	assert.Contains(t, out, "- Strong brand")
	assert.Contains(t, out, "(No items listed)")
}

func TestFiveWhys(t *testing.T) {
	whys := []Why{
		{Question: "Why did the project miss its deadline?", Answer: "Testing took longer than expected."},
		{Question: "Why did testing take longer?", Answer: "More bugs than anticipated."},
		{Question: "Why were there more bugs?", Answer: "Code reviews were rushed."},
	}

	result, err := FiveWhys("The project missed its deadline", whys)
	require.NoError(t, err)
	assert.Equal(t, "Code reviews were rushed.", result.RootCause)
}

func TestFiveWhysEmptyChain(t *testing.T) {
	result, err := FiveWhys("The project missed its deadline", nil)
	require.NoError(t, err)
	assert.Equal(t, "No root cause identified", result.RootCause)
}

func TestFiveWhysValidation(t *testing.T) {
	_, err := FiveWhys("", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
}

func TestNewFishbone(t *testing.T) {
	fb, err := NewFishbone("Excessive software defects", []CauseCategory{
		{Name: "People", Causes: []string{"Insufficient training"}},
		{Name: "Process", Causes: []string{"No regression testing"}},
	})
	require.NoError(t, err)
	assert.Len(t, fb.Categories, 2)

	_, err = NewFishbone("", nil)
	require.Error(t, err)
}

func TestBarrierAnalysis(t *testing.T) {
	barriers := []Barrier{
		{Name: "Data Encryption", Effectiveness: "High", Status: "Intact"},
		{Name: "Access Controls", Effectiveness: "Medium", Status: "Breached"},
		{Name: "Employee Training", Effectiveness: "Medium", Status: "Intact"},
		{Name: "Intrusion Detection", Effectiveness: "High", Status: "Missing"},
	}

	result, err := BarrierAnalysis("Data Breach", "Customer Personal Information", barriers)
	require.NoError(t, err)

	require.Len(t, result.Gaps, 2)
	assert.Equal(t, "Access Controls", result.Gaps[0].Name)
	assert.Equal(t, "Intrusion Detection", result.Gaps[1].Name)
}

func TestBarrierAnalysisCaseInsensitiveStatus(t *testing.T) {
	result, err := BarrierAnalysis("h", "t", []Barrier{
		{Name: "A", Status: "BREACHED"},
		{Name: "B", Status: "missing"},
		{Name: "C", Status: "intact"},
	})
	require.NoError(t, err)
	assert.Len(t, result.Gaps, 2)
}

func TestBarrierAnalysisValidation(t *testing.T) {
	_, err := BarrierAnalysis("", "target", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
}
