package visuals

import (
	"fmt"
	"strings"
	"testing"

	"dprsim/internal/feasibility"
	"dprsim/internal/simulation"
)

func TestGenerateRiskBreakdownChart(t *testing.T) {
	chart := GenerateRiskBreakdownChart(feasibility.RiskBreakdown{
		TimelineRisk:      55.5,
		ResourceRisk:      40,
		ComplexityRisk:    62.1,
		EnvironmentalRisk: 30,
		FinancialRisk:     48,
		OverallRisk:       47.9,
	})

	if !strings.HasPrefix(chart, "```mermaid\n") || !strings.HasSuffix(chart, "```") {
		t.Errorf("Expected a fenced mermaid block")
	}
	if !strings.Contains(chart, "xychart-beta") {
		t.Errorf("Expected an xychart-beta chart")
	}
	if !strings.Contains(chart, "Overall 47.9") {
		t.Errorf("Expected the overall score in the title, got:\n%s", chart)
	}
	if !strings.Contains(chart, "bar [55.5, 40.0, 62.1, 30.0, 48.0]") {
		t.Errorf("Expected the five dimension values in order, got:\n%s", chart)
	}
}

func TestGenerateProbabilityWaterfall(t *testing.T) {
	chart := GenerateProbabilityWaterfall(feasibility.ProbabilityBreakdown{
		BaseScore:            60,
		TimelineAdjustment:   -7.5,
		ResourceAdjustment:   2,
		ComplexityAdjustment: -3,
		LocationAdjustment:   1,
		HistoricalAdjustment: 4,
		RiskAdjustment:       -6.2,
		FinalScore:           50.3,
	})

	if !strings.Contains(chart, "Completion Probability Breakdown") {
		t.Errorf("Expected the waterfall title, got:\n%s", chart)
	}
	// The y-axis floor tracks the most negative adjustment.
	if !strings.Contains(chart, "\"Points\" -8 --> 100") {
		t.Errorf("Expected the y-axis to open at -8, got:\n%s", chart)
	}
	if !strings.Contains(chart, "50.3") {
		t.Errorf("Expected the final score in the bars, got:\n%s", chart)
	}
}

func TestGenerateWhatIfChart(t *testing.T) {
	analysis := simulation.WhatIfAnalysis{
		BaselineScenario: simulation.Result{ScenarioName: "Baseline", CompletionProbability: 60},
		SimulatedScenarios: []simulation.Result{
			{ScenarioName: "Accelerated Timeline", CompletionProbability: 64.2},
			{ScenarioName: "Extended Timeline", CompletionProbability: 55},
		},
	}

	chart := GenerateWhatIfChart(analysis)

	if !strings.Contains(chart, "\"Baseline\"") {
		t.Errorf("Expected the baseline label, got:\n%s", chart)
	}
	// Scenario names are made mermaid-safe.
	if !strings.Contains(chart, "\"Accelerated_Timeline\"") {
		t.Errorf("Expected spaces replaced with underscores, got:\n%s", chart)
	}
	if !strings.Contains(chart, "bar [60.0, 64.2, 55.0]") {
		t.Errorf("Expected baseline-first probabilities, got:\n%s", chart)
	}
}

func TestGenerateWhatIfChart_LimitsScenarios(t *testing.T) {
	analysis := simulation.WhatIfAnalysis{
		BaselineScenario: simulation.Result{ScenarioName: "Baseline", CompletionProbability: 60},
	}
	for i := 1; i <= 30; i++ {
		analysis.SimulatedScenarios = append(analysis.SimulatedScenarios, simulation.Result{
			ScenarioName:          fmt.Sprintf("Scenario %d", i),
			CompletionProbability: 50,
		})
	}

	chart := GenerateWhatIfChart(analysis)

	if !strings.Contains(chart, "\"Scenario_19\"") {
		t.Errorf("Expected scenarios inside the limit to appear")
	}
	if strings.Contains(chart, "\"Scenario_20\"") {
		t.Errorf("Expected scenarios beyond the limit to be dropped")
	}
}
