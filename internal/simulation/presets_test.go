package simulation

import (
	"testing"

	"dprsim/internal/feasibility"
)

func TestPresetScenarios(t *testing.T) {
	presets := PresetScenarios()
	if len(presets) != 5 {
		t.Fatalf("Expected 5 preset scenarios, got %d", len(presets))
	}

	expected := []string{
		"Accelerated Timeline",
		"Extended Timeline",
		"Additional Resources",
		"Reduced Complexity",
		"Combined Mitigation",
	}
	for i, name := range expected {
		if presets[i].Name != name {
			t.Errorf("Expected preset %d to be %q, got %q", i, name, presets[i].Name)
		}
		if err := presets[i].Parameters.Validate(); err != nil {
			t.Errorf("Expected preset %q to validate, got %v", name, err)
		}
	}

	if presets[0].Parameters.TimelineMultiplier != 0.8 {
		t.Errorf("Expected accelerated timeline multiplier 0.8, got %f", presets[0].Parameters.TimelineMultiplier)
	}
	if presets[2].Parameters.ResourceMultiplier != 1.2 {
		t.Errorf("Expected additional resources multiplier 1.2, got %f", presets[2].Parameters.ResourceMultiplier)
	}
}

func TestAssessFeasibility(t *testing.T) {
	baseline := typicalBaseline()

	result, err := AssessFeasibility("DPR-030", baseline, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.DprID != "DPR-030" {
		t.Errorf("Expected dprId DPR-030, got %s", result.DprID)
	}
	if result.CompletionProbability <= 0 || result.CompletionProbability > 100 {
		t.Errorf("Expected probability in (0,100], got %f", result.CompletionProbability)
	}
	if len(result.RiskFactors) != len(feasibility.AllRiskTypes) {
		t.Errorf("Expected %d risk factors, got %d", len(feasibility.AllRiskTypes), len(result.RiskFactors))
	}
	if result.Confidence != feasibility.ConfidenceLevel(baseline.SimilarProjectsCount) {
		t.Errorf("Expected confidence %f, got %f",
			feasibility.ConfidenceLevel(baseline.SimilarProjectsCount), result.Confidence)
	}

	presets := PresetScenarios()
	if len(result.SimulationData) != len(presets) {
		t.Fatalf("Expected %d preset sweeps, got %d", len(presets), len(result.SimulationData))
	}
	for i, sc := range result.SimulationData {
		if sc.ScenarioName != presets[i].Name {
			t.Errorf("Expected sweep %d to be %q, got %q", i, presets[i].Name, sc.ScenarioName)
		}
		if sc.PredictedProbability < 0 || sc.PredictedProbability > 100 {
			t.Errorf("Expected predicted probability in [0,100] for %q, got %f", sc.ScenarioName, sc.PredictedProbability)
		}
	}

	// The headline probability matches a direct pipeline run on the baseline.
	direct, _, err := runPipeline(baseline)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.CompletionProbability != direct {
		t.Errorf("Expected headline probability %f, got %f", direct, result.CompletionProbability)
	}
}

func TestAssessFeasibility_InvalidInput(t *testing.T) {
	baseline := typicalBaseline()
	baseline.CostPerMonth = -1

	_, err := AssessFeasibility("DPR-031", baseline, 0)
	if _, ok := err.(*feasibility.ValidationError); !ok {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
}
