package simulation

import (
	"time"

	"dprsim/internal/feasibility"
)

// SimulationScenario is the condensed scenario record embedded in a
// feasibility report: the headline knobs plus the predicted probability.
type SimulationScenario struct {
	ScenarioName         string  `json:"scenarioName"`
	AdjustedTimeline     float64 `json:"adjustedTimeline"`
	AdjustedResources    float64 `json:"adjustedResources"`
	AdjustedComplexity   float64 `json:"adjustedComplexity"`
	PredictedProbability float64 `json:"predictedProbability"`
}

// CompletionFeasibilityResult is the combined baseline report: probability,
// risks, recommendation texts and the preset scenario sweep.
type CompletionFeasibilityResult struct {
	DprID                 string                   `json:"dprId"`
	CompletionProbability float64                  `json:"completionProbability"`
	RiskFactors           []feasibility.RiskFactor `json:"riskFactors"`
	Recommendations       []string                 `json:"recommendations"`
	SimulationData        []SimulationScenario     `json:"simulationData"`
	AnalysisTimestamp     time.Time                `json:"analysisTimestamp"`
	Confidence            float64                  `json:"confidence"`
}

// PresetScenarios returns the canned sweeps the reviewer UI offers before any
// custom what-if exploration.
func PresetScenarios() []NamedParameters {
	accelerated := Identity()
	accelerated.TimelineMultiplier = 0.8

	extended := Identity()
	extended.TimelineMultiplier = 1.25

	resourced := Identity()
	resourced.ResourceMultiplier = 1.2

	simplified := Identity()
	simplified.ComplexityMultiplier = 0.8

	combined := Identity()
	combined.TimelineMultiplier = 0.9
	combined.ResourceMultiplier = 1.1
	combined.ComplexityMultiplier = 0.9

	return []NamedParameters{
		{Name: "Accelerated Timeline", Parameters: accelerated},
		{Name: "Extended Timeline", Parameters: extended},
		{Name: "Additional Resources", Parameters: resourced},
		{Name: "Reduced Complexity", Parameters: simplified},
		{Name: "Combined Mitigation", Parameters: combined},
	}
}

// AssessFeasibility runs the baseline pipeline plus the preset sweep and
// assembles the combined report.
func AssessFeasibility(dprID string, f feasibility.ProjectFeatures, maxRecommendations int) (CompletionFeasibilityResult, error) {
	if err := feasibility.ValidateFeatures(f); err != nil {
		return CompletionFeasibilityResult{}, err
	}

	prob, _, err := runPipeline(f)
	if err != nil {
		return CompletionFeasibilityResult{}, err
	}
	factors, _ := feasibility.AssessRisk(feasibility.Normalize(f))

	recs, err := Recommend(dprID, f, maxRecommendations)
	if err != nil {
		return CompletionFeasibilityResult{}, err
	}

	presets := PresetScenarios()
	scenarios := make([]SimulationScenario, 0, len(presets))
	for _, preset := range presets {
		res, err := Simulate(f, preset.Parameters, preset.Name)
		if err != nil {
			return CompletionFeasibilityResult{}, err
		}
		scenarios = append(scenarios, SimulationScenario{
			ScenarioName:         preset.Name,
			AdjustedTimeline:     res.AdjustedFeatures.EstimatedDurationMonths,
			AdjustedResources:    res.AdjustedFeatures.TotalCost,
			AdjustedComplexity:   res.AdjustedFeatures.TechnicalComplexityScore,
			PredictedProbability: res.CompletionProbability,
		})
	}

	return CompletionFeasibilityResult{
		DprID:                 dprID,
		CompletionProbability: prob,
		RiskFactors:           factors,
		Recommendations:       recs.PrioritizedActions,
		SimulationData:        scenarios,
		AnalysisTimestamp:     time.Now().UTC(),
		Confidence:            feasibility.ConfidenceLevel(f.SimilarProjectsCount),
	}, nil
}
